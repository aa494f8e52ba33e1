package handlers

import (
	"context"
	"errors"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
	"github.com/Tony-ArtZ/git-peek/internal/core/render"
	"github.com/gofiber/fiber/v3"
)

type HTTPHandler struct {
	Snapshots ports.SnapshotService
	Publish   ports.PublishService
	Views     ports.ViewService
	Media     *render.MediaResolver
}

func NewHTTPHandler(snapshots ports.SnapshotService, publish ports.PublishService, views ports.ViewService) *HTTPHandler {
	return &HTTPHandler{
		Snapshots: snapshots,
		Publish:   publish,
		Views:     views,
		Media:     render.NewMediaResolver(snapshots),
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"Repository not found"`
}

type RepoViewResponse struct {
	Repo         domain.Repo        `json:"repo"`
	Files        []domain.FileEntry `json:"files"`
	Readme       string             `json:"readme,omitempty"`
	ReadmeHTML   string             `json:"readme_html,omitempty"`
	License      string             `json:"license,omitempty"`
	LicenseHTML  string             `json:"license_html,omitempty"`
	LicenseLabel string             `json:"license_label,omitempty"`
}

type FileContentResponse struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

type ImageResponse struct {
	ImageData string `json:"imageData" example:"data:image/png;base64,iVBOR..."`
}

type PublishRequest struct {
	RepoRef string `json:"repo_ref" example:"acme/widgets" binding:"required"`
}

// Internal failure detail never reaches the visitor; every snapshot-path
// error collapses to the same not-found response.
func notFound(c fiber.Ctx) error {
	return c.Status(404).JSON(ErrorResponse{Error: "Repository not found"})
}

// GetRepoView godoc
// @Summary      View a shared repository
// @Description  Resolves a share ID and returns repository metadata, the top-level file listing, and rendered README/LICENSE content. Records a view.
// @Tags         repo
// @Produce      json
// @Param        id   path      string  true  "Share ID"
// @Success      200  {object}  RepoViewResponse  "Repository snapshot"
// @Failure      404  {object}  ErrorResponse  "Repository not found"
// @Router       /api/repo/{id} [get]
func (h *HTTPHandler) GetRepoView(c fiber.Ctx) error {
	id := c.Params("id")

	snapshot, err := h.Snapshots.BuildSnapshot(c.Context(), id)
	if err != nil {
		return notFound(c)
	}

	go h.Views.TrackView(context.Background(), id)

	resp := RepoViewResponse{
		Repo:    snapshot.Repo,
		Files:   snapshot.Files,
		Readme:  snapshot.ReadmeText,
		License: snapshot.LicenseText,
	}

	rctx := render.Context{
		RepoHTMLURL: snapshot.Repo.HTMLURL,
		Branch:      snapshot.Repo.DefaultBranch,
		RedirectID:  id,
	}
	if snapshot.ReadmeText != "" {
		rendered := render.Render(snapshot.ReadmeText, rctx)
		resp.ReadmeHTML = h.Media.Resolve(c.Context(), rendered, rctx)
	}
	if snapshot.LicenseText != "" {
		rendered, label := render.RenderLicense(snapshot.LicenseText, rctx)
		resp.LicenseHTML = h.Media.Resolve(c.Context(), rendered, rctx)
		resp.LicenseLabel = label
	}

	return c.JSON(resp)
}

// GetDirectory godoc
// @Summary      List a directory of a shared repository
// @Tags         repo
// @Produce      json
// @Param        id    path      string  true   "Share ID"
// @Param        path  path      string  false  "Directory path"
// @Success      200   {array}   domain.FileEntry
// @Failure      404   {object}  ErrorResponse  "Repository not found"
// @Router       /api/repo/{id}/contents/{path} [get]
func (h *HTTPHandler) GetDirectory(c fiber.Ctx) error {
	id := c.Params("id")
	path := c.Params("*")

	entries, err := h.Snapshots.FetchDirectory(c.Context(), id, path)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(entries)
}

// GetFile godoc
// @Summary      Fetch a file of a shared repository as text
// @Tags         repo
// @Produce      json
// @Param        id    path      string  true  "Share ID"
// @Param        path  path      string  true  "File path"
// @Success      200   {object}  FileContentResponse
// @Failure      404   {object}  ErrorResponse  "Repository not found"
// @Router       /api/repo/{id}/file/{path} [get]
func (h *HTTPHandler) GetFile(c fiber.Ctx) error {
	id := c.Params("id")
	path := c.Params("*")

	content, err := h.Snapshots.FetchFile(c.Context(), id, path)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(FileContentResponse{Path: path, Content: content})
}

// GetImage godoc
// @Summary      Fetch a repository image as a data URL
// @Description  Relays a private repository asset as an embedded data URL so the visitor's browser never needs the owner's token.
// @Tags         repo
// @Produce      json
// @Param        repoId  query     string  true  "Share ID"
// @Param        path    query     string  true  "Image path inside the repository"
// @Success      200     {object}  ImageResponse
// @Failure      400     {object}  ErrorResponse  "Missing repoId or path parameter"
// @Failure      404     {object}  ErrorResponse  "Image not found or access denied"
// @Failure      500     {object}  ErrorResponse  "Internal server error"
// @Router       /api/image [get]
func (h *HTTPHandler) GetImage(c fiber.Ctx) error {
	repoID := c.Query("repoId")
	imagePath := c.Query("path")

	if repoID == "" || imagePath == "" {
		return c.Status(400).JSON(ErrorResponse{Error: "Missing repoId or path parameter"})
	}

	imageData, err := h.Snapshots.FetchImageAsDataURL(c.Context(), repoID, imagePath)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrAccessDenied) || errors.Is(err, domain.ErrDecodeFailure) {
			return c.Status(404).JSON(ErrorResponse{Error: "Image not found or access denied"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Internal server error"})
	}

	return c.JSON(ImageResponse{ImageData: imageData})
}

// GetViewStats godoc
// @Summary      View statistics for a shared repository
// @Tags         repo
// @Produce      json
// @Param        id   path      string  true  "Share ID"
// @Success      200  {object}  domain.ViewStat
// @Failure      404  {object}  ErrorResponse  "Repository not found"
// @Router       /api/repo/{id}/stats [get]
func (h *HTTPHandler) GetViewStats(c fiber.Ctx) error {
	stats, err := h.Views.GetViewStats(c.Context(), c.Params("id"))
	if err != nil {
		return notFound(c)
	}
	return c.JSON(stats)
}

// ListRepos godoc
// @Summary      List the signed-in user's repositories
// @Tags         publish
// @Produce      json
// @Success      200  {array}   domain.Repo
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/repos [get]
func (h *HTTPHandler) ListRepos(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized: User ID not found"})
	}

	repos, err := h.Publish.ListUserRepos(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrAccessDenied) {
			return c.Status(401).JSON(ErrorResponse{Error: "No GitHub access token available"})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch repositories"})
	}
	return c.JSON(repos)
}

// ListPublished godoc
// @Summary      List the signed-in user's published repositories
// @Tags         publish
// @Produce      json
// @Success      200  {array}   domain.PublishedRepo
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /api/published [get]
func (h *HTTPHandler) ListPublished(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized: User ID not found"})
	}

	published, err := h.Publish.ListPublishedRepos(c.Context(), userID)
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to fetch published repositories"})
	}
	return c.JSON(published)
}

// PublishRepo godoc
// @Summary      Publish a repository
// @Description  Creates a share link for one of the signed-in user's repositories. Accepts "owner/repo" or a full repository URL.
// @Tags         publish
// @Accept       json
// @Produce      json
// @Param        request  body      PublishRequest  true  "Repository reference"
// @Success      200      {object}  domain.Redirect  "Share created"
// @Failure      400      {object}  ErrorResponse  "Invalid repository reference"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /api/publish [post]
func (h *HTTPHandler) PublishRepo(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized: User ID not found"})
	}

	var req PublishRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(400).JSON(ErrorResponse{Error: "Invalid input"})
	}

	redirect, err := h.Publish.PublishRepo(c.Context(), userID, req.RepoRef)
	if err != nil {
		if errors.Is(err, domain.ErrParseFailure) {
			return c.Status(400).JSON(ErrorResponse{Error: "Invalid repository reference. Use owner/repo or a full repository URL."})
		}
		return c.Status(500).JSON(ErrorResponse{Error: "An error occurred while publishing the repository"})
	}
	return c.JSON(redirect)
}

// DeletePublished godoc
// @Summary      Unpublish a repository
// @Tags         publish
// @Produce      json
// @Param        id   path      string  true  "Share ID"
// @Success      200  {object}  map[string]string  "Unpublished"
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      404  {object}  ErrorResponse  "Not found or not owned by the user"
// @Router       /api/publish/{id} [delete]
func (h *HTTPHandler) DeletePublished(c fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok || userID == "" {
		return c.Status(401).JSON(ErrorResponse{Error: "Unauthorized: User ID not found"})
	}

	deleted, err := h.Publish.DeleteRedirect(c.Context(), userID, c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(ErrorResponse{Error: "Failed to delete repository"})
	}
	if !deleted {
		return c.Status(404).JSON(ErrorResponse{Error: "Repository not found or you don't have permission to delete it"})
	}
	return c.JSON(fiber.Map{"message": "Repository successfully unpublished"})
}
