package middleware

import (
	"github.com/Tony-ArtZ/git-peek/internal/core/auth"
	"github.com/gofiber/fiber/v3"
)

// AuthMiddleware guards the publish endpoints. Visitors of share links never
// pass through here; only repository owners do.
type AuthMiddleware struct {
	validator *auth.SessionValidator
}

type UnauthorizedResponse struct {
	Error string `json:"error" example:"Unauthorized: No session found"`
}

func NewAuthMiddleware(validator *auth.SessionValidator) *AuthMiddleware {
	return &AuthMiddleware{validator: validator}
}

func (am *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	sessionToken, err := auth.GetSessionFromCookie(c.Get("Cookie"))
	if err != nil {
		return c.Status(401).JSON(UnauthorizedResponse{
			Error: "Unauthorized: No session found",
		})
	}

	userID, err := am.validator.ValidateSession(c.Context(), sessionToken)
	if err != nil {
		return c.Status(401).JSON(UnauthorizedResponse{
			Error: "Unauthorized: Invalid or expired session",
		})
	}

	c.Locals("userID", userID)

	return c.Next()
}
