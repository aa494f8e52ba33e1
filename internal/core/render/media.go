package render

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
)

// ImageFetcher is the authenticated image path: it turns a repository-relative
// path into a data URL using the redirect owner's stored token, so the
// visitor's browser never sees the token.
type ImageFetcher interface {
	FetchImageAsDataURL(ctx context.Context, redirectID, path string) (string, error)
}

type MediaResolver struct {
	Images ImageFetcher
}

func NewMediaResolver(images ImageFetcher) *MediaResolver {
	return &MediaResolver{Images: images}
}

// Resolve fills in every media placeholder in a render result. References are
// resolved concurrently, one goroutine each, then substituted back in their
// original positions. Absolute sources pass through untouched; relative ones
// go through the authenticated image path when a redirect ID is available and
// fall back to the raw-content host otherwise.
func (r *MediaResolver) Resolve(ctx context.Context, res Result, rctx Context) string {
	if len(res.Media) == 0 {
		return res.Markup
	}

	elements := make([]string, len(res.Media))
	var wg sync.WaitGroup
	for i, ref := range res.Media {
		wg.Add(1)
		go func(i int, ref MediaRef) {
			defer wg.Done()
			elements[i] = r.renderRef(ctx, ref, rctx)
		}(i, ref)
	}
	wg.Wait()

	markup := res.Markup
	for i, ref := range res.Media {
		markup = strings.Replace(markup, mediaPlaceholder(ref.ID), elements[i], 1)
	}
	return markup
}

func (r *MediaResolver) renderRef(ctx context.Context, ref MediaRef, rctx Context) string {
	src := r.resolveSrc(ctx, ref, rctx)
	if ref.IsVideo {
		return videoElement(src, ref.Src)
	}
	return imageElement(src, ref.Alt)
}

func (r *MediaResolver) resolveSrc(ctx context.Context, ref MediaRef, rctx Context) string {
	if isAbsolute(ref.Src) {
		return ref.Src
	}
	if rctx.RedirectID != "" && r.Images != nil {
		dataURL, err := r.Images.FetchImageAsDataURL(ctx, rctx.RedirectID, ref.Src)
		if err == nil {
			return dataURL
		}
		log.Printf("media resolution failed for %s: %v", ref.Src, err)
	}
	return resolveURL(ref.Src, rctx)
}

func imageElement(src, alt string) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" class="max-w-full h-auto rounded border my-3" loading="lazy" onerror="this.style.display='none'" />`, src, alt)
}

func videoElement(src, originalSrc string) string {
	ext := strings.ToLower(originalSrc[strings.LastIndex(originalSrc, ".")+1:])
	return fmt.Sprintf(`<video controls class="max-w-full h-auto rounded border my-3" preload="metadata"><source src="%s" type="video/%s">Your browser does not support the video tag.</video>`, src, ext)
}
