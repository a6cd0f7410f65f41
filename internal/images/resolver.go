// Package images resolves stored image references (absolute URLs, local
// asset paths, or object-storage keys) into displayable URLs, falling
// back to a fixed default image whenever a reference cannot be made
// usable.
package images

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/TKMhub/simpro-app/internal/logger"
	"github.com/TKMhub/simpro-app/internal/metrics"
)

// DefaultHeaderImage is the safety net for unconfigured environments,
// missing files, and unresolvable third-party references.
const DefaultHeaderImage = "/images/default-header.jpg"

var (
	absoluteURLPattern    = regexp.MustCompile(`(?i)^https?://`)
	unsplashSuffixPattern = regexp.MustCompile(`-([A-Za-z0-9_-]{11})$`)
)

// ObjectStorage is the slice of the object-storage service the resolver
// consumes.
type ObjectStorage interface {
	// PublicURL returns the public URL for bucket/key, or "" when the
	// storage is not configured for public access.
	PublicURL(bucket, key string) string
	// ObjectExists reports whether bucket/key exists.
	ObjectExists(ctx context.Context, bucket, key string) (bool, error)
}

// Resolver produces displayable URLs for stored image references.
// Every branch terminates in either a concrete URL or DefaultHeaderImage;
// Resolve never fails and never returns "".
type Resolver struct {
	storage   ObjectStorage // nil means degraded mode: storage branches fall back
	bucket    string
	assetRoot string // filesystem directory backing "/..." asset paths
}

// NewResolver creates a Resolver for one storage bucket. storage may be
// nil when no storage credentials are configured.
func NewResolver(storage ObjectStorage, bucket, assetRoot string) *Resolver {
	return &Resolver{storage: storage, bucket: bucket, assetRoot: assetRoot}
}

// Resolve maps imgPath to a displayable URL. Precedence is an explicit
// contract: absolute URL, then local asset path, then storage key. An
// empty imgPath tries the conventional covers/{slug}.jpg storage object
// before falling back to the default image.
func (r *Resolver) Resolve(ctx context.Context, imgPath, slug string) string {
	if imgPath == "" {
		return r.resolveConventionalCover(ctx, slug)
	}
	if absoluteURLPattern.MatchString(imgPath) {
		return r.resolveAbsoluteURL(imgPath)
	}
	if strings.HasPrefix(imgPath, "/") {
		return r.resolveLocalAsset(imgPath)
	}
	return r.resolveStorageKey(imgPath)
}

func (r *Resolver) resolveConventionalCover(ctx context.Context, slug string) string {
	if slug == "" || r.storage == nil {
		return r.fallback("no_path")
	}
	key := fmt.Sprintf("covers/%s.jpg", slug)
	ok, err := r.storage.ObjectExists(ctx, r.bucket, key)
	if err != nil {
		logger.WarnContext(ctx, "storage lookup failed",
			slog.String("bucket", r.bucket),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return r.fallback("storage_error")
	}
	if !ok {
		return r.fallback("missing_cover")
	}
	if u := r.storage.PublicURL(r.bucket, key); u != "" {
		return u
	}
	return r.fallback("no_public_url")
}

func (r *Resolver) resolveAbsoluteURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return r.fallback("bad_url")
	}
	switch strings.ToLower(u.Hostname()) {
	case "images.unsplash.com":
		return raw
	case "unsplash.com":
		// Page URLs are not directly renderable; rewrite to the direct
		// asset form or give up, never pass the page URL through.
		if direct, ok := unsplashDirectURL(u); ok {
			return direct
		}
		return r.fallback("unsplash_unrecognized")
	}
	return raw
}

// unsplashDirectURL extracts the photo ID from an unsplash.com page URL
// (a "photos/{id}" segment, or a trailing "-{11-char-id}" slug suffix)
// and rewrites it into the direct-asset URL with fixed sizing.
func unsplashDirectURL(u *url.URL) (string, bool) {
	var parts []string
	for _, p := range strings.Split(u.Path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	var id string
	for i, p := range parts {
		if p == "photos" && i+1 < len(parts) {
			id = parts[i+1]
			break
		}
	}
	if id == "" && len(parts) > 0 {
		if m := unsplashSuffixPattern.FindStringSubmatch(parts[len(parts)-1]); m != nil {
			id = m[1]
		}
	}
	if len(id) < 5 {
		return "", false
	}
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?auto=format&fit=crop&w=1600&q=80", id), true
}

func (r *Resolver) resolveLocalAsset(imgPath string) string {
	ext := strings.ToLower(filepath.Ext(imgPath))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return imgPath
	}
	// Prefer a same-named vector asset when one ships alongside the raster.
	svgPath := strings.TrimSuffix(imgPath, ext) + ".svg"
	abs := filepath.Join(r.assetRoot, strings.TrimPrefix(svgPath, "/"))
	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return svgPath
	}
	return imgPath
}

func (r *Resolver) resolveStorageKey(key string) string {
	if r.storage == nil {
		return r.fallback("storage_unconfigured")
	}
	if u := r.storage.PublicURL(r.bucket, key); u != "" {
		return u
	}
	return r.fallback("no_public_url")
}

func (r *Resolver) fallback(reason string) string {
	metrics.ImageFallbacksTotal.WithLabelValues(reason).Inc()
	return DefaultHeaderImage
}
