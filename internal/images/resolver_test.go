package images_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TKMhub/simpro-app/internal/images"
	"github.com/TKMhub/simpro-app/internal/mocks"
)

func TestResolver_AbsoluteURLs(t *testing.T) {
	ctx := context.Background()
	r := images.NewResolver(nil, "blog", "./public")

	t.Run("direct unsplash asset passes through unchanged", func(t *testing.T) {
		u := "https://images.unsplash.com/photo-1518770660439-4636190af475?w=800"
		assert.Equal(t, u, r.Resolve(ctx, u, "post"))
	})

	t.Run("unsplash page url with photos segment is rewritten", func(t *testing.T) {
		got := r.Resolve(ctx, "https://unsplash.com/photos/abcdEFGh123", "post")
		assert.Equal(t, "https://images.unsplash.com/photo-abcdEFGh123?auto=format&fit=crop&w=1600&q=80", got)
	})

	t.Run("unsplash slug suffix is rewritten", func(t *testing.T) {
		got := r.Resolve(ctx, "https://unsplash.com/a-laptop-on-a-desk-AbCdEfGhIj_", "post")
		assert.Equal(t, "https://images.unsplash.com/photo-AbCdEfGhIj_?auto=format&fit=crop&w=1600&q=80", got)
	})

	t.Run("unrecognized unsplash page url falls back to the default", func(t *testing.T) {
		got := r.Resolve(ctx, "https://unsplash.com/collections", "post")
		assert.Equal(t, images.DefaultHeaderImage, got)
	})

	t.Run("other absolute urls pass through", func(t *testing.T) {
		u := "https://cdn.example.com/header.png"
		assert.Equal(t, u, r.Resolve(ctx, u, "post"))
	})
}

func TestResolver_LocalAssets(t *testing.T) {
	ctx := context.Background()

	t.Run("prefers a sibling svg when one exists", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "images"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "images", "logo.svg"), []byte("<svg/>"), 0o644))

		r := images.NewResolver(nil, "blog", root)
		assert.Equal(t, "/images/logo.svg", r.Resolve(ctx, "/images/logo.png", "post"))
	})

	t.Run("keeps the raster path when no svg sibling exists", func(t *testing.T) {
		r := images.NewResolver(nil, "blog", t.TempDir())
		assert.Equal(t, "/images/logo.jpg", r.Resolve(ctx, "/images/logo.jpg", "post"))
	})

	t.Run("non-raster local paths pass through", func(t *testing.T) {
		r := images.NewResolver(nil, "blog", t.TempDir())
		assert.Equal(t, "/images/logo.svg", r.Resolve(ctx, "/images/logo.svg", "post"))
	})
}

func TestResolver_StorageKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves via the storage public url", func(t *testing.T) {
		storage := mocks.NewMockObjectStorage(t)
		storage.EXPECT().
			PublicURL("blog", "headers/post.jpg").
			Return("https://cdn.example.com/blog/headers/post.jpg")

		r := images.NewResolver(storage, "blog", "./public")
		assert.Equal(t, "https://cdn.example.com/blog/headers/post.jpg",
			r.Resolve(ctx, "headers/post.jpg", "post"))
	})

	t.Run("unconfigured storage falls back to the default", func(t *testing.T) {
		r := images.NewResolver(nil, "blog", "./public")
		assert.Equal(t, images.DefaultHeaderImage, r.Resolve(ctx, "headers/post.jpg", "post"))
	})

	t.Run("empty public url falls back to the default", func(t *testing.T) {
		storage := mocks.NewMockObjectStorage(t)
		storage.EXPECT().
			PublicURL("blog", "headers/post.jpg").
			Return("")

		r := images.NewResolver(storage, "blog", "./public")
		assert.Equal(t, images.DefaultHeaderImage, r.Resolve(ctx, "headers/post.jpg", "post"))
	})
}

func TestResolver_ConventionalCover(t *testing.T) {
	ctx := context.Background()

	t.Run("uses covers/{slug}.jpg when it exists", func(t *testing.T) {
		storage := mocks.NewMockObjectStorage(t)
		storage.EXPECT().
			ObjectExists(mock.Anything, "blog", "covers/post.jpg").
			Return(true, nil)
		storage.EXPECT().
			PublicURL("blog", "covers/post.jpg").
			Return("https://cdn.example.com/blog/covers/post.jpg")

		r := images.NewResolver(storage, "blog", "./public")
		assert.Equal(t, "https://cdn.example.com/blog/covers/post.jpg", r.Resolve(ctx, "", "post"))
	})

	t.Run("missing cover falls back to the default", func(t *testing.T) {
		storage := mocks.NewMockObjectStorage(t)
		storage.EXPECT().
			ObjectExists(mock.Anything, "blog", "covers/post.jpg").
			Return(false, nil)

		r := images.NewResolver(storage, "blog", "./public")
		assert.Equal(t, images.DefaultHeaderImage, r.Resolve(ctx, "", "post"))
	})

	t.Run("storage errors degrade to the default", func(t *testing.T) {
		storage := mocks.NewMockObjectStorage(t)
		storage.EXPECT().
			ObjectExists(mock.Anything, "blog", "covers/post.jpg").
			Return(false, errors.New("timeout"))

		r := images.NewResolver(storage, "blog", "./public")
		assert.Equal(t, images.DefaultHeaderImage, r.Resolve(ctx, "", "post"))
	})

	t.Run("no path and no slug yields the default", func(t *testing.T) {
		r := images.NewResolver(nil, "blog", "./public")
		assert.Equal(t, images.DefaultHeaderImage, r.Resolve(ctx, "", ""))
	})
}
