package notion_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/TKMhub/simpro-app/internal/mocks"
	"github.com/TKMhub/simpro-app/internal/notion"
)

const (
	resolverRootID = "99999999-8888-7777-6666-555555555555"
	pageID         = "0a1b2c3d-4e5f-6071-8293-a4b5c6d7e8f9"
)

func titleProps(title string) map[string]notion.PageProperty {
	return map[string]notion.PageProperty{
		"Name": {Type: "title", Title: []notion.RichTextSpan{{PlainText: title}}},
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("id-shaped hint resolves without any service call", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		id, ok, err := r.Resolve(ctx, "https://www.notion.so/Post-0a1b2c3d4e5f60718293a4b5c6d7e8f9", nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pageID, id)
	})

	t.Run("no root scope means non-id hints do not resolve", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, "")

		_, ok, err := r.Resolve(ctx, "My Post", []string{"My Post"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("resolves by child page title under the root", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(&notion.ChildrenPage{
				Results: []notion.RawBlock{
					{ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", Type: "child_page", ChildPage: &notion.ChildPageBody{Title: "Other Post"}},
					{ID: pageID, Type: "child_page", ChildPage: &notion.ChildPageBody{Title: "My Post"}},
				},
			}, nil)

		id, ok, err := r.Resolve(ctx, "My Post", nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pageID, id)
	})

	t.Run("falls back to search preferring exact title match", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(&notion.ChildrenPage{}, nil)
		api.EXPECT().
			SearchPages(mock.Anything, "My Post").
			Return(&notion.SearchResult{
				Results: []notion.SearchPage{
					{Object: "page", ID: "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", Properties: titleProps("My Post Draft")},
					{Object: "page", ID: pageID, Properties: titleProps("My Post")},
				},
			}, nil)

		id, ok, err := r.Resolve(ctx, "My Post", nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pageID, id)
	})

	t.Run("search falls back to the first page hit", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(&notion.ChildrenPage{}, nil)
		api.EXPECT().
			SearchPages(mock.Anything, "My Post").
			Return(&notion.SearchResult{
				Results: []notion.SearchPage{
					{Object: "database", ID: "not-a-page"},
					{Object: "page", ID: pageID, Properties: titleProps("My Post, revisited")},
				},
			}, nil)

		id, ok, err := r.Resolve(ctx, "My Post", nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pageID, id)
	})

	t.Run("tries title candidates in order after the hint", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(&notion.ChildrenPage{}, nil)
		api.EXPECT().
			SearchPages(mock.Anything, "my-post").
			Return(&notion.SearchResult{}, nil)
		api.EXPECT().
			SearchPages(mock.Anything, "My Post").
			Return(&notion.SearchResult{
				Results: []notion.SearchPage{{Object: "page", ID: pageID, Properties: titleProps("My Post")}},
			}, nil)

		id, ok, err := r.Resolve(ctx, "my-post", []string{"My Post", "my-post", " "})
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, pageID, id)
	})

	t.Run("no match anywhere is a clean miss", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(&notion.ChildrenPage{}, nil)
		api.EXPECT().
			SearchPages(mock.Anything, "My Post").
			Return(&notion.SearchResult{}, nil)

		_, ok, err := r.Resolve(ctx, "My Post", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("transport errors propagate", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		api.EXPECT().
			ListChildren(mock.Anything, resolverRootID, "").
			Return(nil, errors.New("service unavailable"))

		_, _, err := r.Resolve(ctx, "My Post", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service unavailable")
	})

	t.Run("blank hint with no candidates does not resolve", func(t *testing.T) {
		api := mocks.NewMockNotionAPI(t)
		r := notion.NewResolver(api, resolverRootID)

		_, ok, err := r.Resolve(ctx, "", nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
