package notion_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKMhub/simpro-app/internal/notion"
)

func TestClient_ListChildren(t *testing.T) {
	ctx := context.Background()

	t.Run("sends auth and version headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/blocks/"+pageID+"/children", r.URL.Path)
			assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
			assert.Equal(t, "2022-06-28", r.Header.Get("Notion-Version"))
			assert.Equal(t, "100", r.URL.Query().Get("page_size"))
			assert.Empty(t, r.URL.Query().Get("start_cursor"))

			_ = json.NewEncoder(w).Encode(notion.ChildrenPage{
				Results: []notion.RawBlock{{ID: "a", Type: "paragraph"}},
			})
		}))
		defer srv.Close()

		c := notion.NewClient("secret-token", notion.WithBaseURL(srv.URL))

		page, err := c.ListChildren(ctx, pageID, "")
		require.NoError(t, err)
		require.Len(t, page.Results, 1)
		assert.Equal(t, "a", page.Results[0].ID)
	})

	t.Run("passes the start cursor through", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "cur-1", r.URL.Query().Get("start_cursor"))
			_ = json.NewEncoder(w).Encode(notion.ChildrenPage{})
		}))
		defer srv.Close()

		c := notion.NewClient("secret-token", notion.WithBaseURL(srv.URL))

		_, err := c.ListChildren(ctx, pageID, "cur-1")
		require.NoError(t, err)
	})

	t.Run("non-2xx status surfaces the body snippet", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"code":"object_not_found"}`))
		}))
		defer srv.Close()

		c := notion.NewClient("secret-token", notion.WithBaseURL(srv.URL))

		_, err := c.ListChildren(ctx, pageID, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
		assert.Contains(t, err.Error(), "object_not_found")
	})
}

func TestClient_SearchPages(t *testing.T) {
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Query  string `json:"query"`
			Filter struct {
				Value    string `json:"value"`
				Property string `json:"property"`
			} `json:"filter"`
			PageSize int `json:"page_size"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "My Post", body.Query)
		assert.Equal(t, "page", body.Filter.Value)
		assert.Equal(t, "object", body.Filter.Property)
		assert.Equal(t, 25, body.PageSize)

		_ = json.NewEncoder(w).Encode(notion.SearchResult{
			Results: []notion.SearchPage{{Object: "page", ID: pageID}},
		})
	}))
	defer srv.Close()

	c := notion.NewClient("secret-token", notion.WithBaseURL(srv.URL))

	result, err := c.SearchPages(ctx, "My Post")
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, pageID, result.Results[0].ID)
}

func TestSearchPage_Title(t *testing.T) {
	t.Run("reads the title property", func(t *testing.T) {
		p := notion.SearchPage{
			Object:     "page",
			Properties: titleProps("  My Post  "),
		}
		assert.Equal(t, "My Post", p.Title())
	})

	t.Run("falls back to child page title", func(t *testing.T) {
		p := notion.SearchPage{
			Object:    "page",
			ChildPage: &notion.ChildPageBody{Title: "Nested Post"},
		}
		assert.Equal(t, "Nested Post", p.Title())
	})

	t.Run("no title yields empty string", func(t *testing.T) {
		assert.Equal(t, "", notion.SearchPage{Object: "page"}.Title())
	})
}
