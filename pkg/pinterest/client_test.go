package pinterest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListBoardPins_SendsTokenAndCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/b%201/pins", r.URL.EscapedPath())
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "20", r.URL.Query().Get("page_size"))
		assert.Equal(t, "next", r.URL.Query().Get("bookmark"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":"p1","note":"hello","media":{"images":{"150x150":{"url":"https://i.pinimg.com/150x150/a.jpg"}}}}],"bookmark":""}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.Client())
	page, err := c.ListBoardPins(context.Background(), "tok", "b 1", 20, "next")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "p1", page.Items[0].Id)
	assert.Equal(t, "hello", page.Items[0].Note)
	assert.Empty(t, page.Bookmark)
	assert.Equal(t, "https://i.pinimg.com/736x/a.jpg", ImageUrl(page.Items[0]))
}

func TestListBoards_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"code":3,"message":"forbidden"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).ListBoards(context.Background(), "tok", 25, "")
	var upstream *UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, http.StatusForbidden, upstream.StatusCode)
	assert.Equal(t, map[string]interface{}{"code": float64(3), "message": "forbidden"}, upstream.Details)
}

func TestImageUrl(t *testing.T) {
	tests := []struct {
		name string
		pin  Pin
		want string
	}{
		{
			name: "no media",
			pin:  Pin{},
			want: "",
		},
		{
			name: "preferred key wins over map order",
			pin: Pin{Media: &Media{Images: map[string]Image{
				"originals": {Url: "https://i.pinimg.com/originals/x.jpg"},
				"150x150":   {Url: "https://i.pinimg.com/150x150/x.jpg"},
			}}},
			want: "https://i.pinimg.com/736x/x.jpg",
		},
		{
			name: "variants without url are skipped",
			pin: Pin{Media: &Media{Images: map[string]Image{
				"150x150":   {},
				"originals": {Url: "https://i.pinimg.com/originals/y.jpg"},
			}}},
			want: "https://i.pinimg.com/originals/y.jpg",
		},
		{
			name: "media_list fallback takes first image",
			pin: Pin{MediaList: []MediaListItem{
				{MediaType: "video", ImageUrl: "https://v/150x150/v.jpg"},
				{MediaType: "image", ImageUrl: "https://i/150x150/z.jpg"},
				{MediaType: "image", ImageUrl: "https://i/150x150/w.jpg"},
			}},
			want: "https://i/736x/z.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageUrl(tt.pin))
		})
	}
}
