package drive

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFolderHandleSplitsChildrenWithOneListing(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"files":[
			{"id":"d1","name":"sub","mimeType":"application/vnd.google-apps.folder","webViewLink":"https://x/d1"},
			{"id":"f1","name":"a.txt","mimeType":"text/plain","webViewLink":"https://x/f1"},
			{"id":"f2","name":"sheet","mimeType":"application/vnd.google-apps.spreadsheet","webViewLink":"https://x/f2"}
		]}`)
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), Base: srv.URL}
	h := NewFolderHandle(c, File{ID: "root1", Name: "root", WebViewLink: "https://x/root"})
	require.Equal(t, "root", h.Name())
	require.Equal(t, "https://x/root", h.Link())

	ctx := context.Background()
	files, err := h.Files(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, "a.txt", files[0].Name())
	require.Equal(t, "application/vnd.google-apps.spreadsheet", files[1].MIMEType())

	subs, err := h.Subfolders(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, "sub", subs[0].Name())

	require.Equal(t, 1, calls)
}
