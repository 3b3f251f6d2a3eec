package drive

import (
	"context"

	"github.com/calegray/drivetoc/internal/outline"
)

// FolderHandle adapts a Drive folder to the outline provider interfaces.
// The first listing call fetches all children; the other kind is served from
// the same response so one folder costs one listing. Handles hold no state
// beyond the lifetime of a single traversal.
type FolderHandle struct {
	c        *Client
	meta     File
	listed   bool
	children []File
}

func NewFolderHandle(c *Client, meta File) *FolderHandle {
	return &FolderHandle{c: c, meta: meta}
}

func (h *FolderHandle) Name() string { return h.meta.Name }
func (h *FolderHandle) Link() string { return h.meta.WebViewLink }

func (h *FolderHandle) list(ctx context.Context) ([]File, error) {
	if h.listed {
		return h.children, nil
	}
	children, err := h.c.ListChildren(ctx, h.meta.ID)
	if err != nil {
		return nil, err
	}
	h.children = children
	h.listed = true
	return children, nil
}

func (h *FolderHandle) Files(ctx context.Context) ([]outline.File, error) {
	children, err := h.list(ctx)
	if err != nil {
		return nil, err
	}
	var out []outline.File
	for _, f := range children {
		if !f.IsFolder() {
			out = append(out, fileHandle{meta: f})
		}
	}
	return out, nil
}

func (h *FolderHandle) Subfolders(ctx context.Context) ([]outline.Folder, error) {
	children, err := h.list(ctx)
	if err != nil {
		return nil, err
	}
	var out []outline.Folder
	for _, f := range children {
		if f.IsFolder() {
			out = append(out, &FolderHandle{c: h.c, meta: f})
		}
	}
	return out, nil
}

type fileHandle struct{ meta File }

func (f fileHandle) Name() string     { return f.meta.Name }
func (f fileHandle) Link() string     { return f.meta.WebViewLink }
func (f fileHandle) MIMEType() string { return f.meta.MimeType }
