package outline

import (
	"context"
)

// Folder is the slice of a storage provider the flattener needs. Implementations
// do the actual listing (Drive API, in-memory fixtures); enumeration order is
// whatever the provider yields, not sorted here.
type Folder interface {
	Name() string
	Link() string
	Files(ctx context.Context) ([]File, error)
	Subfolders(ctx context.Context) ([]Folder, error)
}

type File interface {
	Name() string
	Link() string
	MIMEType() string
}

// Entry is one flattened record of the tree. Depth counts nesting levels below
// the traversal root: the root's direct children are at 0.
type Entry struct {
	Name     string
	Link     string
	IsFolder bool
	Depth    int
	Emoji    string
}

// Flatten walks folder depth-first and returns its subtree as a flat list:
// all direct files first, then each subfolder followed immediately by its own
// expanded subtree. A subfolder's entry sits at the same depth as its sibling
// files; its contents are one level deeper. The root folder itself gets no entry.
//
// Listing errors abort the walk; whatever was accumulated is dropped.
func Flatten(ctx context.Context, folder Folder, depth int, decorate bool) ([]Entry, error) {
	var out []Entry

	files, err := folder.Files(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		emoji := ""
		if decorate {
			emoji = EmojiFor(Classify(f.MIMEType()))
		}
		out = append(out, Entry{
			Name:  f.Name(),
			Link:  f.Link(),
			Depth: depth,
			Emoji: emoji,
		})
	}

	subs, err := folder.Subfolders(ctx)
	if err != nil {
		return nil, err
	}
	for _, sub := range subs {
		emoji := ""
		if decorate {
			emoji = FolderEmoji
		}
		out = append(out, Entry{
			Name:     sub.Name(),
			Link:     sub.Link(),
			IsFolder: true,
			Depth:    depth,
			Emoji:    emoji,
		})
		children, err := Flatten(ctx, sub, depth+1, decorate)
		if err != nil {
			return nil, err
		}
		out = append(out, children...)
	}
	return out, nil
}
