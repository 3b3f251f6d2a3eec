package outline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// In-memory provider fixtures.

type memFile struct {
	name string
	mime string
}

func (f memFile) Name() string     { return f.name }
func (f memFile) Link() string     { return "https://drive.test/file/" + f.name }
func (f memFile) MIMEType() string { return f.mime }

type memFolder struct {
	name    string
	files   []File
	folders []Folder
	listErr error
}

func (d *memFolder) Name() string { return d.name }
func (d *memFolder) Link() string { return "https://drive.test/folder/" + d.name }

func (d *memFolder) Files(ctx context.Context) ([]File, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	return d.files, nil
}

func (d *memFolder) Subfolders(ctx context.Context) ([]Folder, error) {
	if d.listErr != nil {
		return nil, d.listErr
	}
	return d.folders, nil
}

func doc(name string) memFile { return memFile{name: name, mime: "text/plain"} }

func TestFlattenOrderAndDepth(t *testing.T) {
	// root: files A, B; subfolder C containing D.
	root := &memFolder{
		name:  "root",
		files: []File{doc("A.txt"), doc("B.txt")},
		folders: []Folder{
			&memFolder{name: "C", files: []File{doc("D.txt")}},
		},
	}

	got, err := Flatten(context.Background(), root, 0, false)
	require.NoError(t, err)
	require.Len(t, got, 4)

	require.Equal(t, Entry{Name: "A.txt", Link: "https://drive.test/file/A.txt", Depth: 0}, got[0])
	require.Equal(t, Entry{Name: "B.txt", Link: "https://drive.test/file/B.txt", Depth: 0}, got[1])
	require.Equal(t, Entry{Name: "C", Link: "https://drive.test/folder/C", IsFolder: true, Depth: 0}, got[2])
	require.Equal(t, Entry{Name: "D.txt", Link: "https://drive.test/file/D.txt", Depth: 1}, got[3])
}

func TestFlattenEmptyFolder(t *testing.T) {
	got, err := Flatten(context.Background(), &memFolder{name: "empty"}, 0, true)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestFlattenFilesBeforeFoldersPerLevel(t *testing.T) {
	// Provider yields the folder listing first; files must still come first in
	// the output of each level.
	inner := &memFolder{name: "inner", files: []File{doc("deep.txt")}}
	mid := &memFolder{name: "mid", files: []File{doc("m.txt")}, folders: []Folder{inner}}
	root := &memFolder{name: "root", files: []File{doc("r.txt")}, folders: []Folder{mid}}

	got, err := Flatten(context.Background(), root, 0, false)
	require.NoError(t, err)

	names := make([]string, len(got))
	depths := make([]int, len(got))
	for i, e := range got {
		names[i] = e.Name
		depths[i] = e.Depth
	}
	require.Equal(t, []string{"r.txt", "mid", "m.txt", "inner", "deep.txt"}, names)
	require.Equal(t, []int{0, 0, 1, 1, 2}, depths)
}

func TestFlattenCountsWholeTree(t *testing.T) {
	// 3 files at root, 2 subfolders with 1 file each => 3 + 2 + 2 entries.
	root := &memFolder{
		name:  "root",
		files: []File{doc("a"), doc("b"), doc("c")},
		folders: []Folder{
			&memFolder{name: "s1", files: []File{doc("x")}},
			&memFolder{name: "s2", files: []File{doc("y")}},
		},
	}
	got, err := Flatten(context.Background(), root, 0, false)
	require.NoError(t, err)
	require.Len(t, got, 7)
}

func TestFlattenSubtreeMatchesDirectFlatten(t *testing.T) {
	sub := &memFolder{
		name:    "sub",
		files:   []File{doc("f1"), doc("f2")},
		folders: []Folder{&memFolder{name: "nested", files: []File{doc("g")}}},
	}
	root := &memFolder{name: "root", folders: []Folder{sub}}

	whole, err := Flatten(context.Background(), root, 0, true)
	require.NoError(t, err)
	direct, err := Flatten(context.Background(), sub, 1, true)
	require.NoError(t, err)

	// whole[0] is sub's own entry at depth 0; the rest is exactly sub's subtree.
	require.True(t, whole[0].IsFolder)
	require.Equal(t, 0, whole[0].Depth)
	require.Equal(t, direct, whole[1:])
}

func TestFlattenDecoration(t *testing.T) {
	root := &memFolder{
		name:    "root",
		files:   []File{memFile{name: "budget", mime: "application/vnd.google-apps.spreadsheet"}},
		folders: []Folder{&memFolder{name: "sub"}},
	}

	plain, err := Flatten(context.Background(), root, 0, false)
	require.NoError(t, err)
	for _, e := range plain {
		require.Empty(t, e.Emoji)
	}

	decorated, err := Flatten(context.Background(), root, 0, true)
	require.NoError(t, err)
	require.Equal(t, "📊", decorated[0].Emoji)
	require.Equal(t, FolderEmoji, decorated[1].Emoji)
}

func TestFlattenPropagatesListError(t *testing.T) {
	boom := errors.New("insufficient permissions")
	root := &memFolder{
		name:    "root",
		files:   []File{doc("ok.txt")},
		folders: []Folder{&memFolder{name: "broken", listErr: boom}},
	}
	got, err := Flatten(context.Background(), root, 0, false)
	require.ErrorIs(t, err, boom)
	require.Nil(t, got)
}
