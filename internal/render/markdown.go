package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/calegray/drivetoc/internal/outline"
)

// Markdown writes the outline as a nested bullet list: two spaces of indent
// per depth level, folders bold, every name linked, emoji in front when set.
func Markdown(w io.Writer, entries []outline.Entry) error {
	for _, e := range entries {
		indent := strings.Repeat("  ", e.Depth)
		label := "[" + e.Name + "](" + e.Link + ")"
		if e.IsFolder {
			label = "**" + label + "**"
		}
		if e.Emoji != "" {
			label = e.Emoji + " " + label
		}
		if _, err := fmt.Fprintf(w, "%s- %s\n", indent, label); err != nil {
			return err
		}
	}
	return nil
}
