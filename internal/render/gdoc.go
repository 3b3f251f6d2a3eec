package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"unicode/utf16"

	"github.com/calegray/drivetoc/internal/outline"
)

const (
	folderFontPT = 14
	fileFontPT   = 11
	indentPT     = 18
)

// DocWriter renders an outline into a newly created Google Doc through the
// Docs REST API: one insertText for the whole body, then style and indent
// requests per line.
type DocWriter struct {
	HTTP *http.Client
	Base string
}

func NewDocWriter(httpClient *http.Client) *DocWriter {
	return &DocWriter{HTTP: httpClient, Base: "https://docs.googleapis.com/v1"}
}

// Write creates the document and applies the outline. It returns the URL of
// the new document.
func (w *DocWriter) Write(ctx context.Context, title string, entries []outline.Entry) (string, error) {
	docID, err := w.createDoc(ctx, title)
	if err != nil {
		return "", err
	}
	reqs := buildRequests(entries)
	if len(reqs) > 0 {
		if err := w.batchUpdate(ctx, docID, reqs); err != nil {
			return "", err
		}
	}
	return "https://docs.google.com/document/d/" + docID + "/edit", nil
}

func (w *DocWriter) createDoc(ctx context.Context, title string) (string, error) {
	body, _ := json.Marshal(map[string]string{"title": title})
	req, _ := http.NewRequestWithContext(ctx, "POST", w.Base+"/documents", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("create doc http %d: %s", resp.StatusCode, string(b))
	}
	var out struct {
		DocumentID string `json:"documentId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.DocumentID == "" {
		return "", fmt.Errorf("create doc: empty documentId")
	}
	return out.DocumentID, nil
}

func (w *DocWriter) batchUpdate(ctx context.Context, docID string, reqs []docsRequest) error {
	body, _ := json.Marshal(map[string]any{"requests": reqs})
	u := fmt.Sprintf("%s/documents/%s:batchUpdate", w.Base, docID)
	req, _ := http.NewRequestWithContext(ctx, "POST", u, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("batchUpdate http %d: %s", resp.StatusCode, string(b))
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}

type docsRequest struct {
	InsertText           *insertTextRequest           `json:"insertText,omitempty"`
	UpdateTextStyle      *updateTextStyleRequest      `json:"updateTextStyle,omitempty"`
	UpdateParagraphStyle *updateParagraphStyleRequest `json:"updateParagraphStyle,omitempty"`
}

type docsRange struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

type insertTextRequest struct {
	Text     string `json:"text"`
	Location struct {
		Index int `json:"index"`
	} `json:"location"`
}

type textStyle struct {
	Bold     bool       `json:"bold"`
	FontSize *dimension `json:"fontSize,omitempty"`
	Link     *docsLink  `json:"link,omitempty"`
}

type docsLink struct {
	URL string `json:"url"`
}

type dimension struct {
	Magnitude float64 `json:"magnitude"`
	Unit      string  `json:"unit"`
}

type updateTextStyleRequest struct {
	Range     docsRange `json:"range"`
	TextStyle textStyle `json:"textStyle"`
	Fields    string    `json:"fields"`
}

type paragraphStyle struct {
	IndentStart *dimension `json:"indentStart,omitempty"`
}

type updateParagraphStyleRequest struct {
	Range          docsRange      `json:"range"`
	ParagraphStyle paragraphStyle `json:"paragraphStyle"`
	Fields         string         `json:"fields"`
}

// lineText is the literal paragraph text for one entry, newline included.
func lineText(e outline.Entry) string {
	if e.Emoji != "" {
		return e.Emoji + " " + e.Name + "\n"
	}
	return e.Name + "\n"
}

// docLen is the Docs API length of s, which counts UTF-16 code units rather
// than bytes or runes. Emoji outside the BMP count as two.
func docLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

// buildRequests turns the flattened outline into a single insertText at index 1
// plus per-paragraph styling. Styles must reference post-insertion indexes, so
// the whole body text is laid out first and offsets accumulated alongside.
func buildRequests(entries []outline.Entry) []docsRequest {
	if len(entries) == 0 {
		return nil
	}

	var text bytes.Buffer
	for _, e := range entries {
		text.WriteString(lineText(e))
	}

	insert := &insertTextRequest{Text: text.String()}
	insert.Location.Index = 1
	reqs := []docsRequest{{InsertText: insert}}

	offset := 1
	for _, e := range entries {
		line := lineText(e)
		lineLen := docLen(line)

		// A nameless entry renders as a bare newline; the Docs API rejects
		// zero-width style ranges, so skip styling it.
		if lineLen > 1 {
			size := fileFontPT
			if e.IsFolder {
				size = folderFontPT
			}
			style := textStyle{
				Bold:     e.IsFolder,
				FontSize: &dimension{Magnitude: float64(size), Unit: "PT"},
			}
			if e.Link != "" {
				style.Link = &docsLink{URL: e.Link}
			}
			reqs = append(reqs, docsRequest{UpdateTextStyle: &updateTextStyleRequest{
				Range:     docsRange{StartIndex: offset, EndIndex: offset + lineLen - 1},
				TextStyle: style,
				Fields:    "bold,fontSize,link",
			}})
		}

		if e.Depth > 0 {
			reqs = append(reqs, docsRequest{UpdateParagraphStyle: &updateParagraphStyleRequest{
				Range: docsRange{StartIndex: offset, EndIndex: offset + lineLen},
				ParagraphStyle: paragraphStyle{
					IndentStart: &dimension{Magnitude: float64(e.Depth * indentPT), Unit: "PT"},
				},
				Fields: "indentStart",
			}})
		}
		offset += lineLen
	}
	return reqs
}
