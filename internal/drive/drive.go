package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const MimeFolder = "application/vnd.google-apps.folder"

type Client struct {
	HTTP *http.Client
	Base string
}

func NewClient(httpClient *http.Client) *Client {
	return &Client{HTTP: httpClient, Base: "https://www.googleapis.com/drive/v3"}
}

type File struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MimeType    string `json:"mimeType"`
	WebViewLink string `json:"webViewLink"`
}

func (f File) IsFolder() bool { return f.MimeType == MimeFolder }

type fileList struct {
	Files         []File `json:"files"`
	NextPageToken string `json:"nextPageToken"`
}

// GetFile fetches metadata for a single file or folder by ID.
func (c *Client) GetFile(ctx context.Context, id string) (*File, error) {
	u := fmt.Sprintf("%s/files/%s?fields=id,name,mimeType,webViewLink&supportsAllDrives=true",
		c.Base, url.PathEscape(id))
	req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get file http %d: %s", resp.StatusCode, string(b))
	}
	var f File
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		return nil, err
	}
	return &f, nil
}

// ListChildren returns every non-trashed direct child of folderID, following
// nextPageToken until the listing is exhausted. Order is whatever the API
// yields.
func (c *Client) ListChildren(ctx context.Context, folderID string) ([]File, error) {
	var out []File
	pageToken := ""
	for {
		q := url.Values{}
		q.Set("q", fmt.Sprintf("'%s' in parents and trashed=false", folderID))
		q.Set("fields", "nextPageToken,files(id,name,mimeType,webViewLink)")
		q.Set("pageSize", "1000")
		q.Set("supportsAllDrives", "true")
		q.Set("includeItemsFromAllDrives", "true")
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}
		u := c.Base + "/files?" + q.Encode()
		req, _ := http.NewRequestWithContext(ctx, "GET", u, nil)
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return nil, err
		}
		var page fileList
		if resp.StatusCode != 200 {
			b, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("list http %d: %s", resp.StatusCode, string(b))
		}
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, page.Files...)
		if page.NextPageToken == "" {
			return out, nil
		}
		pageToken = page.NextPageToken
	}
}
