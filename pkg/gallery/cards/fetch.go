package cards

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
)

// Fetcher opens the bytes behind an image URL.
type Fetcher interface {
	Fetch(ctx context.Context, ref string) (io.ReadCloser, error)
}

// HTTPFetcher downloads images over HTTP.
type HTTPFetcher struct {
	Client *http.Client
}

// Fetch issues a GET request for ref.
func (f HTTPFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// FileFetcher serves image URLs from a local directory tree, using the URL
// path below Root. It lets the gallery run against an exported file store.
type FileFetcher struct {
	Root string
}

// Fetch opens the file the path of ref points at.
func (f FileFetcher) Fetch(ctx context.Context, ref string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	u, err := url.Parse(ref)
	if err != nil {
		return nil, err
	}
	// Cleaning against "/" keeps the result inside Root.
	p := filepath.Join(f.Root, filepath.FromSlash(path.Clean("/"+u.Path)))
	return os.Open(p)
}
