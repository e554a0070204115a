// Package source fetches portfolio datasets over HTTP or from a local
// directory and decodes them into gallery records.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/javiermolinar/atelier/internal/gallery"
)

// ErrLoadFailure matches every dataset load error.
var ErrLoadFailure = errors.New("load failure")

// LoadError describes a failed dataset load.
type LoadError struct {
	Name     string // dataset file name
	Location string // resolved URL or path
	Status   int    // HTTP status, 0 when not applicable
	Err      error
}

func (e *LoadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("loading %s: %s returned status %d", e.Name, e.Location, e.Status)
	}
	return fmt.Sprintf("loading %s from %s: %v", e.Name, e.Location, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports LoadError as an ErrLoadFailure.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// Client loads dataset documents relative to a base location.
type Client struct {
	base    *url.URL // set for http(s) sources
	dir     string   // set for local sources
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout bounds every load. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// New creates a client. base may be an http(s) URL, a file:// URL or a
// directory path; empty means the working directory. URLs are treated as
// directories, so "https://host/art" resolves names under "/art/".
func New(base string, opts ...Option) (*Client, error) {
	c := &Client{http: http.DefaultClient}
	for _, opt := range opts {
		opt(c)
	}

	base = strings.TrimSpace(base)
	switch {
	case base == "":
		c.dir = "."
	case strings.HasPrefix(base, "http://"), strings.HasPrefix(base, "https://"):
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base url: %w", err)
		}
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
		c.base = u
	case strings.HasPrefix(base, "file://"):
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("parsing base url: %w", err)
		}
		c.dir = filepath.FromSlash(u.Path)
	default:
		c.dir = base
	}
	return c, nil
}

// Remote reports whether the client fetches over HTTP.
func (c *Client) Remote() bool {
	return c.base != nil
}

// Locate resolves a dataset name to the URL or path it is read from.
func (c *Client) Locate(name string) string {
	if c.base != nil {
		ref, err := url.Parse(name)
		if err != nil {
			return c.base.String() + name
		}
		return c.base.ResolveReference(ref).String()
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.dir, name)
}

// Fetch reads the raw document for name.
func (c *Client) Fetch(ctx context.Context, name string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	loc := c.Locate(name)
	if c.base == nil {
		data, err := os.ReadFile(loc)
		if err != nil {
			return nil, &LoadError{Name: name, Location: loc, Err: err}
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
	if err != nil {
		return nil, &LoadError{Name: name, Location: loc, Err: err}
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &LoadError{Name: name, Location: loc, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &LoadError{
			Name:     name,
			Location: loc,
			Status:   resp.StatusCode,
			Err:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Name: name, Location: loc, Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}

// Artworks loads and decodes an artwork list.
func (c *Client) Artworks(ctx context.Context, name string) ([]gallery.Artwork, error) {
	data, err := c.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	var docs []artworkDoc
	if err := decode(name, data, &docs); err != nil {
		return nil, &LoadError{Name: name, Location: c.Locate(name), Err: err}
	}
	out := make([]gallery.Artwork, len(docs))
	for i, d := range docs {
		out[i] = d.artwork()
	}
	return out, nil
}

// Featured loads and decodes a featured list.
func (c *Client) Featured(ctx context.Context, name string) ([]gallery.Featured, error) {
	data, err := c.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}
	var docs []featuredDoc
	if err := decode(name, data, &docs); err != nil {
		return nil, &LoadError{Name: name, Location: c.Locate(name), Err: err}
	}
	out := make([]gallery.Featured, len(docs))
	for i, d := range docs {
		out[i] = d.featured()
	}
	return out, nil
}
