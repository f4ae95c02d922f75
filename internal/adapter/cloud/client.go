// Package cloud is the device-side client of the flashcards API. It mirrors
// the local store's CRUD surface over HTTP and keeps the session cookie in a
// cookie jar.
package cloud

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeout = 15 * time.Second
	sessionCookie  = "session"
)

// ErrRequestFailed matches every non-2xx answer from the server.
var ErrRequestFailed = errors.New("cloud request failed")

// StatusError is a non-2xx response. Message is the server's error text when
// the body carried one.
type StatusError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
	}
	return fmt.Sprintf("%s %s: %d", e.Method, e.Path, e.Status)
}

func (e *StatusError) Is(target error) bool { return target == ErrRequestFailed }

// Response carries a status alongside decoded data.
type Response[T any] struct {
	Status int
	Data   T
}

// LoggedIn reports whether the server accepted the session.
func (r Response[T]) LoggedIn() bool {
	return r.Status != http.StatusUnauthorized
}

// Client talks to one flashcards server.
type Client struct {
	base       *url.URL
	httpClient *http.Client
	cookieName string
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its jar is replaced
// when nil.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCookieName sets the session cookie name the server uses.
func WithCookieName(name string) Option {
	return func(c *Client) { c.cookieName = name }
}

// New creates a Client for the server at baseURL.
func New(baseURL string, logger *slog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("cloud: parse base url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("cloud: base url %q must be absolute", baseURL)
	}

	c := &Client{
		base:       base,
		httpClient: &http.Client{Timeout: defaultTimeout},
		cookieName: sessionCookie,
		log:        logger.With("adapter", "cloud"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("cloud: cookie jar: %w", err)
		}
		c.httpClient.Jar = jar
	}
	return c, nil
}

// Session returns the current session cookie value, empty when logged out.
func (c *Client) Session() string {
	for _, ck := range c.httpClient.Jar.Cookies(c.base) {
		if ck.Name == c.cookieName {
			return ck.Value
		}
	}
	return ""
}

// SetSession restores a session saved by an earlier process.
func (c *Client) SetSession(value string) {
	if value == "" {
		return
	}
	c.httpClient.Jar.SetCookies(c.base, []*http.Cookie{{Name: c.cookieName, Value: value, Path: "/"}})
}

// do sends a request and decodes a 2xx body into out when out is non-nil.
// It returns the status code even on failure.
func (c *Client) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body []byte
	if in != nil {
		var err error
		if body, err = json.Marshal(in); err != nil {
			return 0, fmt.Errorf("cloud: encode %s %s: %w", method, path, err)
		}
	}

	resp, err := c.send(ctx, method, path, body)
	if err != nil {
		c.log.ErrorContext(ctx, "cloud request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return 0, fmt.Errorf("cloud: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("cloud: read body: %w", err)
	}

	c.log.DebugContext(ctx, "cloud response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		serr := &StatusError{Method: method, Path: path, Status: resp.StatusCode}
		var eb struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(data, &eb) == nil {
			serr.Message = eb.Error
		}
		return resp.StatusCode, serr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, fmt.Errorf("cloud: decode %s %s: %w", method, path, err)
		}
	}
	return resp.StatusCode, nil
}

// send issues one request. Failures are returned to the caller as is.
func (c *Client) send(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}
