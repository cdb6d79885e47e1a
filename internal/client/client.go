// Package client is the HTTP client of the back-office API used by the console.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/MikeMC777/ordenes-backoffice/internal/auth"
)

// ErrUnauthorized means the session is missing or expired; the caller must log in again.
var ErrUnauthorized = errors.New("unauthorized: please log in")

// RemoteError is a non-2xx answer other than 401.
type RemoteError struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *RemoteError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("remote error %d: %s %v", e.Status, e.Message, e.Fields)
	}
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Status == http.StatusNotFound
}

// Session holds the tokens of the logged-in operator. Safe for concurrent use.
type Session struct {
	mu     sync.RWMutex
	tokens auth.Tokens
}

func (s *Session) Set(t auth.Tokens) {
	s.mu.Lock()
	s.tokens = t
	s.mu.Unlock()
}

func (s *Session) Tokens() auth.Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tokens
}

func (s *Session) AccessToken() string { return s.Tokens().AccessToken }

func (s *Session) Clear() { s.Set(auth.Tokens{}) }

func (s *Session) LoggedIn() bool { return s.AccessToken() != "" }

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.http = h } }

func WithSession(s *Session) Option { return func(c *Client) { c.session = s } }

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		session: &Session{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Session() *Session { return c.session }

// do sends one request. GETs are retried once on a transport error or a 5xx;
// mutations are never retried.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body []byte
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = b
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = 2
	}
	var err error
	for i := 0; i < attempts; i++ {
		var retry bool
		retry, err = c.once(ctx, method, path, body, out)
		if err == nil || !retry || ctx.Err() != nil {
			break
		}
	}
	return err
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any) (retry bool, err error) {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return false, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if tok := c.session.AccessToken(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return true, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusUnauthorized:
		return false, ErrUnauthorized
	case res.StatusCode >= 300:
		return res.StatusCode >= 500, decodeError(res)
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return false, nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return false, nil
}

func decodeError(res *http.Response) error {
	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	re := &RemoteError{Status: res.StatusCode}
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
		re.Message, re.Fields = body.Error, body.Fields
	} else {
		re.Message = http.StatusText(res.StatusCode)
	}
	return re
}

// list is the envelope of every list endpoint.
type list[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func (c *Client) delete(ctx context.Context, path string) error {
	err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}
