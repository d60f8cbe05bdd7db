// client/client.go - Typed API client
//
// Wraps every endpoint in a typed call. Reads are cached by endpoint path;
// mutations invalidate the affected reads on success (see cache.go for the
// invalidation table). The session cookie is carried by an ordinary cookie
// jar, so Login followed by authenticated calls works out of the box.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// APIError is any non-2xx response, carrying the server's message body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Notifier receives user-facing success/failure notices for mutations, the
// toast analogue. May be nil.
type Notifier func(success bool, message string)

type Client struct {
	baseURL string
	http    *http.Client
	cache   *responseCache
	notify  Notifier
}

type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The replacement
// should carry a cookie jar or authenticated calls will fail.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithNotifier installs the mutation notice hook.
func WithNotifier(n Notifier) Option {
	return func(c *Client) { c.notify = n }
}

// New builds a client for the given server base URL (e.g.
// "http://localhost:3000").
func New(baseURL string, opts ...Option) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		cache: newResponseCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// get performs a cached read. The cache key is the endpoint path.
func (c *Client) get(path string, out any) error {
	if body, ok := c.cache.get(path); ok {
		return json.Unmarshal(body, out)
	}

	resp, err := c.http.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(resp.StatusCode, body)
	}

	c.cache.set(path, body)
	if out != nil {
		return json.Unmarshal(body, out)
	}
	return nil
}

// mutate performs a write and, on success, invalidates the reads listed for
// the mutation. notice is the success message surfaced through the notifier.
func (c *Client) mutate(method, path string, in, out any, mutation mutationKind, notice string) error {
	var reqBody io.Reader
	if in != nil {
		encoded, err := json.Marshal(in)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.notifyResult(false, err.Error())
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apiError(resp.StatusCode, body)
		c.notifyResult(false, apiErr.(*APIError).Message)
		return apiErr
	}

	c.cache.invalidate(mutation)
	c.notifyResult(true, notice)

	if out != nil && len(body) > 0 {
		return json.Unmarshal(body, out)
	}
	return nil
}

func (c *Client) notifyResult(success bool, message string) {
	if c.notify != nil {
		c.notify(success, message)
	}
}

func apiError(status int, body []byte) error {
	var payload struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)
	if payload.Message == "" {
		payload.Message = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Message: payload.Message}
}
