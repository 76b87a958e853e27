// Package api implements the request pipeline for the Airmates API: the
// single choke point through which every network call passes. It builds the
// request, attaches bearer auth when a token is stored, encodes/decodes JSON
// and classifies HTTP statuses into the typed errors of this package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/airmates/airmates-go/internal/errs"
)

const (
	// requestTimeout bounds the wait for response headers; resourceTimeout
	// bounds the whole exchange including the body.
	requestTimeout  = 30 * time.Second
	resourceTimeout = 60 * time.Second
)

// TokenSource yields the current bearer token, if any. Absence is not an
// error at this layer; the call proceeds unauthenticated and the server
// decides.
type TokenSource interface {
	Load() (token string, ok bool)
}

// Client is the typed request pipeline. Construct once at startup and share.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenSource
	log     *zap.Logger
	lim     *rate.Limiter

	mu             sync.RWMutex
	onUnauthorized func()
}

// New returns a Client for the given base origin. baseURL must not end in a
// trailing slash-sensitive path; paths passed to calls are absolute
// ("/api/...").
func New(baseURL string, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			Timeout: resourceTimeout,
			Transport: &http.Transport{
				ResponseHeaderTimeout: requestTimeout,
			},
		},
		tokens: tokens,
		log:    log,
		lim:    rate.NewLimiter(rate.Inf, 0),
	}
}

// SetRateLimit caps the outgoing request rate. Zero or negative rps removes
// the cap.
func (c *Client) SetRateLimit(rps float64, burst int) {
	if rps <= 0 {
		c.lim = rate.NewLimiter(rate.Inf, 0)
		return
	}
	if burst < 1 {
		burst = 1
	}
	c.lim = rate.NewLimiter(rate.Limit(rps), burst)
}

// OnUnauthorized registers the observer invoked when any call returns 401.
// The observer runs on its own goroutine so it never blocks the caller.
func (c *Client) OnUnauthorized(fn func()) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

func (c *Client) notifyUnauthorized() {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()
	if fn != nil {
		go fn()
	}
}

// do executes one HTTP exchange and returns the raw response body for 2xx
// statuses, or a classified error otherwise.
func (c *Client) do(ctx context.Context, method, path string, body any, query url.Values) ([]byte, error) {
	if err := c.lim.Wait(ctx); err != nil {
		return nil, &NetworkError{Err: err}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		enc, err := json.Marshal(body)
		if err != nil {
			return nil, &DecodeError{Err: err}
		}
		rd = bytes.NewReader(enc)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	reqID := ""
	if id, err := uuid.NewV4(); err == nil {
		reqID = id.String()
		req.Header.Set("X-Request-Id", reqID)
	}
	if token, ok := c.tokens.Load(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn("http",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Duration("dur", time.Since(start)),
			zap.Error(err),
		)
		return nil, &NetworkError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	// metadata only, never payloads or tokens
	c.log.Info("http",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Duration("dur", time.Since(start)),
	)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode <= 299:
		return data, nil
	case resp.StatusCode == http.StatusUnauthorized:
		// The only branch with a side effect: force logout via the observer.
		c.notifyUnauthorized()
		return nil, errs.ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return nil, &ConflictError{Message: errorMessage(data, "Conflict"), Body: data}
	default:
		fallback := fmt.Sprintf("Server error (%d)", resp.StatusCode)
		return nil, &ServerError{Status: resp.StatusCode, Message: errorMessage(data, fallback)}
	}
}

// errorMessage extracts {"error": string} from an error payload, falling back
// to the given message when the body does not match.
func errorMessage(data []byte, fallback string) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return fallback
}

// Request performs a call and decodes the 2xx response body into T.
func Request[T any](ctx context.Context, c *Client, method, path string, body any, query url.Values) (T, error) {
	var out T
	data, err := c.do(ctx, method, path, body, query)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, &DecodeError{Err: err}
	}
	return out, nil
}

// Get/Post/Patch/Delete are thin fixed-method specializations of Request.

func Get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return Request[T](ctx, c, http.MethodGet, path, nil, query)
}

func Post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return Request[T](ctx, c, http.MethodPost, path, body, nil)
}

func Patch[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	return Request[T](ctx, c, http.MethodPatch, path, body, nil)
}

func Delete[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	return Request[T](ctx, c, http.MethodDelete, path, nil, query)
}
