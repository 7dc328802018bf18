package client

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

	"github.com/google/uuid"
)

// DefaultTimeout is the default timeout for API requests
const DefaultTimeout = 30 * time.Second

// TokenStore abstracts wherever the bearer token is held. The session only
// ever reads it; clearing persisted credentials is the application's job.
type TokenStore interface {
	// Token returns the current bearer token, or "" when unauthenticated
	Token() string
	// Clear drops the stored token
	Clear()
}

// MemoryTokenStore is a TokenStore backed by an in-process variable
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

// Token returns the stored token
func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Set replaces the stored token
func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Clear drops the stored token
func (s *MemoryTokenStore) Clear() {
	s.Set("")
}

// SessionOptions configures a SessionManager
type SessionOptions struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout is the default per-request timeout; 0 means DefaultTimeout
	Timeout time.Duration

	// Tokens supplies the bearer token attached to outgoing requests
	Tokens TokenStore

	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client

	// OnSessionInvalidated is notified exactly once when a 401 forces the
	// session out; the application reacts by clearing persisted state and
	// navigating to login
	OnSessionInvalidated func()

	// AtLoginScreen suppresses the invalidation notification when the
	// application is already on the login screen, avoiding redirect loops
	AtLoginScreen func() bool
}

// SessionManager performs HTTP requests against the API with bearer
// authentication, per-request timeouts and cooperative cancellation of all
// in-flight requests. One manager exists per application session.
type SessionManager struct {
	baseURL       string
	timeout       time.Duration
	tokens        TokenStore
	httpClient    *http.Client
	onInvalidated func()
	atLoginScreen func() bool

	mu          sync.Mutex
	inflight    map[uuid.UUID]context.CancelFunc
	invalidated bool
}

// NewSessionManager creates a session manager with the given options
func NewSessionManager(opts *SessionOptions) (*SessionManager, error) {
	if opts == nil {
		opts = &SessionOptions{}
	}

	// Validate the base URL
	if _, err := url.Parse(opts.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SessionManager{
		baseURL:       opts.BaseURL,
		timeout:       timeout,
		tokens:        opts.Tokens,
		httpClient:    httpClient,
		onInvalidated: opts.OnSessionInvalidated,
		atLoginScreen: opts.AtLoginScreen,
		inflight:      make(map[uuid.UUID]context.CancelFunc),
	}, nil
}

// RequestOptions configures a single request
type RequestOptions struct {
	// Method is the HTTP method; GET when empty
	Method string

	// Headers are extra request headers
	Headers map[string]string

	// Body is the request payload. Structured values are serialized as JSON
	// with Content-Type application/json; []byte and io.Reader payloads pass
	// through unmodified with no forced content type.
	Body any

	// Query is appended to the URL; multi-valued keys repeat
	Query url.Values

	// Timeout overrides the manager default for this request
	Timeout time.Duration
}

// Response is one parsed-enough HTTP response
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Decode unmarshals a JSON response body into v
func (r *Response) Decode(v any) error {
	if v == nil || len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}
	return nil
}

// Parsed interprets the body by content type: JSON becomes a decoded value,
// text/* a string, image and binary types raw bytes, anything else a string.
func (r *Response) Parsed() (any, error) {
	ct := r.ContentType
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(ct)

	switch {
	case ct == "application/json":
		if len(r.Body) == 0 {
			return nil, nil
		}
		var v any
		if err := json.Unmarshal(r.Body, &v); err != nil {
			return nil, fmt.Errorf("error decoding response: %w", err)
		}
		return v, nil
	case strings.HasPrefix(ct, "text/"):
		return string(r.Body), nil
	case strings.HasPrefix(ct, "image/"), ct == "application/octet-stream":
		return r.Body, nil
	default:
		return string(r.Body), nil
	}
}

type requestResult struct {
	resp *Response
	err  error
}

// Do performs one request against baseURL+endpoint. The request registers a
// cancellation handle in the in-flight registry before it is sent and removes
// it once it settles; CancelAll and session invalidation act through that
// registry. On timeout the call rejects with a TimeoutError without waiting
// for the transport (the underlying call is not aborted, a known limitation
// of the timeout race).
func (m *SessionManager) Do(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	fullURL := m.baseURL + endpoint
	if len(opts.Query) > 0 {
		fullURL += "?" + opts.Query.Encode()
	}

	var bodyReader io.Reader
	contentType := ""
	switch b := opts.Body.(type) {
	case nil:
	case []byte:
		bodyReader = bytes.NewReader(b)
	case io.Reader:
		bodyReader = b
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("error marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	}

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	id := uuid.New()
	m.track(id, cancel)
	defer m.untrack(id)

	req, err := http.NewRequestWithContext(reqCtx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	// Never send "Bearer" with an empty token
	if m.tokens != nil {
		if token := m.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = m.timeout
	}

	done := make(chan requestResult, 1)
	go func() {
		resp, err := m.httpClient.Do(req)
		if err != nil {
			done <- requestResult{err: err}
			return
		}
		defer func() { _ = resp.Body.Close() }()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			done <- requestResult{err: err}
			return
		}
		done <- requestResult{resp: &Response{
			Status:      resp.StatusCode,
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}}
	}()

	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case <-timer:
		return nil, &TimeoutError{Timeout: timeout}
	case <-reqCtx.Done():
		return nil, &CancelledError{}
	case res := <-done:
		// A cancellation can land while the result is already buffered;
		// the cancelled request must still settle as cancelled.
		if reqCtx.Err() != nil {
			return nil, &CancelledError{}
		}
		if res.err != nil {
			return nil, fmt.Errorf("error sending request: %w", res.err)
		}
		return m.checkStatus(id, res.resp)
	}
}

// checkStatus maps non-success statuses onto the error taxonomy
func (m *SessionManager) checkStatus(trigger uuid.UUID, resp *Response) (*Response, error) {
	if resp.Status == http.StatusUnauthorized {
		m.invalidateSession(trigger)
		return nil, &SessionExpiredError{cause: &HTTPError{Status: resp.Status, Body: resp.Body}}
	}
	if resp.Status < 200 || resp.Status >= 300 {
		return nil, &HTTPError{Status: resp.Status, Body: resp.Body}
	}
	return resp, nil
}

// invalidateSession handles a 401: exactly once per session it cancels every
// other in-flight request, clears the registry and notifies the application,
// unless the application reports it is already on the login screen. The
// triggering request's own rejection propagates normally to its caller.
func (m *SessionManager) invalidateSession(trigger uuid.UUID) {
	m.mu.Lock()
	if m.invalidated {
		m.mu.Unlock()
		return
	}
	m.invalidated = true
	for id, cancel := range m.inflight {
		if id != trigger {
			cancel()
		}
	}
	m.inflight = make(map[uuid.UUID]context.CancelFunc)
	m.mu.Unlock()

	if m.atLoginScreen != nil && m.atLoginScreen() {
		return
	}
	if m.onInvalidated != nil {
		m.onInvalidated()
	}
}

// Reset re-arms the invalidation latch. Called after a fresh login starts a
// new authenticated session.
func (m *SessionManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = false
}

// CancelAll cancels every in-flight request, forcing them into
// CancelledError. Called on logout.
func (m *SessionManager) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cancel := range m.inflight {
		cancel()
	}
	m.inflight = make(map[uuid.UUID]context.CancelFunc)
}

// InFlight returns the number of requests currently tracked by the registry
func (m *SessionManager) InFlight() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inflight)
}

func (m *SessionManager) track(id uuid.UUID, cancel context.CancelFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight[id] = cancel
}

func (m *SessionManager) untrack(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, id)
}
