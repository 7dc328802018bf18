package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, handler http.Handler, opts *SessionOptions) (*SessionManager, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if opts == nil {
		opts = &SessionOptions{}
	}
	opts.BaseURL = server.URL

	session, err := NewSessionManager(opts)
	require.NoError(t, err)
	return session, server
}

func TestSessionAttachesBearerToken(t *testing.T) {
	var gotAuth string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	tokens := &MemoryTokenStore{}
	session, _ := newTestSession(t, handler, &SessionOptions{Tokens: tokens})

	// Unauthenticated: no Authorization header at all
	_, err := session.Do(context.Background(), "/", nil)
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no bearer header without a token")

	tokens.Set("secret-token")
	_, err = session.Do(context.Background(), "/", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestSessionRequestShape(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	var (
		gotMethod      string
		gotContentType string
		gotQuery       string
		gotBody        payload
	)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusCreated)
	})

	session, _ := newTestSession(t, handler, nil)

	q := url.Values{"tag": {"a", "b"}}
	resp, err := session.Do(context.Background(), "/games", &RequestOptions{
		Method: http.MethodPost,
		Body:   payload{Name: "Celeste"},
		Query:  q,
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.Status)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "tag=a&tag=b", gotQuery)
	assert.Equal(t, "Celeste", gotBody.Name)
}

func TestSessionHTTPErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"no such game"}`))
	})
	session, _ := newTestSession(t, handler, nil)

	_, err := session.Do(context.Background(), "/games/99", nil)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Contains(t, string(httpErr.Body), "no such game")
}

func TestSessionExpiredUnwrapsToHTTPError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	session, _ := newTestSession(t, handler, nil)

	_, err := session.Do(context.Background(), "/games", nil)

	var expired *SessionExpiredError
	require.ErrorAs(t, err, &expired)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
}

func TestSessionInvalidationIsSingleShot(t *testing.T) {
	// Two requests hang until cancelled; a third hits a 401.
	mux := http.NewServeMux()
	mux.HandleFunc("/hang", func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	mux.HandleFunc("/expired", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var notified atomic.Int32
	session, _ := newTestSession(t, mux, &SessionOptions{
		OnSessionInvalidated: func() { notified.Add(1) },
	})

	var wg sync.WaitGroup
	hangErrs := make([]error, 2)
	for i := range hangErrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, hangErrs[i] = session.Do(context.Background(), "/hang", nil)
		}(i)
	}

	require.Eventually(t, func() bool { return session.InFlight() == 2 },
		time.Second, 5*time.Millisecond)

	_, err := session.Do(context.Background(), "/expired", nil)
	var expired *SessionExpiredError
	require.ErrorAs(t, err, &expired, "the triggering request rejects with the session error")

	wg.Wait()
	for _, hangErr := range hangErrs {
		var cancelled *CancelledError
		assert.ErrorAs(t, hangErr, &cancelled, "in-flight requests reject as cancelled, not expired")
	}

	assert.Equal(t, int32(1), notified.Load(), "exactly one notification")
	assert.Zero(t, session.InFlight())

	// A second 401 in the same session stays quiet
	_, err = session.Do(context.Background(), "/expired", nil)
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, int32(1), notified.Load())

	// A new login re-arms the latch
	session.Reset()
	_, err = session.Do(context.Background(), "/expired", nil)
	require.ErrorAs(t, err, &expired)
	assert.Equal(t, int32(2), notified.Load())
}

func TestSessionInvalidationRespectsLoginScreen(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var notified atomic.Int32
	session, _ := newTestSession(t, handler, &SessionOptions{
		OnSessionInvalidated: func() { notified.Add(1) },
		AtLoginScreen:        func() bool { return true },
	})

	_, err := session.Do(context.Background(), "/login-check", nil)
	var expired *SessionExpiredError
	require.ErrorAs(t, err, &expired)
	assert.Zero(t, notified.Load(), "no redirect loop while already at login")
}

func TestSessionTimeout(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	})
	session, _ := newTestSession(t, handler, nil)

	start := time.Now()
	_, err := session.Do(context.Background(), "/slow", &RequestOptions{Timeout: 30 * time.Millisecond})
	elapsed := time.Since(start)

	var timeout *TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, 30*time.Millisecond, timeout.Timeout)
	assert.Less(t, elapsed, time.Second, "rejects at the timeout, not at transport completion")
}

func TestSessionContextCancellation(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	session, _ := newTestSession(t, handler, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := session.Do(ctx, "/hang", nil)
	var cancelled *CancelledError
	assert.ErrorAs(t, err, &cancelled)
}

func TestSessionCancelAll(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	session, _ := newTestSession(t, handler, nil)

	errs := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func() {
			_, err := session.Do(context.Background(), "/hang", nil)
			errs <- err
		}()
	}

	require.Eventually(t, func() bool { return session.InFlight() == 3 },
		time.Second, 5*time.Millisecond)

	session.CancelAll()

	for i := 0; i < 3; i++ {
		var cancelled *CancelledError
		assert.ErrorAs(t, <-errs, &cancelled)
	}
	assert.Zero(t, session.InFlight())
}

// cancelBeforeReplyTransport cancels every in-flight request and then hands
// back a success response, so the response is buffered by the time the
// caller observes its own cancellation.
type cancelBeforeReplyTransport struct {
	session *SessionManager
}

func (tr *cancelBeforeReplyTransport) RoundTrip(*http.Request) (*http.Response, error) {
	tr.session.CancelAll()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(`{"ok":true}`)),
	}, nil
}

func TestSessionCancelAllBeatsBufferedResponse(t *testing.T) {
	tr := &cancelBeforeReplyTransport{}
	session, err := NewSessionManager(&SessionOptions{
		BaseURL:    "http://cancelled.invalid",
		HTTPClient: &http.Client{Transport: tr},
	})
	require.NoError(t, err)
	tr.session = session

	_, err = session.Do(context.Background(), "/games", nil)
	var cancelled *CancelledError
	assert.ErrorAs(t, err, &cancelled,
		"a request cancelled before it settles must not succeed")
	assert.Zero(t, session.InFlight())
}

func TestResponseParsedByContentType(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		check       func(t *testing.T, v any)
	}{
		{
			name:        "json becomes a decoded value",
			contentType: "application/json; charset=utf-8",
			body:        `{"name":"Hades"}`,
			check: func(t *testing.T, v any) {
				m, ok := v.(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "Hades", m["name"])
			},
		},
		{
			name:        "text becomes a string",
			contentType: "text/csv",
			body:        "name,grade\nHades,9",
			check: func(t *testing.T, v any) {
				assert.Equal(t, "name,grade\nHades,9", v)
			},
		},
		{
			name:        "binary stays raw",
			contentType: "application/octet-stream",
			body:        "\x00\x01",
			check: func(t *testing.T, v any) {
				assert.Equal(t, []byte{0, 1}, v)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Response{ContentType: tt.contentType, Body: []byte(tt.body)}
			v, err := resp.Parsed()
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestNewSessionManagerDefaults(t *testing.T) {
	session, err := NewSessionManager(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTimeout, session.timeout)
	assert.NotNil(t, session.httpClient)

	_, err = NewSessionManager(&SessionOptions{BaseURL: "http://host:port-with-colon\x7f"})
	assert.Error(t, err)
}
