package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/airmates/airmates-go/internal/errs"
)

type fakeTokens struct {
	token string
}

func (f *fakeTokens) Load() (string, bool) { return f.token, f.token != "" }

func newTestClient(t *testing.T, handler http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, &fakeTokens{token: token}, zap.NewNop()), srv
}

func TestRequest_SuccessDecodes(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"a1","name":"Pat"}`))
	}, "")

	type user struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	got, err := Get[user](context.Background(), c, "/api/whatever", nil)
	require.NoError(t, err)
	require.Equal(t, user{ID: "a1", Name: "Pat"}, got)
}

func TestRequest_HeadersAndAuth(t *testing.T) {
	t.Parallel()

	var seen http.Header
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		_, _ = w.Write([]byte(`{}`))
	}, "tok-abc")

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.NoError(t, err)
	require.Equal(t, "application/json", seen.Get("Content-Type"))
	require.Equal(t, "Bearer tok-abc", seen.Get("Authorization"))

	_, parseErr := uuid.FromString(seen.Get("X-Request-Id"))
	require.NoError(t, parseErr, "every call carries a request id")
}

func TestRequest_NoTokenProceedsUnauthenticated(t *testing.T) {
	t.Parallel()

	var auth string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{}`))
	}, "")

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.NoError(t, err)
	require.Empty(t, auth, "absence of a token is not an error; the server decides")
}

func TestRequest_QueryAppended(t *testing.T) {
	t.Parallel()

	var got url.Values
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		_, _ = w.Write([]byte(`[]`))
	}, "")

	q := url.Values{}
	q.Set("date", "2024-03-01")
	_, err := Get[[]struct{}](context.Background(), c, "/api/bookings", q)
	require.NoError(t, err)
	require.Equal(t, "2024-03-01", got.Get("date"))
}

func TestRequest_BodySerialized(t *testing.T) {
	t.Parallel()

	var body []byte
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{}`))
	}, "")

	_, err := Post[map[string]any](context.Background(), c, "/api/x",
		map[string]string{"email": "a@b.com"})
	require.NoError(t, err)
	require.JSONEq(t, `{"email":"a@b.com"}`, string(body))
}

func TestRequest_401FiresObserverExactlyOnce(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "stale")

	fired := make(chan struct{}, 4)
	c.OnUnauthorized(func() { fired <- struct{}{} })

	_, err := Get[map[string]any](context.Background(), c, "/api/aircraft", nil)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("observer not invoked")
	}
	select {
	case <-fired:
		t.Fatal("observer invoked more than once for a single response")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRequest_401WithoutObserverStillFails(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, "")

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestRequest_409CarriesMessageAndRawBody(t *testing.T) {
	t.Parallel()

	const payload = `{"error":"Double-booked","slot":{"start":"08:00"}}`
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(payload))
	}, "")

	_, err := Post[map[string]any](context.Background(), c, "/api/bookings", nil)
	require.ErrorIs(t, err, errs.ErrConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "Double-booked", conflict.Message)
	// Raw bytes retained for a secondary decode of structured details.
	require.JSONEq(t, payload, string(conflict.Body))
}

func TestRequest_409UnparseableFallsBackToConflict(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("nope"))
	}, "")

	_, err := Post[map[string]any](context.Background(), c, "/api/bookings", nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	require.Equal(t, "Conflict", conflict.Message)
}

func TestRequest_500UnparseableBodyUsesFallback(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}, "")

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.ErrorIs(t, err, errs.ErrServer)

	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "Server error (500)", srvErr.Message)
	require.Equal(t, 500, srvErr.Status)
}

func TestRequest_ErrorPayloadMessageUsed(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"tachIn must be greater than tachOut"}`))
	}, "")

	_, err := Post[map[string]any](context.Background(), c, "/api/checkouts", nil)
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "tachIn must be greater than tachOut", srvErr.Message)
}

func TestRequest_DecodeFailureOn2xx(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`)) // truncated
	}, "")

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.ErrorIs(t, err, errs.ErrDecode)
}

func TestRequest_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	c := New(srv.URL, &fakeTokens{}, zap.NewNop())
	srv.Close() // connection refused from here on

	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.ErrorIs(t, err, errs.ErrNetwork)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	require.Error(t, errors.Unwrap(netErr))
}

func TestSetRateLimit_ThrottledClientStillCompletes(t *testing.T) {
	t.Parallel()

	var calls int
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{}`))
	}, "")
	c.SetRateLimit(1000, 1)

	for i := 0; i < 3; i++ {
		_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
		require.NoError(t, err)
	}
	require.Equal(t, 3, calls)

	// removing the cap is allowed at any point
	c.SetRateLimit(0, 0)
	_, err := Get[map[string]any](context.Background(), c, "/api/x", nil)
	require.NoError(t, err)
}

func TestRequest_ContextCancellation(t *testing.T) {
	t.Parallel()

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := Get[map[string]any](ctx, c, "/api/x", nil)
	require.ErrorIs(t, err, errs.ErrNetwork)
}
