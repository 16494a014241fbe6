package httpx_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/stretchr/testify/require"
)

type fakeResolver map[string]int64

func (f fakeResolver) ResolveSession(_ context.Context, token string) (int64, error) {
	if id, ok := f[token]; ok {
		return id, nil
	}
	return 0, errors.New("unknown session")
}

func TestChainOrder(t *testing.T) {
	var order []string
	tag := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}), tag("outer"), tag("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestSessionMiddleware(t *testing.T) {
	resolver := fakeResolver{"good": 7}
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.AdminIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		require.Equal(t, int64(7), id)
		require.Equal(t, "good", httpx.SessionIDFromContext(r.Context()))
		w.WriteHeader(http.StatusOK)
	})

	request := func(cookie string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: "sid", Value: cookie})
		}
		return req
	}

	t.Run("required rejects missing cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireSession(resolver, "sid")(echo).ServeHTTP(rec, request(""))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.True(t, strings.Contains(rec.Body.String(), "Authentication required"))
	})

	t.Run("required rejects unknown session", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireSession(resolver, "sid")(echo).ServeHTTP(rec, request("bad"))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("required injects admin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.RequireSession(resolver, "sid")(echo).ServeHTTP(rec, request("good"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("optional passes anonymous requests", func(t *testing.T) {
		rec := httptest.NewRecorder()
		httpx.OptionalSession(resolver, "sid")(echo).ServeHTTP(rec, request("bad"))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestWriteAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	httpx.WriteAttachment(rec, "text/csv", "attendance.csv", []byte("a,b"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Equal(t, `attachment; filename="attendance.csv"`, rec.Header().Get("Content-Disposition"))
	require.Equal(t, "a,b", rec.Body.String())
}
