package httpx_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/robera20/employee-attendance-management/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func perMinute(n int) httpx.RateLimitConfig {
	return httpx.RateLimitConfig{RequestsPerWindow: n, Window: time.Minute, Burst: n}
}

// hit sends a GET from addr through h and returns the recorder.
func hit(h http.Handler, addr, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.RemoteAddr = addr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIPKeyExtractor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "10.0.0.9"},
		{"first forwarded hop", map[string]string{"X-Forwarded-For": " 203.0.113.1 , 10.0.0.1"}, "203.0.113.1"},
		{"real ip", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
		{"forwarded beats real ip", map[string]string{"X-Forwarded-For": "203.0.113.3", "X-Real-IP": "203.0.113.2"}, "203.0.113.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.9:41000"
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestFormFieldKeyExtractor(t *testing.T) {
	t.Parallel()
	extract := httpx.FormFieldKeyExtractor("username")

	require.Equal(t, "kiosk", extract(httptest.NewRequest(http.MethodGet, "/?username=kiosk", nil)))
	require.Empty(t, extract(httptest.NewRequest(http.MethodGet, "/", nil)))

	form := url.Values{"username": {" hr-lead "}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.Equal(t, "hr-lead", extract(req))
}

func TestJSONFieldKeyExtractor(t *testing.T) {
	t.Parallel()

	t.Run("restores the body", func(t *testing.T) {
		t.Parallel()

		body := `{"username":"admin","password":"secret1"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		require.Equal(t, "admin", httpx.JSONFieldKeyExtractor("username")(req))

		rest, err := io.ReadAll(req.Body)
		require.NoError(t, err)
		require.Equal(t, body, string(rest))
	})

	t.Run("numeric and string ids match", func(t *testing.T) {
		t.Parallel()

		extract := httpx.JSONFieldKeyExtractor("employee_id")
		for _, body := range []string{`{"employee_id":7}`, `{"employee_id":"7"}`} {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			require.Equal(t, "7", extract(req), body)
		}
	})

	t.Run("unusable bodies", func(t *testing.T) {
		t.Parallel()

		extract := httpx.JSONFieldKeyExtractor("username")
		for _, body := range []string{"username=admin", `{"other":"x"}`, `{"username":{"nested":true}}`, `[]`} {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			require.Empty(t, extract(req), body)
		}
	})
}

func TestAdminIDKeyExtractor(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Empty(t, httpx.AdminIDKeyExtractor(req))

	req = req.WithContext(httpx.WithAdminID(req.Context(), 42))
	require.Equal(t, "42", httpx.AdminIDKeyExtractor(req))
}

func TestCompositeKeyExtractor(t *testing.T) {
	t.Parallel()

	extract := httpx.CompositeKeyExtractor(":", httpx.IPKeyExtractor, httpx.FormFieldKeyExtractor("username"))

	req := httptest.NewRequest(http.MethodGet, "/?username=admin", nil)
	req.RemoteAddr = "10.0.0.9:41000"
	require.Equal(t, "10.0.0.9:admin", extract(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:41000"
	require.Equal(t, "10.0.0.9", extract(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("throttles after the burst", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitMiddleware(perMinute(3), httpx.IPKeyExtractor)(okHandler)
		for i := range 3 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code, "request %d", i+1)
		}

		rec := hit(h, "10.0.0.1:1", "/")
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.JSONEq(t, `{"error":"`+httpx.RateLimitMessage+`"}`, rec.Body.String())

		retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
		require.NoError(t, err)
		require.GreaterOrEqual(t, retry, 1)
		require.LessOrEqual(t, retry, 20)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitMiddleware(perMinute(1), httpx.IPKeyExtractor)(okHandler)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:2", "/").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1", "/").Code)
	})

	t.Run("throttled requests do not consume tokens", func(t *testing.T) {
		t.Parallel()

		cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: 50 * time.Millisecond, Burst: 1}
		h := httpx.RateLimitMiddleware(cfg, httpx.IPKeyExtractor)(okHandler)

		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code)
		for range 5 {
			require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", "/").Code)
		}
		require.Eventually(t, func() bool {
			return hit(h, "10.0.0.1:1", "/").Code == http.StatusOK
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("unattributed requests pass", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitMiddleware(perMinute(1), func(*http.Request) string { return "" })(okHandler)
		for range 3 {
			require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code)
		}
	})
}

func TestRateLimitHelpers(t *testing.T) {
	t.Parallel()

	t.Run("by ip", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitByIP(perMinute(2))(okHandler)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", "/").Code)
	})

	t.Run("by admin", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitByAdmin(perMinute(1))(okHandler)
		send := func(adminID int64) int {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = "10.0.0.1:1"
			req = req.WithContext(httpx.WithAdminID(req.Context(), adminID))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec.Code
		}

		require.Equal(t, http.StatusOK, send(1))
		require.Equal(t, http.StatusTooManyRequests, send(1))
		require.Equal(t, http.StatusOK, send(2))
	})

	t.Run("by ip and query field", func(t *testing.T) {
		t.Parallel()

		h := httpx.RateLimitByIPAndFormField(perMinute(1), "username")(okHandler)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/?username=admin").Code)
		require.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.1:1", "/?username=admin").Code)
		require.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1", "/?username=clerk").Code)
	})

	t.Run("by ip and json field", func(t *testing.T) {
		t.Parallel()

		var seen []string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, _ := io.ReadAll(r.Body)
			seen = append(seen, string(raw))
			w.WriteHeader(http.StatusOK)
		})
		h := httpx.RateLimitByIPAndJSONField(perMinute(1), "username")(inner)

		send := func(username string) int {
			body := fmt.Sprintf(`{"username":%q}`, username)
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			req.RemoteAddr = "10.0.0.1:1"
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			return rec.Code
		}

		require.Equal(t, http.StatusOK, send("admin"))
		require.Equal(t, http.StatusTooManyRequests, send("admin"))
		require.Equal(t, http.StatusOK, send("clerk"))
		require.Equal(t, []string{`{"username":"admin"}`, `{"username":"clerk"}`}, seen)
	})
}

func TestRateLimitProfiles(t *testing.T) {
	t.Parallel()

	ordered := []httpx.RateLimitConfig{httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.KioskLimit, httpx.PublicLimit}
	for i, cfg := range ordered {
		require.Positive(t, cfg.RequestsPerWindow)
		require.Positive(t, cfg.Burst)
		require.Positive(t, cfg.Window)
		if i > 0 {
			require.Less(t, ordered[i-1].RequestsPerWindow, cfg.RequestsPerWindow)
		}
	}
}

func TestParseRateLimitFromEnv(t *testing.T) {
	def := perMinute(10)

	tests := []struct {
		name string
		env  map[string]string
		want httpx.RateLimitConfig
	}{
		{"defaults", nil, def},
		{"requests only", map[string]string{"REQUESTS": "50"}, httpx.RateLimitConfig{RequestsPerWindow: 50, Window: time.Minute, Burst: 10}},
		{"window only", map[string]string{"WINDOW_SEC": "120"}, httpx.RateLimitConfig{RequestsPerWindow: 10, Window: 2 * time.Minute, Burst: 10}},
		{"all", map[string]string{"REQUESTS": "200", "WINDOW_SEC": "30", "BURST": "250"}, httpx.RateLimitConfig{RequestsPerWindow: 200, Window: 30 * time.Second, Burst: 250}},
		{"garbage ignored", map[string]string{"REQUESTS": "lots", "WINDOW_SEC": "-10", "BURST": "0"}, def},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, suffix := range []string{"REQUESTS", "WINDOW_SEC", "BURST"} {
				t.Setenv("RATELIMIT_PARSETEST_"+suffix, tt.env[suffix])
			}
			require.Equal(t, tt.want, httpx.ParseRateLimitFromEnv("PARSETEST", def))
		})
	}
}

func BenchmarkRateLimitManyClients(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.RateLimitConfig{RequestsPerWindow: 1_000_000, Window: time.Minute, Burst: 1000})(okHandler)

	for i := 0; b.Loop(); i++ {
		hit(h, fmt.Sprintf("10.%d.%d.1:1", i%250, (i/250)%250), "/")
	}
}
