package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aussiebroadwan/charauth/pkg/httpx"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func requestFrom(ip string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":12345"
	return req
}

func TestIPKeyExtractor(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"remote addr", nil, "192.168.1.1"},
		{"prefers X-Forwarded-For", map[string]string{"X-Forwarded-For": "203.0.113.1, 192.168.1.1"}, "203.0.113.1"},
		{"uses X-Real-IP", map[string]string{"X-Real-IP": "203.0.113.2"}, "203.0.113.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := requestFrom("192.168.1.1")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.IPKeyExtractor(req))
		})
	}
}

func TestUserIDKeyExtractor(t *testing.T) {
	req := requestFrom("10.0.0.1")
	require.Empty(t, httpx.UserIDKeyExtractor(req))

	req = req.WithContext(httpx.WithUserID(req.Context(), 42))
	require.Equal(t, "user:42", httpx.UserIDKeyExtractor(req))
}

func TestFirstKeyExtractor(t *testing.T) {
	extract := httpx.FirstKeyExtractor(httpx.UserIDKeyExtractor, httpx.IPKeyExtractor)

	req := requestFrom("10.0.0.1")
	require.Equal(t, "10.0.0.1", extract(req), "falls back past empty keys")

	req = req.WithContext(httpx.WithUserID(req.Context(), 7))
	require.Equal(t, "user:7", extract(req))

	require.Empty(t, httpx.FirstKeyExtractor()(req))
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := httpx.RateLimit{Requests: 3, Window: time.Minute, Burst: 3}

	t.Run("blocks requests over limit", func(t *testing.T) {
		h := httpx.RateLimitByIP(cfg)(okHandler)

		for i := range 3 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1"))
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1"))
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		require.NotEmpty(t, rec.Header().Get("Retry-After"))
		require.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
		require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
		require.Contains(t, rec.Body.String(), "rate_limit_exceeded")
	})

	t.Run("different keys are tracked separately", func(t *testing.T) {
		h := httpx.RateLimitByIP(cfg)(okHandler)

		for range 3 {
			h.ServeHTTP(httptest.NewRecorder(), requestFrom("192.168.1.1"))
		}

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.2"))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("allows request when key is empty", func(t *testing.T) {
		h := httpx.RateLimitMiddleware(cfg, func(*http.Request) string { return "" })(okHandler)

		for range 10 {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, requestFrom("192.168.1.1"))
			require.Equal(t, http.StatusOK, rec.Code)
		}
	})

	t.Run("by user falls back to ip", func(t *testing.T) {
		h := httpx.RateLimitByUser(httpx.RateLimit{Requests: 1, Window: time.Minute, Burst: 1})(okHandler)

		userReq := requestFrom("192.168.1.1")
		userReq = userReq.WithContext(httpx.WithUserID(userReq.Context(), 1))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, userReq)
		require.Equal(t, http.StatusOK, rec.Code)

		// Same IP, no user: separate bucket.
		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, requestFrom("192.168.1.1"))
		require.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		h.ServeHTTP(rec, userReq)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestRateLimitOrDefault(t *testing.T) {
	got := httpx.RateLimit{Requests: 50}.OrDefault(httpx.StrictLimit)
	require.Equal(t, 50, got.Requests)
	require.Equal(t, httpx.StrictLimit.Window, got.Window)
	require.Equal(t, httpx.StrictLimit.Burst, got.Burst)

	require.Equal(t, httpx.LenientLimit, httpx.RateLimit{}.OrDefault(httpx.LenientLimit))
}
