package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"nutricoach/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(m Middleware, mws ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mws...)
	handler := func(c *gin.Context) {
		c.String(http.StatusOK, GetClientID(c))
	}
	r.GET("/api/v1/ping", handler)
	r.GET("/health", handler)
	return r
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestClientID_MintsCookie(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.ClientID())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	ck := findCookie(rec, DefaultClientCookie)
	if ck == nil {
		t.Fatal("expected client cookie to be set")
	}
	if !ck.HttpOnly {
		t.Error("client cookie should be HttpOnly")
	}
	if rec.Body.String() != ck.Value {
		t.Errorf("handler saw client id %q, cookie has %q", rec.Body.String(), ck.Value)
	}
}

func TestClientID_ReusesCookie(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.ClientID())

	const id = "0b4c7a3e-2f4d-4d8e-9a55-0b6a1f6c9d11"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.AddCookie(&http.Cookie{Name: DefaultClientCookie, Value: id})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() != id {
		t.Errorf("client id = %q, want %q", rec.Body.String(), id)
	}
	if findCookie(rec, DefaultClientCookie) != nil {
		t.Error("cookie should not be reissued for a valid id")
	}
}

func TestClientID_ReplacesGarbage(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.ClientID())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.AddCookie(&http.Cookie{Name: DefaultClientCookie, Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Body.String() == "not-a-uuid" {
		t.Error("invalid client id should be replaced")
	}
}

func TestRequestID(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.RequestID())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rec.Header().Get(HeaderRequestID) == "" {
		t.Error("expected generated request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if got := rec.Header().Get(HeaderRequestID); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}
}

func TestAccessGate(t *testing.T) {
	m := New(log.NewNop(), Config{AccessToken: "s3cret"})
	r := newRouter(m, m.AccessGate())

	tests := []struct {
		name   string
		path   string
		cookie string
		want   int
	}{
		{name: "no token", path: "/api/v1/ping", want: http.StatusUnauthorized},
		{name: "wrong query", path: "/api/v1/ping?token=nope", want: http.StatusUnauthorized},
		{name: "query token", path: "/api/v1/ping?token=s3cret", want: http.StatusOK},
		{name: "cookie token", path: "/api/v1/ping", cookie: "s3cret", want: http.StatusOK},
		{name: "wrong cookie", path: "/api/v1/ping", cookie: "x", want: http.StatusUnauthorized},
		{name: "health exempt", path: "/health", want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: DefaultAccessCookie, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestAccessGate_QuerySetsCookie(t *testing.T) {
	m := New(log.NewNop(), Config{AccessToken: "s3cret"})
	r := newRouter(m, m.AccessGate())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping?token=s3cret", nil))
	ck := findCookie(rec, DefaultAccessCookie)
	if ck == nil || ck.Value != "s3cret" {
		t.Fatalf("access cookie = %+v", ck)
	}
}

func TestAccessGate_Disabled(t *testing.T) {
	m := New(log.NewNop(), Config{})
	r := newRouter(m, m.AccessGate())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	// 60/min gives a burst of 6.
	m := New(log.NewNop(), Config{RateLimitPerMin: 60})
	r := newRouter(m, m.RateLimit())

	var limited bool
	for i := 0; i < 20; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	if !limited {
		t.Error("expected to hit the rate limit")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("other source status = %d, want 200", rec.Code)
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	m := New(log.NewNop(), Config{})
	if m.limiter != nil {
		t.Fatal("limiter should be nil when disabled")
	}
	r := newRouter(m, m.RateLimit())
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d", i, rec.Code)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	m := New(log.NewNop(), Config{CORSOrigins: []string{"http://localhost:5173"}})
	r := newRouter(m, m.CORS())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/ping", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("allow origin = %q", got)
	}
}
