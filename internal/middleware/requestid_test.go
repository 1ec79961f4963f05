package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestID_ReusesClientHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		id, _ := c.Get(RequestIDKey)
		c.String(200, toString(id))
	})

	cases := []struct {
		name   string
		header string
		reused bool
	}{
		{name: "client id", header: "abc-123", reused: true},
		{name: "no header", header: "", reused: false},
		{name: "oversized", header: strings.Repeat("x", maxRequestIDLen+1), reused: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(RequestIDHeader, tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got != w.Body.String() {
				t.Fatalf("header %q differs from context value %q", got, w.Body.String())
			}
			if tc.reused {
				if got != tc.header {
					t.Fatalf("id=%q, want %q", got, tc.header)
				}
				return
			}
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected generated uuid, got %q", got)
			}
		})
	}
}
