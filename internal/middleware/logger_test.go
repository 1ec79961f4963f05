package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/stockscore/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_Basic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	// capture logs by setting pretty off and ensuring logger initialized
	logger.Init()
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
	if rid := w.Header().Get("X-Request-ID"); rid == "" {
		t.Fatalf("missing X-Request-ID header")
	}
}

func TestRequestLogger_ClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger.Init()
	router.Use(RequestID(), RequestLogger())
	router.POST("/echo", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})

	body := bytes.NewBufferString("hello")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", body)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", w.Code)
	}
}

func TestRequestLogger_ReportsHandlerError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.SetOutput(&buf)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/score", func(c *gin.Context) {
		AbortWithError(c, http.StatusNotFound, "Item not found", errors.New("item X not found"))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/score", nil))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid log line %q: %v", buf.String(), err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("level=%v, want warn", entry["level"])
	}
	if entry["error"] != "item X not found" || entry["path"] != "/score" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if entry["status"] != float64(http.StatusNotFound) {
		t.Fatalf("status=%v", entry["status"])
	}
}
