package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestLoggerTagsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), Logger())
	router.GET("/blogs", func(c *gin.Context) {
		c.Set(ContextAuthorID, "author-42")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/blogs?category=tech", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	line := buf.String()
	assert.Contains(t, line, `"level":"info"`)
	assert.Contains(t, line, `"request_id":"req-1"`)
	assert.Contains(t, line, `"author_id":"author-42"`)
	assert.Contains(t, line, `"query":"category=tech"`)
	assert.Contains(t, line, `"status":200`)
}

func TestLoggerSeverityFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "info"},
		{http.StatusNotFound, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		buf := captureLogs(t)

		router := gin.New()
		router.Use(Logger())
		router.GET("/", func(c *gin.Context) { c.Status(tt.status) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Contains(t, buf.String(), `"level":"`+tt.level+`"`, tt.status)
	}
}
