package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_LevelByEnvironment(t *testing.T) {
	prod := New("production")
	dev := New("development")

	assert.False(t, prod.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, dev.Core().Enabled(zapcore.DebugLevel))
}

func TestGinMiddleware_LogsRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	router := gin.New()
	router.Use(GinMiddleware(zap.New(core)))
	router.GET("/invoices", func(c *gin.Context) {
		c.Set("request_id", "req-1")
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/invoices?x=1", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/invoices", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.Equal(t, "req-1", fields["request_id"])
}
