package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader is the HTTP header name for request ID
	RequestIDHeader = "X-Request-ID"
	// RequestIDContextKey is the context key for request ID
	RequestIDContextKey = "request_id"
	// ReplayHeader marks a response served from the idempotency store
	ReplayHeader = "X-Idempotent-Replay"

	clientRequestIDKey = "client_request_id"
)

// RequestIDStore stores processed request IDs for idempotency
type RequestIDStore interface {
	// Store stores a request ID with its response
	Store(ctx context.Context, requestID string, response []byte, ttl time.Duration) error
	// Get retrieves a stored response by request ID
	Get(ctx context.Context, requestID string) ([]byte, error)
	// Exists checks if a request ID exists
	Exists(ctx context.Context, requestID string) (bool, error)
}

// storedResponse is what the idempotency store keeps for one write.
type storedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

// RequestIDMiddleware extracts or generates X-Request-ID header
func RequestIDMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
			logger.Debug("Generated new request ID",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
		} else {
			c.Set(clientRequestIDKey, true)
		}

		c.Set(RequestIDContextKey, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), RequestIDContextKey, requestID))
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retrieves the request ID from the Gin context
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDContextKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

// idempotencyKey returns the key for a write whose request ID came from the
// client. Generated IDs are never replayed.
func idempotencyKey(c *gin.Context) string {
	switch c.Request.Method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ""
	}
	if !c.GetBool(clientRequestIDKey) {
		return ""
	}
	requestID := GetRequestID(c)
	if requestID == "" {
		return ""
	}
	return "idempotency:" + c.Request.Method + ":" + c.Request.URL.Path + ":" + requestID
}

// IdempotencyMiddleware replays the stored response of a write already
// processed with the same X-Request-ID
func IdempotencyMiddleware(store RequestIDStore, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := idempotencyKey(c)
		if key == "" {
			c.Next()
			return
		}

		exists, err := store.Exists(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Error checking request ID existence",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err),
			)
			c.Next()
			return
		}

		if exists {
			cached, err := store.Get(c.Request.Context(), key)
			var resp storedResponse
			if err == nil && json.Unmarshal(cached, &resp) == nil && resp.Status != 0 {
				logger.Info("Duplicate request detected, returning cached response",
					zap.String("request_id", GetRequestID(c)),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)
				c.Header(ReplayHeader, "true")
				c.Data(resp.Status, "application/json; charset=utf-8", resp.Body)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

// StoreResponseMiddleware stores successful write responses for idempotency
func StoreResponseMiddleware(store RequestIDStore, logger *zap.Logger, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := idempotencyKey(c)
		if key == "" {
			c.Next()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           make([]byte, 0),
		}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 || len(writer.body) == 0 {
			return
		}

		record, err := json.Marshal(storedResponse{Status: status, Body: writer.body})
		if err != nil {
			logger.Warn("Failed to encode response for idempotency", zap.Error(err))
			return
		}
		if err := store.Store(c.Request.Context(), key, record, ttl); err != nil {
			logger.Warn("Failed to store response for idempotency",
				zap.String("request_id", GetRequestID(c)),
				zap.Error(err),
			)
			return
		}
		logger.Debug("Stored response for idempotency",
			zap.String("request_id", GetRequestID(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
		)
	}
}

// responseWriter captures the response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteString(s string) (int, error) {
	w.body = append(w.body, []byte(s)...)
	return w.ResponseWriter.WriteString(s)
}
