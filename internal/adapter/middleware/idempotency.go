package middleware

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderRequestAt = "X-Request-At"

	// in-progress marker lifetime; the final entry replaces it with the configured ttl
	provisionalLockTTL = 60 * time.Second
	maxClockSkew       = 10 * time.Minute
	storeTimeout       = 2 * time.Second
)

type idempEntry struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// Idempotency replays the stored response of a repeated mutating request.
// The key is method + route + actor id + X-Request-Id, so it must run after Authenticate.
// X-Request-At is epoch (s or ms) or RFC3339 with a zone.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			method := req.Method

			switch method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}

			reqID := strings.ToLower(strings.TrimSpace(req.Header.Get(HeaderRequestID)))
			if reqID == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + HeaderRequestID})
			}
			if !validReqID(reqID) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderRequestID + " format"})
			}

			reqAt, err := parseRequestAt(req.Header.Get(HeaderRequestAt))
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
			}
			now := nowUTC()
			if reqAt.Before(now.Add(-maxClockSkew)) || reqAt.After(now.Add(maxClockSkew)) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": HeaderRequestAt + " too skewed"})
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewBuffer(body))
			bhash := bodyHash(body)

			key := buildKey(method, c.Path(), actor.UserID, reqID)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			entry := idempEntry{
				InProgress:  true,
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   now,
			}
			ok, err = provisionalSet(ctx, rdb, key, entry)
			if err != nil {
				logger.Warn("idempotency store unavailable", zap.String("key", key), zap.Error(err))
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !ok {
				cur, errLoad := loadEntry(ctx, rdb, key)
				if errLoad != nil {
					logger.Warn("idempotency entry load failed", zap.String("key", key), zap.Error(errLoad))
				}
				if cur.BodySHA256 != "" && cur.BodySHA256 != bhash {
					return c.JSON(http.StatusConflict, map[string]string{"error": HeaderRequestID + " reused with different body"})
				}
				if !cur.InProgress && cur.Code != 0 && len(cur.Body) > 0 {
					return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			// server failures are not replayed; the client may retry with the same id
			if rec.code >= http.StatusInternalServerError {
				if err := rdb.Del(context.Background(), key).Err(); err != nil {
					logger.Warn("idempotency release failed", zap.String("key", key), zap.Error(err))
				}
				return nil
			}

			final := idempEntry{
				Code:        rec.code,
				Body:        rec.buf.Bytes(),
				BodySHA256:  bhash,
				RequestID:   reqID,
				RequestAtMS: reqAt.UnixMilli(),
				CreatedAt:   nowUTC(),
			}
			if err := saveFinal(context.Background(), rdb, key, final, ttl); err != nil {
				logger.Warn("idempotency save failed", zap.String("key", key), zap.Error(err))
			}
			return nil
		}
	}
}
