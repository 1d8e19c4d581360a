package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"lostfound-backend/internal/adapter/middleware"
	"lostfound-backend/internal/domain/user"
)

var (
	owner      = user.Actor{UserID: 10, Name: "Budi", Role: user.RoleUser}
	adminActor = user.Actor{UserID: 1, Name: "Admin", Role: user.RoleAdmin}
)

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

// newCtx builds a request context carrying actor (zero value means anonymous).
func newCtx(e *echo.Echo, method, path string, body io.Reader, actor user.Actor, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor.UserID != 0 {
		middleware.SetActor(c, actor)
	}
	if len(params) > 0 {
		var names, values []string
		for i := 0; i+1 < len(params); i += 2 {
			names = append(names, params[i])
			values = append(values, params[i+1])
		}
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad error json: %v; raw=%s", err, rec.Body.String())
	}
	return out
}

func TestHealth_ReturnsOKWithRFC3339NanoUTC(t *testing.T) {
	e := echo.New()
	h := NewHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	start := time.Now().UTC()

	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}

	var body struct {
		Status string `json:"status"`
		Time   string `json:"time"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	if body.Status != "ok" {
		t.Fatalf(`expected status "ok", got %q`, body.Status)
	}
	parsed, err := time.Parse(time.RFC3339Nano, body.Time)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v (value=%q)", err, body.Time)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
	now := time.Now().UTC()
	if parsed.Before(start.Add(-2*time.Second)) || parsed.After(now.Add(2*time.Second)) {
		t.Fatalf("time not within expected window: parsed=%v start=%v now=%v", parsed, start, now)
	}
}

func TestHealth_DegradedWhenStoreDown(t *testing.T) {
	e := echo.New()
	h := NewHandler(func(context.Context) error { return errors.New("connection refused") })

	c, rec := newCtx(e, http.MethodGet, "/health", nil, user.Actor{})
	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "degraded") {
		t.Fatalf("expected degraded status, got %s", rec.Body.String())
	}
}
