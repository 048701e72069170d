package controllers

import (
	"context"
	"net/http/httptest"
	"shop-backoffice/src/infrastructure/log"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type correlationKey struct{}

// recordingLogger captures correlation ids so the test can follow them from
// the middleware into the handler's context and the access-log entry.
type recordingLogger struct {
	issuedIDs  []string
	infoCtxIDs []string
	requestIDs []string
}

func (l *recordingLogger) Info(ctx context.Context, _ string) {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		l.infoCtxIDs = append(l.infoCtxIDs, id)
	}
}

func (l *recordingLogger) Warn(context.Context, string)                          {}
func (l *recordingLogger) Exception(context.Context, string, error)              {}
func (l *recordingLogger) Fatal(context.Context, string, error)                  {}
func (l *recordingLogger) InfoWithExtra(context.Context, string, map[string]any) {}

func (l *recordingLogger) RequestResponse(_ context.Context, f *log.Field) {
	if id, ok := f.Extra["CorrelationId"].(string); ok {
		l.requestIDs = append(l.requestIDs, id)
	}
}

func (l *recordingLogger) WithCorrelationID(ctx context.Context, id string) context.Context {
	l.issuedIDs = append(l.issuedIDs, id)
	return context.WithValue(ctx, correlationKey{}, id)
}

func TestRequestLogger_ThreadsCorrelationIDIntoRequestContext(t *testing.T) {
	logger := &recordingLogger{}

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ping", func(c *fiber.Ctx) error {
		logger.Info(c.UserContext(), "handling ping")
		return c.SendString("pong")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.Len(t, logger.issuedIDs, 1)
	issued := logger.issuedIDs[0]
	assert.NotEmpty(t, issued)

	require.Len(t, logger.infoCtxIDs, 1, "handler log lines must carry the correlation id")
	assert.Equal(t, issued, logger.infoCtxIDs[0])

	require.Len(t, logger.requestIDs, 1, "the access-log entry carries the same id")
	assert.Equal(t, issued, logger.requestIDs[0])
}

func TestRequestLogger_FreshIDPerRequest(t *testing.T) {
	logger := &recordingLogger{}

	app := fiber.New()
	app.Use(RequestLogger(logger))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	for i := 0; i < 2; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ping", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	require.Len(t, logger.issuedIDs, 2)
	assert.NotEqual(t, logger.issuedIDs[0], logger.issuedIDs[1])
}
