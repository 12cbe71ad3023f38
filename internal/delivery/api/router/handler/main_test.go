package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apimiddleware "storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/response"
	"storefront/internal/delivery/api/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Started at init by the opencensus instrumentation of the Firebase clients.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho mirrors the validator and error handler of the API server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *response.Problem `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()

	env := decodeEnvelope(t, rec)
	require.Nil(t, env.Error)
	require.NoError(t, json.Unmarshal(env.Data, v))
}
