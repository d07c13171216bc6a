package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocontacts/contacts-api/internal/api/shared"
	"github.com/gocontacts/contacts-api/internal/platform/logger"
)

func TestTraceMiddleware(t *testing.T) {
	var gotTraceID string
	var gotLogger *slog.Logger

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTraceID = shared.GetTraceID(r.Context())
		gotLogger = logger.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/contacts", nil)
	recorder := httptest.NewRecorder()

	TraceMiddleware(next).ServeHTTP(recorder, req)

	require.NotEmpty(t, gotTraceID, "downstream handlers must see a trace ID")
	assert.Len(t, gotTraceID, shared.TraceIDLength*2)
	assert.NotSame(t, slog.Default(), gotLogger,
		"the request context must carry the trace-enriched logger")
}
