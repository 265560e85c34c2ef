package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func spanAttribute(span sdktrace.ReadOnlySpan, key attribute.Key) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestRequestTiming_SetsStartTime(t *testing.T) {
	router := gin.New()
	router.Use(RequestTiming())

	var startTime time.Time
	router.GET("/test", func(c *gin.Context) {
		startTime = c.GetTime("request_start_time")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, startTime.IsZero())
}

func TestRequestTiming_RecordsSpan(t *testing.T) {
	recorder := recordSpans(t)

	router := gin.New()
	router.Use(RequestID(), RequestTiming())
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	router.ServeHTTP(httptest.NewRecorder(), req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "http.request", spans[0].Name())

	status, ok := spanAttribute(spans[0], "http.status_code")
	require.True(t, ok)
	assert.Equal(t, int64(http.StatusCreated), status.AsInt64())

	requestID, ok := spanAttribute(spans[0], "http.request_id")
	require.True(t, ok)
	assert.Equal(t, "req-1", requestID.AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}

func TestRequestTiming_MarksServerErrors(t *testing.T) {
	recorder := recordSpans(t)

	router := gin.New()
	router.Use(RequestTiming())
	router.GET("/error", func(c *gin.Context) {
		c.Status(http.StatusInternalServerError)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/error", nil))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestRequestTiming_PropagatesContext(t *testing.T) {
	recordSpans(t)

	router := gin.New()
	router.Use(RequestTiming())

	var inner trace.SpanContext
	router.GET("/test", func(c *gin.Context) {
		inner = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.True(t, inner.IsValid())
}
