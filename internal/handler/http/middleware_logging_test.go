package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// makeRequest creates a test request carrying a logger in its context, the
// same way withTraceID does.
func makeRequest(method, target string, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		target           string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:          "health check",
			method:        http.MethodGet,
			target:        "/health_check",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/health_check"`,
				`"status":200`,
				`"duration":`,
				`"size":0`,
			},
		},
		{
			name:            "rejected subscription",
			method:          http.MethodPost,
			target:          "/subscriptions",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: "Bad Request\n",
			checkLogContains: []string{
				`"method":"POST"`,
				`"uri":"/subscriptions"`,
				`"status":400`,
				`"size":12`,
			},
		},
		{
			name:            "server error",
			method:          http.MethodPost,
			target:          "/subscriptions",
			handlerStatus:   http.StatusInternalServerError,
			handlerResponse: "Internal Server Error\n",
			checkLogContains: []string{
				`"status":500`,
			},
		},
		{
			name:          "query parameters preserved in uri",
			method:        http.MethodGet,
			target:        "/api/version?verbose=1",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"uri":"/api/version?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.target, "", &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logBuf.String(), expected)
			}
		})
	}
}

func TestWithLogging_NoStatusWritten(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	newTestHandler().withLogging(next).ServeHTTP(rr, makeRequest(http.MethodGet, "/health_check", "", &logBuf))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	assert.Panics(t, func() {
		newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/health_check", "", &logBuf))
	})
}
