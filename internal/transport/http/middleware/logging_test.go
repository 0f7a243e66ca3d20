package httpmw

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cwrk-planet/rooms-api/pkg/logger"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger.Init(logger.Config{Env: logger.EnvDev, Backend: logger.BackendStd, Debug: true, Output: &buf})
	return &buf
}

func serve(h http.Handler) *httptest.ResponseRecorder {
	chain := middleware.RequestID(WithRequestLogger(RequestLogger(h)))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rooms?x=1", nil))
	return rec
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	cases := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "level=INFO"},
		{http.StatusNotFound, "level=WARN"},
		{http.StatusInternalServerError, "level=ERROR"},
	}
	for _, tc := range cases {
		buf := captureLogs(t)
		rec := serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		require.Equal(t, tc.status, rec.Code)
		out := buf.String()
		assert.Contains(t, out, tc.level, "status %d", tc.status)
		assert.Contains(t, out, "msg=http_request")
		assert.Contains(t, out, "path=/rooms")
		assert.Contains(t, out, `query="x=1"`)
		assert.Contains(t, out, "req_id=")
	}
}

func TestRequestLogger_ImplicitOKAndBytes(t *testing.T) {
	buf := captureLogs(t)
	serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "bytes=5")
}

func TestL_FallsBackToGlobal(t *testing.T) {
	captureLogs(t)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.NotNil(t, L(req.Context()))
}
