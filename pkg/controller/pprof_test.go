package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"userlookup/pkg/controller"

	"github.com/stretchr/testify/require"
)

func servePprof(t *testing.T, path string) *http.Response {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(controller.PprofPath, controller.Pprof())

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec.Result()
}

func TestPprof_Index(t *testing.T) {
	res := servePprof(t, "/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprof_Cmdline(t *testing.T) {
	res := servePprof(t, "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprof_NamedProfile(t *testing.T) {
	res := servePprof(t, "/debug/pprof/goroutine?debug=1")
	require.Equal(t, http.StatusOK, res.StatusCode)

	res = servePprof(t, "/debug/pprof/nope")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
