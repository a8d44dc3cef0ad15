package pprof

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	router := httprouter.New()
	Register(router, nil)

	for _, path := range []string{"/", "/cmdline", "/goroutine", "/heap"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRegisterGuarded(t *testing.T) {
	router := httprouter.New()
	Register(router, func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("token") != "secret" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			h.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+"/heap", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, Prefix+"/heap?token=secret", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProfilerWritesFiles(t *testing.T) {
	dir := t.TempDir()
	p := &Profiler{
		CPUProfile:  filepath.Join(dir, "cpu", "cpu.pprof"),
		HeapProfile: filepath.Join(dir, "heap.pprof"),
	}

	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())

	for _, path := range []string{p.CPUProfile, p.HeapProfile} {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0), path)
	}
}

func TestProfilerDisabled(t *testing.T) {
	p := &Profiler{}
	require.NoError(t, p.Start())
	require.NoError(t, p.Stop())
}
