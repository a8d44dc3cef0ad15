// Package pprof exposes the runtime profiler: HTTP handlers mounted on the
// web server's router, and file profiles written around a command run.
package pprof

import (
	"errors"
	"fmt"
	"net/http"
	netpprof "net/http/pprof"
	"os"
	"path/filepath"
	"runtime/pprof"
	"sync"

	"github.com/julienschmidt/httprouter"
)

// Prefix is the path the HTTP handlers are mounted under
const Prefix = "/debug/pprof"

var namedProfiles = []string{"goroutine", "heap", "allocs", "block", "mutex", "threadcreate"}

// Register mounts the pprof handlers on router. wrap guards every handler,
// nil mounts them unguarded.
func Register(router *httprouter.Router, wrap func(http.Handler) http.Handler) {
	if wrap == nil {
		wrap = func(h http.Handler) http.Handler { return h }
	}
	mount := func(path string, h http.Handler) {
		router.Handler(http.MethodGet, Prefix+path, wrap(h))
	}

	mount("/", http.HandlerFunc(netpprof.Index))
	mount("/cmdline", http.HandlerFunc(netpprof.Cmdline))
	mount("/profile", http.HandlerFunc(netpprof.Profile))
	mount("/symbol", http.HandlerFunc(netpprof.Symbol))
	mount("/trace", http.HandlerFunc(netpprof.Trace))
	for _, name := range namedProfiles {
		mount("/"+name, netpprof.Handler(name))
	}
}

// Profiler writes a CPU profile while running and a heap profile on Stop.
// Empty paths disable the respective profile.
type Profiler struct {
	CPUProfile  string
	HeapProfile string

	mu      sync.Mutex
	cpuFile *os.File
	stopped bool
}

// Start begins CPU profiling if configured
func (p *Profiler) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopped = false
	if p.CPUProfile == "" {
		return nil
	}
	f, err := create(p.CPUProfile)
	if err != nil {
		return fmt.Errorf("failed to create CPU profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to start CPU profiling: %w", err)
	}
	p.cpuFile = f
	return nil
}

// Stop ends CPU profiling and writes the heap profile. Only the first call
// after Start has an effect.
func (p *Profiler) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return nil
	}
	p.stopped = true

	var errs []error
	if p.cpuFile != nil {
		pprof.StopCPUProfile()
		if err := p.cpuFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close CPU profile: %w", err))
		}
		p.cpuFile = nil
	}

	if p.HeapProfile != "" {
		if err := writeProfile("heap", p.HeapProfile); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// writeProfile writes a named profile to a file
func writeProfile(name, path string) error {
	prof := pprof.Lookup(name)
	if prof == nil {
		return fmt.Errorf("profile %q not found", name)
	}
	f, err := create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s profile file: %w", name, err)
	}
	defer f.Close()
	if err := prof.WriteTo(f, 0); err != nil {
		return fmt.Errorf("failed to write %s profile: %w", name, err)
	}
	return nil
}

func create(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
