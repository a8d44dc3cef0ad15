package web

import (
	"bytes"
	"context"
	"crypto/rand"
	"embed"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"os/exec"
	"path"
	"runtime"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/codefionn/calcpad/internal/calc"
	"github.com/codefionn/calcpad/internal/config"
	"github.com/codefionn/calcpad/internal/consts"
	"github.com/codefionn/calcpad/internal/logger"
	"github.com/codefionn/calcpad/internal/pprof"
	"github.com/codefionn/calcpad/internal/store"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

//go:embed static/*
var StaticFiles embed.FS

const (
	authTokenLength = 32
	sessionIDLength = 16
)

// staticAsset is an embedded file with its precomputed ETag
type staticAsset struct {
	name    string
	content []byte
	etag    string
	modTime time.Time
}

// Server represents the web server
type Server struct {
	addr       string
	authToken  string
	listener   net.Listener
	httpServer *http.Server
	router     *httprouter.Router
	cfg        *config.Config
	store      store.Store
	hub        *Hub
	assets     map[string]*staticAsset
	started    time.Time
}

// NewServer creates a new web server. A nil store keeps sessions in memory.
func NewServer(cfg *config.Config, st store.Store) (*Server, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if st == nil {
		st = store.NewMemory()
	}

	// Ensure .js files are served with correct MIME type
	if err := mime.AddExtensionType(".js", "application/javascript"); err != nil {
		logger.Warn("Failed to register .js MIME type: %v", err)
	}

	token, err := generateToken(authTokenLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	assets, err := loadAssets(StaticFiles)
	if err != nil {
		return nil, fmt.Errorf("failed to load static files: %w", err)
	}

	srv := &Server{
		addr:      cfg.Addr,
		authToken: token,
		router:    httprouter.New(),
		cfg:       cfg,
		store:     st,
		hub:       NewHub(),
		assets:    assets,
		started:   time.Now(),
	}
	srv.setupRoutes()

	return srv, nil
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/ws", s.handleWebSocket)
	s.router.GET("/static/*filepath", s.handleStatic)
	s.router.HEAD("/static/*filepath", s.handleStatic)
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/api/solve", s.handleSolve)

	if s.cfg.Pprof {
		pprof.Register(s.router, s.requireToken)
	}
}

// Handler returns the HTTP handler of the server
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.listener = listener
	s.addr = listener.Addr().String()

	s.httpServer = &http.Server{
		Handler:      s.router,
		ReadTimeout:  consts.Timeout60Seconds,
		WriteTimeout: consts.Timeout60Seconds,
		ErrorLog:     logger.NewStdLogger(logger.Global().WithPrefix("http"), slog.LevelWarn),
	}

	go s.hub.Run()

	go func() {
		logger.Info("Web server listening on %s", s.addr)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server error: %v", err)
		}
	}()

	return nil
}

// Stop stops the web server
func (s *Server) Stop() error {
	logger.Info("Stopping web server...")

	s.hub.Stop()

	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), consts.Timeout5Seconds)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}

// Addr returns the address the server listens on
func (s *Server) Addr() string {
	return s.addr
}

// GetURL returns the server URL with auth token
func (s *Server) GetURL() string {
	return fmt.Sprintf("http://%s/?token=%s", s.addr, s.authToken)
}

// OpenBrowser opens the default browser to the server URL
func (s *Server) OpenBrowser() error {
	url := s.GetURL()
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

func (s *Server) authorized(r *http.Request) bool {
	return r.URL.Query().Get("token") == s.authToken
}

// requireToken rejects requests without the auth token
func (s *Server) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.authorized(r) {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleIndex renders the calculator page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	props := PageProps{
		Title:             "calcpad",
		Token:             s.authToken,
		DisableAnimations: s.cfg.DisableAnimations,
	}
	if err := Page(props).Render(r.Context(), w); err != nil {
		logger.Error("Failed to render page: %v", err)
	}
}

// handleWebSocket upgrades the connection and attaches it to its session.
// The session id comes from the page; a missing or invalid one gets a fresh
// session whose id is sent back with the first display message.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		logger.Warn("WebSocket connection rejected: invalid auth token")
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if !validSessionID(sessionID) {
		id, err := generateToken(sessionIDLength)
		if err != nil {
			http.Error(w, "failed to create session", http.StatusInternalServerError)
			return
		}
		sessionID = id
	}

	upgrader := websocket.Upgrader{
		ReadBufferSize:  consts.BufferSize1KB,
		WriteBufferSize: consts.BufferSize1KB,
		CheckOrigin: func(r *http.Request) bool {
			return true // the auth token guards the endpoint
		},
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("Failed to upgrade WebSocket: %v", err)
		return
	}

	client := NewClient(r.Context(), sessionID, s.hub, conn, s.store)
	if !s.hub.Register(client) {
		conn.Close()
		return
	}

	go client.WritePump()
	go client.ReadPump()
}

// handleStatic serves embedded assets with ETag revalidation
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := strings.TrimPrefix(path.Clean(ps.ByName("filepath")), "/")
	asset, ok := s.assets[name]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if ctype := mime.TypeByExtension(path.Ext(name)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	w.Header().Set("ETag", asset.etag)
	w.Header().Set("Cache-Control", "no-cache")
	http.ServeContent(w, r, name, asset.modTime, bytes.NewReader(asset.content))
}

// handleHealth returns health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Clients: s.hub.ClientCount(),
	})
}

// handleSolve evaluates a display-format expression without a session
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if !s.authorized(r) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, consts.BufferSize1KB)
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	solution, ok := calc.Solve(req.Expression)
	if !ok {
		writeJSON(w, http.StatusOK, SolveResponse{OK: false})
		return
	}

	result := calc.FormatSolution(solution)
	resp := SolveResponse{OK: true, Text: result.Text}
	if result.IsError() {
		resp.Error = result.Err.String()
	}
	writeJSON(w, http.StatusOK, resp)
}

func loadAssets(fsys fs.FS) (map[string]*staticAsset, error) {
	sub, err := fs.Sub(fsys, "static")
	if err != nil {
		return nil, err
	}

	assets := make(map[string]*staticAsset)
	modTime := time.Now()
	err = fs.WalkDir(sub, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := fs.ReadFile(sub, name)
		if err != nil {
			return err
		}
		assets[name] = &staticAsset{
			name:    name,
			content: content,
			etag:    fmt.Sprintf("\"%016x\"", xxhash.Sum64(content)),
			modTime: modTime,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Failed to encode response: %v", err)
	}
}

func validSessionID(id string) bool {
	if id == "" || len(id) > 64 {
		return false
	}
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-') {
			return false
		}
	}
	return true
}

// generateToken returns n random bytes, hex encoded
func generateToken(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
