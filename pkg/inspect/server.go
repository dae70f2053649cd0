package inspect

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
)

// Server exposes a renderer's bound tree over HTTP. The renderer is
// single-threaded, so the server serializes every renderer touch
// (snapshot reads, dispatch, re-mount) behind one mutex.
type Server struct {
	renderer *core.Renderer
	log      *slog.Logger

	mu       sync.Mutex
	server   *http.Server
	listener net.Listener
}

// NewServer creates an inspector for the given renderer.
func NewServer(renderer *core.Renderer) *Server {
	return &Server{
		renderer: renderer,
		log:      slog.Default(),
	}
}

// Start binds addr (e.g. "127.0.0.1:0") and serves in the background.
// It returns the bound address, useful with an ephemeral port.
func (s *Server) Start(addr string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return s.listener.Addr().String(), nil
	}

	// Bind first to fail fast on address conflicts.
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return "", &errors.WeftError{
			Op:   "inspect.Server.Start",
			Kind: errors.KindInspect,
			Err:  fmt.Errorf("listen %s: %w", addr, err),
		}
	}

	server := &http.Server{Handler: s.Handler()}
	s.server = server
	s.listener = listener

	go func() {
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.mu.Lock()
			s.server = nil
			s.listener = nil
			s.mu.Unlock()
			s.log.Error("inspector server failed", "err", err)
		}
	}()

	s.log.Info("inspector listening", "addr", listener.Addr().String())
	return listener.Addr().String(), nil
}

// Dispatch routes a handler id into the renderer under the server's
// lock and re-mounts, returning the fresh bound tree (nil when nothing
// is mounted). Hosts that feed ids from their own input loop must use
// this instead of touching the renderer directly, or stdin dispatch
// races HTTP dispatch.
func (s *Server) Dispatch(id uint64) *dom.Node {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderer.OnMessage(id)
	if s.renderer.Bound() == nil {
		return nil
	}
	return s.renderer.Mount()
}

// Stop gracefully shuts the server down.
func (s *Server) Stop() {
	s.mu.Lock()
	server := s.server
	s.server = nil
	s.listener = nil
	s.mu.Unlock()

	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	server.Shutdown(ctx)
}

// Handler returns the inspector's routes, for embedding in a host mux
// or for testing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tree", s.handleTree)
	mux.HandleFunc("GET /tree.msgpack", s.handleTreeMsgpack)
	mux.HandleFunc("POST /message/{id}", s.handleMessage)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

func (s *Server) snapshot() *TreeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot(s.renderer.Bound())
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	defer errors.Recover("inspect.handleTree")

	snap := s.snapshot()
	if snap.Root == nil {
		http.Error(w, "nothing mounted", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, snap)
}

func (s *Server) handleTreeMsgpack(w http.ResponseWriter, r *http.Request) {
	defer errors.Recover("inspect.handleTreeMsgpack")

	snap := s.snapshot()
	if snap.Root == nil {
		http.Error(w, "nothing mounted", http.StatusServiceUnavailable)
		return
	}
	data, err := msgpack.Marshal(snap)
	if err != nil {
		http.Error(w, fmt.Sprintf("msgpack encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/msgpack")
	w.Write(data)
}

// handleMessage dispatches a handler id and re-mounts, returning the
// fresh snapshot. Stale or unknown ids are not an error; dispatch is
// inert for them and the response simply reflects the current tree.
func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	defer errors.Recover("inspect.handleMessage")

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "malformed id", http.StatusBadRequest)
		return
	}

	writeJSON(w, Snapshot(s.Dispatch(id)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		http.Error(w, fmt.Sprintf("json encode error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}
