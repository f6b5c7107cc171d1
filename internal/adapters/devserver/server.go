// Package devserver serves the output root over HTTP and pushes reload
// signals to connected browsers.
package devserver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReloadServer = (*Server)(nil)

const (
	clientPath  = "/__assetpipe/client.js"
	eventsPath  = "/__assetpipe/events"
	socketPath  = "/__assetpipe/ws"
	metricsPath = "/metrics"

	// DefaultPingInterval keeps idle event streams open through proxies.
	DefaultPingInterval = 10 * time.Second

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
	writeTimeout      = 10 * time.Second
)

//go:embed client.js
var clientJS []byte

// Server implements ports.ReloadServer.
type Server struct {
	logger       ports.Logger
	metrics      ports.Metrics
	hub          *hub
	pingInterval time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithPingInterval sets the keep-alive interval of event streams.
func WithPingInterval(d time.Duration) Option {
	return func(s *Server) {
		s.pingInterval = d
	}
}

// New creates a new Server.
func New(logger ports.Logger, metrics ports.Metrics, opts ...Option) *Server {
	s := &Server{
		logger:       logger,
		metrics:      metrics,
		hub:          newHub(metrics),
		pingInterval: DefaultPingInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the router serving root.
func (s *Server) Handler(root string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.NoCache)

	r.Get(clientPath, s.handleClient)
	r.Get(eventsPath, s.handleEvents)
	r.Get(socketPath, s.handleWebSocket)
	r.Handle(metricsPath, s.metrics.Handler())

	static := staticHandler{root: root}
	r.Get("/*", static.ServeHTTP)
	r.Head("/*", static.ServeHTTP)
	return r
}

// Serve listens on addr and serves root until ctx ends.
func (s *Server) Serve(ctx context.Context, root, addr string) error {
	ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
	}

	srv := &http.Server{
		Handler:           s.Handler(root),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go s.ping(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info(fmt.Sprintf("serving %s at %s", root, displayURL(addr, ln.Addr())))

	select {
	case err := <-errCh:
		s.hub.close()
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	case <-ctx.Done():
	}

	// Event streams never go idle; disconnect them before shutting down.
	s.hub.close()
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
	return nil
}

// Reload tells every browser that target changed.
func (s *Server) Reload(target string) {
	s.metrics.ObserveReload(target)
	s.hub.broadcast(encode(reloadEvent{Type: eventReload, Target: target}))
}

// Report forwards a diagnostic to every browser.
func (s *Server) Report(d domain.Diagnostic) {
	s.hub.broadcast(encode(buildErrorEvent{Type: eventBuildError, Out: d.Task, Err: d.Message}))
}

func (s *Server) ping(ctx context.Context) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	msg := encode(pingEvent{Type: eventPing})
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.hub.broadcast(msg)
		}
	}
}

func (s *Server) handleClient(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
	_, _ = w.Write(clientJS)
}

// handleEvents streams events as Server-Sent Events.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	id, events, ok := s.hub.subscribe()
	if !ok {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}
	defer s.hub.unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, open := <-events:
			if !open {
				return
			}
			if _, err := fmt.Fprintf(w, "data: %s\n\n", msg); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

// handleWebSocket streams the same events over a websocket.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.CloseNow() //nolint:errcheck // closed normally below when possible

	id, events, ok := s.hub.subscribe()
	if !ok {
		_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer s.hub.unsubscribe(id)

	// Clients never send; CloseRead ends ctx when the peer goes away.
	ctx := conn.CloseRead(r.Context())
	for {
		select {
		case <-ctx.Done():
			return
		case msg, open := <-events:
			if !open {
				_ = conn.Close(websocket.StatusGoingAway, "server shutting down")
				return
			}
			writeCtx, cancel := context.WithTimeout(ctx, writeTimeout)
			err := conn.Write(writeCtx, websocket.MessageText, msg)
			cancel()
			if err != nil {
				return
			}
		}
	}
}

// displayURL turns the configured address and the bound listener address
// into a URL a browser can open.
func displayURL(addr string, bound net.Addr) string {
	host, _, _ := net.SplitHostPort(addr)
	_, port, err := net.SplitHostPort(bound.String())
	if err != nil {
		return bound.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
