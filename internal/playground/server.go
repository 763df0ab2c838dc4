// Package playground serves a browser editor that converts HTML to JSX as
// you type, over a websocket with a plain HTTP fallback.
package playground

import (
	_ "embed"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/livefir/htmljsx"
	"github.com/livefir/htmljsx/internal/metrics"
)

//go:embed index.html
var indexHTML []byte

// DefaultMaxBody limits the size of one HTML document sent for conversion.
const DefaultMaxBody = 1 << 20

// Config configures the playground server
type Config struct {
	Converter *htmljsx.Converter
	Upgrader  *websocket.Upgrader
	Metrics   *metrics.Collector
	MaxBody   int64
}

// Option is a functional option for configuring a Server
type Option func(*Config)

// WithConverter sets the converter used for every request
func WithConverter(c *htmljsx.Converter) Option {
	return func(cfg *Config) {
		cfg.Converter = c
	}
}

// WithUpgrader sets a custom WebSocket upgrader
func WithUpgrader(upgrader *websocket.Upgrader) Option {
	return func(cfg *Config) {
		cfg.Upgrader = upgrader
	}
}

// WithMetrics sets the collector that records conversions
func WithMetrics(collector *metrics.Collector) Option {
	return func(cfg *Config) {
		cfg.Metrics = collector
	}
}

// WithMaxBody limits request and message size in bytes
func WithMaxBody(n int64) Option {
	return func(cfg *Config) {
		cfg.MaxBody = n
	}
}

// Response is the reply to one conversion request. Exactly one of JSX and
// Error is set.
type Response struct {
	JSX       string `json:"jsx,omitempty"`
	Error     string `json:"error,omitempty"`
	Fallbacks int    `json:"fallbacks,omitempty"`
}

// Server is the playground HTTP handler
type Server struct {
	config Config
	mux    *http.ServeMux
}

// New creates a playground server
func New(opts ...Option) *Server {
	config := Config{
		Converter: htmljsx.New(),
		Upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		Metrics: metrics.NewCollector(),
		MaxBody: DefaultMaxBody,
	}

	for _, opt := range opts {
		opt(&config)
	}

	s := &Server{config: config, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	s.mux.HandleFunc("POST /convert", s.handleConvert)
	s.mux.HandleFunc("GET /metrics", s.handleMetrics)
	return s
}

// Metrics returns the server's collector
func (s *Server) Metrics() *metrics.Collector {
	return s.config.Metrics
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.config.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	if s.config.MaxBody > 0 {
		conn.SetReadLimit(s.config.MaxBody)
	}

	s.config.Metrics.IncrementConnectionOpened()
	s.config.Metrics.IncrementCustomCounter("websocket")
	defer s.config.Metrics.IncrementConnectionClosed()

	log.Printf("Client connected from %s", conn.RemoteAddr())

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}

		response, err := json.Marshal(s.convert(string(data)))
		if err != nil {
			log.Printf("Failed to marshal response: %v", err)
			continue
		}

		if err := conn.WriteMessage(websocket.TextMessage, response); err != nil {
			log.Printf("WebSocket write failed: %v", err)
			break
		}
	}

	log.Printf("Client disconnected")
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	s.config.Metrics.IncrementCustomCounter("http")

	body := io.Reader(r.Body)
	if s.config.MaxBody > 0 {
		body = http.MaxBytesReader(w, r.Body, s.config.MaxBody)
	}
	src, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	resp := s.convert(string(src))
	if resp.Error != "" {
		http.Error(w, resp.Error, http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, resp.JSX)
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	payload := struct {
		metrics.ConversionMetrics
		ErrorRate float64          `json:"error_rate"`
		Counters  map[string]int64 `json:"counters"`
	}{
		ConversionMetrics: s.config.Metrics.Snapshot(),
		ErrorRate:         s.config.Metrics.GetErrorRate(),
		Counters:          s.config.Metrics.GetCustomCounters(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode metrics: %v", err)
	}
}

func (s *Server) convert(src string) Response {
	res, err := s.config.Converter.Render(src)
	if err != nil {
		s.config.Metrics.RecordConversionError()
		log.Printf("Conversion failed: %v", err)
		return Response{Error: err.Error()}
	}
	s.config.Metrics.RecordConversion(len(src), len(res.JSX), res.HandlerFallbacks)
	return Response{JSX: res.JSX, Fallbacks: res.HandlerFallbacks}
}
