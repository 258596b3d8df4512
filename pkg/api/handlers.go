package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrseed/hrseed/pkg/codec"
	"github.com/hrseed/hrseed/pkg/registry"
)

// Server holds the API server state
type Server struct {
	codec    *codec.Codec
	registry *registry.Registry // nil disables named wordlists
	config   ServerConfig
	metrics  *Metrics
}

// NewServer creates a new API server around a default codec. The registry and
// metrics may be nil.
func NewServer(c *codec.Codec, reg *registry.Registry, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		codec:    c,
		registry: reg,
		config:   config,
		metrics:  metrics,
	}
}

// resolveCodec returns the server default codec, or one built from a
// registered wordlist when the request names one.
func (s *Server) resolveCodec(name string) (*codec.Codec, error) {
	if name == "" {
		return s.codec, nil
	}
	if s.registry == nil {
		return nil, errors.New("named wordlists are not enabled")
	}
	ix, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return codec.New(codec.WithIndex(ix))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req EncodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	c, err := s.resolveCodec(req.Wordlist)
	if err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	words, err := c.SeedToHuman(req.Seed)
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", err == nil, time.Since(start))
	}
	if err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	sendSuccess(w, EncodeResponse{Words: words, ChunkSize: c.ChunkSize()})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	c, err := s.resolveCodec(req.Wordlist)
	if err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	seed, err := c.HumanToSeed(req.Words)
	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode", err == nil, time.Since(start))
	}
	if err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	sendSuccess(w, DecodeResponse{Seed: seed, ChunkSize: c.ChunkSize()})
}

func (s *Server) handlePutWordlist(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req WordlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	if err := s.registry.Put(name, req.Words); err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	ix, err := s.registry.Get(name)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, WordlistResponse{Name: name, Size: ix.Size(), ChunkSize: ix.ChunkSize()})
}

func (s *Server) handleGetWordlist(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	ix, err := s.registry.Get(name)
	if err != nil {
		sendError(w, err.Error(), codecErrorStatus(err))
		return
	}

	sendSuccess(w, WordlistResponse{
		Name:      name,
		Size:      ix.Size(),
		ChunkSize: ix.ChunkSize(),
		Words:     ix.Words(),
	})
}

func (s *Server) handleListWordlists(w http.ResponseWriter, r *http.Request) {
	names, err := s.registry.List()
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if names == nil {
		names = []string{}
	}
	sendSuccess(w, names)
}

func (s *Server) handleDeleteWordlist(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := s.registry.Delete(name); err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]string{"deleted": name})
}

// requireRegistry guards the wordlist routes when the server runs without a
// registry.
func (s *Server) requireRegistry(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.registry == nil {
			sendError(w, "named wordlists are not enabled", http.StatusNotFound)
			return
		}
		next(w, r)
	}
}

// codecErrorStatus maps codec and registry errors to HTTP status codes. A
// failed round-trip verification is an internal bug, not bad input.
func codecErrorStatus(err error) int {
	switch {
	case errors.Is(err, codec.ErrRoundtrip):
		return http.StatusInternalServerError
	case errors.Is(err, registry.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
