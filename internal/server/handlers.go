package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/matzehuels/stacklayout/pkg/buildinfo"
	"github.com/matzehuels/stacklayout/pkg/errors"
	"github.com/matzehuels/stacklayout/pkg/graph"
	"github.com/matzehuels/stacklayout/pkg/pipeline"
)

type layoutRequest struct {
	Graph   graph.Graph      `json:"graph"`
	Options pipeline.Options `json:"options"`
}

type layoutResponse struct {
	GraphHash string            `json:"graph_hash"`
	Layout    graph.Layout      `json:"layout"`
	Artifacts map[string]string `json:"artifacts"`
	Crossings int               `json:"crossings"`
	Cached    cacheResponse     `json:"cached"`
}

type cacheResponse struct {
	Layout bool `json:"layout"`
	Render bool `json:"render"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := req.Graph.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), req.Graph, s.merge(req.Options))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	artifacts := make(map[string]string, len(res.Artifacts))
	for format, data := range res.Artifacts {
		artifacts[format] = string(data)
	}
	writeJSON(w, http.StatusOK, layoutResponse{
		GraphHash: res.GraphHash,
		Layout:    res.Layout,
		Artifacts: artifacts,
		Crossings: res.Stats.Crossings,
		Cached:    cacheResponse{Layout: res.CacheInfo.LayoutHit, Render: res.CacheInfo.RenderHit},
	})
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	var req pipeline.InsertRequest
	if err := s.decode(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	resp, err := s.runner.InsertPane(r.Context(), s.engine, req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// merge overlays the non-zero fields of req on the configured defaults.
func (s *Server) merge(req pipeline.Options) pipeline.Options {
	opts := s.defaults
	opts.Formats = append([]string(nil), s.defaults.Formats...)
	if req.NodeWidth != 0 {
		opts.NodeWidth = req.NodeWidth
	}
	if req.NodeHeight != 0 {
		opts.NodeHeight = req.NodeHeight
	}
	if req.LayerSpacing != 0 {
		opts.LayerSpacing = req.LayerSpacing
	}
	if req.NodeSpacing != 0 {
		opts.NodeSpacing = req.NodeSpacing
	}
	if len(req.Formats) > 0 {
		opts.Formats = req.Formats
	}
	opts.Detailed = opts.Detailed || req.Detailed
	opts.Refresh = req.Refresh
	return opts
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if s.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return err
		}
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}

	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
		if status == http.StatusRequestEntityTooLarge {
			code = errors.ErrCodeInvalidInput
		}
	}
	writeJSON(w, status, errorBody{Error: errorDetail{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: RequestID(r.Context()),
	}})
}

// statusFor maps error codes onto HTTP statuses.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidOperation:
		return http.StatusConflict
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
