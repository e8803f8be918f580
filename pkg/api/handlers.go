package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/gridpush/gridpush/pkg/board"
	"github.com/gridpush/gridpush/pkg/buildinfo"
	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/grid"
	"github.com/gridpush/gridpush/pkg/observability"
	"github.com/gridpush/gridpush/pkg/ops"
	"github.com/gridpush/gridpush/pkg/render"
)

// =============================================================================
// Health
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// =============================================================================
// Boards - CRUD
// =============================================================================

type createBoardRequest struct {
	Name               string `json:"name"`
	Columns            int    `json:"columns,omitempty"`
	MaxComponentHeight int    `json:"maxComponentHeight,omitempty"`
}

func (s *Server) handleListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := s.store.List(r.Context())
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeStore, err, "list boards"))
		return
	}
	if boards == nil {
		boards = []*board.Board{}
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"boards": boards})
}

func (s *Server) handleCreateBoard(w http.ResponseWriter, r *http.Request) {
	var req createBoardRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := errors.ValidateBoardName(req.Name); err != nil {
		s.respondError(w, r, err)
		return
	}

	b := board.New(req.Name)
	b.Columns = req.Columns
	b.MaxComponentHeight = req.MaxComponentHeight

	if err := s.store.Put(r.Context(), b); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeStore, err, "store board"))
		return
	}
	s.logger.Info("board created", "board", b.ID, "name", b.Name)
	s.respondJSON(w, http.StatusCreated, b)
}

func (s *Server) handleGetBoard(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, b)
}

func (s *Server) handleDeleteBoard(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "boardID")
	unlock := s.locks.lock(id)
	defer unlock()

	if err := s.store.Delete(r.Context(), id); err != nil {
		s.respondError(w, r, err)
		return
	}
	s.logger.Info("board deleted", "board", id)
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Boards - Operations
// =============================================================================

type applyResponse struct {
	Board   *board.Board `json:"board"`
	Applied int          `json:"applied"`
}

// handleApplyOps applies one operation or a batch to a board. The batch is
// all-or-nothing: a rejection leaves the stored board untouched and reports
// the rejection code with 409.
func (s *Server) handleApplyOps(w http.ResponseWriter, r *http.Request) {
	batch, err := s.decodeOps(w, r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	id := chi.URLParam(r, "boardID")
	unlock := s.locks.lock(id)
	defer unlock()

	b, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	runner := ops.NewRunner(grid.New(b.Config()), s.logger)
	res, err := runner.ApplyAll(r.Context(), b.ID, b.Components, batch)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	b.Components = res.Layout
	b.Touch()
	if err := s.store.Put(r.Context(), b); err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeStore, err, "store board"))
		return
	}
	s.respondJSON(w, http.StatusOK, applyResponse{Board: b, Applied: res.Applied})
}

// decodeOps accepts either a single operation object or an array of them.
func (s *Server) decodeOps(w http.ResponseWriter, r *http.Request) ([]ops.Op, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}

	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
		batch, err := ops.UnmarshalOps(trimmed)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidOperation, err, "decode operations")
		}
		return batch, nil
	}

	var op ops.Op
	if err := json.Unmarshal(data, &op); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidOperation, err, "decode operation")
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}
	return []ops.Op{op}, nil
}

// =============================================================================
// Boards - Validation
// =============================================================================

type violationsResponse struct {
	Valid      bool             `json:"valid"`
	Violations []grid.Violation `json:"violations"`
}

func (s *Server) handleViolations(w http.ResponseWriter, r *http.Request) {
	b, err := s.store.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	runner := ops.NewRunner(grid.New(b.Config()), s.logger)
	violations := runner.Validate(r.Context(), b.ID, b.Components)
	if violations == nil {
		violations = []grid.Violation{}
	}
	s.respondJSON(w, http.StatusOK, violationsResponse{
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

// =============================================================================
// Boards - Rendering
// =============================================================================

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptsFromQuery(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	b, err := s.store.Get(r.Context(), chi.URLParam(r, "boardID"))
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	doc, err := board.MarshalBoard(b)
	if err != nil {
		s.respondError(w, r, errors.Wrap(errors.ErrCodeRender, err, "hash board"))
		return
	}
	boardHash := cache.Hash(doc)
	etag := `"` + boardHash + `"`
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	key := s.keyer.RenderKey(boardHash, opts.KeyOpts())
	if data, ok, err := s.cache.Get(r.Context(), key); err == nil && ok {
		observability.Cache().OnCacheHit(r.Context(), "render")
		s.serveArtifact(w, opts.Format, etag, data)
		return
	}
	observability.Cache().OnCacheMiss(r.Context(), "render")

	data, err := render.Render(r.Context(), b, opts)
	if err != nil {
		s.respondError(w, r, err)
		return
	}

	if err := s.cache.Set(r.Context(), key, data, cache.TTLRender); err != nil {
		s.logger.Warn("cache render artifact", "board", b.ID, "err", err)
	} else {
		observability.Cache().OnCacheSet(r.Context(), "render", len(data))
	}
	s.serveArtifact(w, opts.Format, etag, data)
}

func (s *Server) serveArtifact(w http.ResponseWriter, format, etag string, data []byte) {
	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		s.logger.Error("write artifact", "err", err)
	}
}

func contentTypeFor(format string) string {
	switch format {
	case render.FormatSVG:
		return "image/svg+xml"
	case render.FormatPNG:
		return "image/png"
	case render.FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/json"
	}
}

func renderOptsFromQuery(r *http.Request) (render.Options, error) {
	q := r.URL.Query()
	opts := render.Options{Format: q.Get("format")}

	var err error
	if opts.CellSize, err = intParam(q.Get("cellSize")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "cellSize")
	}
	if opts.MinRows, err = intParam(q.Get("minRows")); err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "minRows")
	}
	if raw := q.Get("showGrid"); raw != "" {
		if opts.ShowGrid, err = strconv.ParseBool(raw); err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "showGrid")
		}
	}

	return opts, opts.ValidateAndSetDefaults()
}

func intParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// =============================================================================
// Migration
// =============================================================================

type migrateRequest struct {
	Rows    [][]board.LegacyComponent `json:"rows"`
	Columns int                       `json:"columns,omitempty"`
}

type migrateResponse struct {
	Columns    int              `json:"columns"`
	Components []grid.Component `json:"components"`
	Violations []grid.Violation `json:"violations"`
}

// handleMigrate converts a legacy row document into components. It is
// stateless: the caller decides whether to create a board from the result.
// The validator report is included because migrated documents are the main
// source of illegal layouts.
func (s *Server) handleMigrate(w http.ResponseWriter, r *http.Request) {
	var req migrateRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}

	engine := grid.New(grid.Config{Columns: req.Columns})
	components := board.FromLegacyRows(req.Rows, engine.Columns())
	if components == nil {
		components = []grid.Component{}
	}
	violations := engine.Validate(components)
	if violations == nil {
		violations = []grid.Violation{}
	}

	s.logger.Info("legacy document migrated",
		"rows", len(req.Rows), "components", len(components), "violations", len(violations))
	s.respondJSON(w, http.StatusOK, migrateResponse{
		Columns:    engine.Columns(),
		Components: components,
		Violations: violations,
	})
}

// =============================================================================
// Request Decoding
// =============================================================================

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
