// Package function serves word-search generation over HTTP for the Cloud
// Functions entrypoint.
package function

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"crosswarped.com/wordsearch"
	"crosswarped.com/wordsearch/internal/config"
	"crosswarped.com/wordsearch/internal/wordbank"
	"crosswarped.com/wordsearch/pkg/primitives"
)

type GenerateGridRequest struct {
	Words       []string `json:"words"`
	WordScope   string   `json:"wordScope"`
	Width       int      `json:"width" validate:"omitempty,gte=1,lte=64"`
	Height      int      `json:"height" validate:"omitempty,gte=1,lte=64"`
	MaxAttempts int      `json:"maxAttempts" validate:"omitempty,gte=1,lte=10000"`
	Seed        *uint64  `json:"seed"`
	Fill        *bool    `json:"fill"`
	Count       int      `json:"count" validate:"omitempty,gte=1,lte=10"`
}

type PlacementResponse struct {
	Word      string               `json:"word"`
	Start     primitives.Position  `json:"start"`
	End       primitives.Position  `json:"end"`
	Direction primitives.Direction `json:"direction"`
}

type PuzzleResponse struct {
	ID         string              `json:"id"`
	Seed       uint64              `json:"seed"`
	Grid       string              `json:"grid"`
	Rows       []string            `json:"rows"`
	Placements []PlacementResponse `json:"placements"`
	Attempts   int                 `json:"attempts"`
}

type GenerateGridResponse struct {
	Success bool             `json:"success"`
	Puzzles []PuzzleResponse `json:"puzzles,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// Handler serves POST /generate-grid.
type Handler struct {
	cfg     config.Config
	source  wordbank.Source
	logger  *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer

	validate *validator.Validate
	newID    func() string
}

// New builds a handler. source may be nil, in which case requests that name
// a wordScope are rejected.
func New(cfg config.Config, source wordbank.Source, logger *zap.Logger, metrics *Metrics) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		cfg:      cfg,
		source:   source,
		logger:   logger,
		metrics:  metrics,
		tracer:   otel.Tracer("crosswarped.com/wordsearch/internal/function"),
		validate: validator.New(),
		newID:    func() string { return uuid.NewString() },
	}
}

// Register adds the handler to mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.Handle("/generate-grid", h)
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	var req GenerateGridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	puzzles, err := h.execute(r.Context(), req)
	if err != nil {
		h.writeError(w, statusFor(err), err)
		return
	}

	h.observe("success")
	h.writeJSON(w, http.StatusOK, GenerateGridResponse{Success: true, Puzzles: puzzles})
}

func (h *Handler) execute(ctx context.Context, req GenerateGridRequest) ([]PuzzleResponse, error) {
	ctx, span := h.tracer.Start(ctx, "GenerateGrid")
	defer span.End()

	params, count, err := h.params(req)
	if err != nil {
		return nil, err
	}

	// Blank request words are kept so that validation reports them.
	bank := make([]string, 0, len(req.Words))
	for _, w := range req.Words {
		bank = append(bank, wordsearch.NormalizeWord(w))
	}
	if req.WordScope != "" {
		if h.source == nil {
			return nil, &requestError{msg: "wordScope is not supported by this deployment"}
		}
		scoped, err := h.source.Words(ctx, req.WordScope)
		if err != nil {
			return nil, fmt.Errorf("load word scope %q: %w", req.WordScope, err)
		}
		h.logger.Debug("loaded word scope", zap.String("scope", req.WordScope), zap.Int("words", len(scoped)))
		bank = append(bank, scoped...)
	}
	if len(bank) == 0 {
		return nil, &requestError{msg: "words must not be empty"}
	}
	params.Bank = bank

	span.SetAttributes(
		attribute.Int("wordsearch.width", params.Width),
		attribute.Int("wordsearch.height", params.Height),
		attribute.Int("wordsearch.bank_size", len(bank)),
		attribute.Int("wordsearch.count", count),
	)

	// Each puzzle has its own grid and random source, so they are independent.
	out := make([]PuzzleResponse, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range count {
		p := params
		seed := *params.Seed + uint64(i)
		p.Seed = &seed
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			puzzle, err := wordsearch.Generate(p)
			if err != nil {
				return err
			}
			if err := wordsearch.Verify(puzzle.Solution(), puzzle.Placements, true); err != nil {
				return fmt.Errorf("self-check failed for seed %d: %w", seed, err)
			}
			if h.metrics != nil {
				h.metrics.attempts.Observe(float64(puzzle.Stats.Attempts))
				h.metrics.duration.Observe(puzzle.Stats.Duration.Seconds())
			}
			out[i] = h.toResponse(puzzle)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	h.logger.Info("generated puzzles",
		zap.Int("count", count),
		zap.Int("width", params.Width),
		zap.Int("height", params.Height),
		zap.Int("words", len(bank)),
		zap.Uint64("seed", *params.Seed),
	)
	return out, nil
}

// params merges the request with configured defaults.
func (h *Handler) params(req GenerateGridRequest) (wordsearch.GenerateParams, int, error) {
	def := h.cfg.Generator
	p := wordsearch.GenerateParams{
		Width:       def.Width,
		Height:      def.Height,
		MaxAttempts: def.MaxAttempts,
		Fill:        def.Fill,
		Deduplicate: def.Deduplicate,
		Seed:        req.Seed,
	}
	if req.Width > 0 {
		p.Width = req.Width
	}
	if req.Height > 0 {
		p.Height = req.Height
	}
	if req.MaxAttempts > 0 {
		p.MaxAttempts = req.MaxAttempts
	}
	if req.Fill != nil {
		p.Fill = *req.Fill
	}
	if p.Seed == nil {
		seed := uint64(uuid.New().ID())
		p.Seed = &seed
	}

	count := 1
	if req.Count > 0 {
		count = req.Count
	}
	if limit := h.cfg.Function.MaxPuzzles; limit > 0 && count > limit {
		return p, 0, &requestError{msg: fmt.Sprintf("count must be at most %d", limit)}
	}
	return p, count, nil
}

func (h *Handler) toResponse(p *wordsearch.Puzzle) PuzzleResponse {
	placements := make([]PlacementResponse, len(p.Placements))
	for i, pl := range p.Placements {
		placements[i] = PlacementResponse{
			Word:      pl.Word,
			Start:     pl.Start,
			End:       pl.End(),
			Direction: pl.Direction,
		}
	}
	return PuzzleResponse{
		ID:         h.newID(),
		Seed:       p.Seed,
		Grid:       p.Grid.Repr(),
		Rows:       p.Grid.Rows(),
		Placements: placements,
		Attempts:   p.Stats.Attempts,
	}
}

type requestError struct {
	msg string
}

func (e *requestError) Error() string {
	return e.msg
}

func statusFor(err error) int {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	switch wordsearch.KindOf(err) {
	case wordsearch.KindInvalidDimensions, wordsearch.KindInvalidWord:
		return http.StatusBadRequest
	case wordsearch.KindPlacement:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func outcomeFor(status int) string {
	switch {
	case status == http.StatusUnprocessableEntity:
		return "exhausted"
	case status >= 500:
		return "error"
	default:
		return "rejected"
	}
}

func (h *Handler) observe(outcome string) {
	if h.metrics != nil {
		h.metrics.observeRequest(outcome)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.observe(outcomeFor(status))
	if status >= 500 {
		h.logger.Error("generate failed", zap.Error(err))
	} else {
		h.logger.Info("generate rejected", zap.Int("status", status), zap.Error(err))
	}
	h.writeJSON(w, status, GenerateGridResponse{Success: false, Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, resp GenerateGridResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}
