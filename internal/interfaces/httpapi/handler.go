package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/riskibarqy/football-scores/internal/platform/logging"
	"github.com/riskibarqy/football-scores/internal/usecase"
)

type Handler struct {
	scoresService *usecase.ScoresService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(scoresService *usecase.ScoresService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		scoresService: scoresService,
		logger:        logger,
		validator:     validator.New(),
	}
}

type matchesQuery struct {
	League     string `validate:"omitempty,max=64"`
	DateOffset int    `validate:"gte=-7,lte=7"`
}

type overviewQuery struct {
	League     string `validate:"required,max=64"`
	DateOffset int    `validate:"gte=-7,lte=7"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues := h.scoresService.Registry().Leagues()
	items := make([]leagueDTO, 0, len(leagues))
	for _, item := range leagues {
		items = append(items, leagueToDTO(item))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	offset, err := parseDateOffset(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := matchesQuery{
		League:     strings.TrimSpace(r.URL.Query().Get("league")),
		DateOffset: offset,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.scoresService.Matches(ctx, usecase.MatchQuery{
		League:     query.League,
		DateOffset: query.DateOffset,
	})
	if err != nil {
		h.logFailure(ctx, "list matches failed", err, "league", query.League, "date_offset", query.DateOffset)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(result))
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueTable")
	defer span.End()

	leagueName := mux.Vars(r)["league"]
	result, err := h.scoresService.Table(ctx, leagueName)
	if err != nil {
		h.logFailure(ctx, "get league table failed", err, "league", leagueName)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, tableToDTO(result))
}

func (h *Handler) GetLeagueOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueOverview")
	defer span.End()

	offset, err := parseDateOffset(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := overviewQuery{League: mux.Vars(r)["league"], DateOffset: offset}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.scoresService.Overview(ctx, query.League, query.DateOffset)
	if err != nil {
		h.logFailure(ctx, "get league overview failed", err, "league", query.League, "date_offset", query.DateOffset)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// logFailure keeps expected outcomes such as unknown leagues out of the error log.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
		return
	}
	h.logger.InfoContext(ctx, msg, args...)
}

func parseDateOffset(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date_offset"))
	if raw == "" {
		return 0, nil
	}
	offset, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: date_offset must be an integer", usecase.ErrInvalidInput)
	}
	return offset, nil
}
