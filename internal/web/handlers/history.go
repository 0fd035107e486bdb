package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jusunglee/cyrtranslit/internal/db"
	"github.com/jusunglee/cyrtranslit/internal/metrics"
	"github.com/jusunglee/cyrtranslit/internal/transliteration"
	"github.com/samber/lo"
)

type HistoryHandler struct {
	repo db.Repository
	log  *slog.Logger
}

func NewHistoryHandler(repo db.Repository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, log: log}
}

type conversionResponse struct {
	ID        int64  `json:"id"`
	Standard  string `json:"standard"`
	Direction string `json:"direction"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	CreatedAt string `json:"created_at"`
}

type listResponse struct {
	Data       []conversionResponse `json:"data"`
	Pagination paginationMeta       `json:"pagination"`
}

func toConversionResponse(c db.Conversion, _ int) conversionResponse {
	return conversionResponse{
		ID:        c.ID,
		Standard:  c.Standard,
		Direction: c.Direction,
		Input:     c.Input,
		Output:    c.Output,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	standard := r.URL.Query().Get("standard")
	if standard != "" {
		std, err := transliteration.ParseStandard(standard)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		standard = string(std)
	}
	page, limit, offset := pageParams(r)

	total, err := h.repo.CountConversions(r.Context(), standard)
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	conversions, err := h.repo.ListConversions(r.Context(), db.ListConversionsParams{
		Standard: standard,
		Limit:    int32(limit),
		Offset:   int32(offset),
	})
	if err != nil {
		h.log.ErrorContext(r.Context(), "listing conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		Data: lo.Map(conversions, toConversionResponse),
		Pagination: paginationMeta{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

func (h *HistoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	c, err := h.repo.GetConversion(r.Context(), id)
	if err != nil {
		if db.IsNoRows(err) {
			writeError(w, http.StatusNotFound, "conversion not found")
			return
		}
		h.log.ErrorContext(r.Context(), "getting conversion", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toConversionResponse(c, 0))
}

type statsResponse struct {
	Data  map[string]int64 `json:"data"`
	Total int64            `json:"total"`
}

func (h *HistoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.repo.CountConversionsByStandard(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "counting conversions by standard", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		Data: lo.SliceToMap(counts, func(c db.StandardCount) (string, int64) {
			return c.Standard, c.Count
		}),
		Total: lo.SumBy(counts, func(c db.StandardCount) int64 { return c.Count }),
	})
}

// Prune deletes history older than the RFC 3339 "before" query value.
func (h *HistoryHandler) Prune(w http.ResponseWriter, r *http.Request) {
	before, err := time.Parse(time.RFC3339, r.URL.Query().Get("before"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "before must be an RFC 3339 timestamp")
		return
	}

	deleted, err := h.repo.DeleteConversionsBefore(r.Context(), before)
	if err != nil {
		h.log.ErrorContext(r.Context(), "pruning conversions", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.HistoryPruned.Add(float64(deleted))

	h.log.InfoContext(r.Context(), "pruned conversion history", "before", before, "deleted", deleted)
	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
