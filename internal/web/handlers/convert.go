package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jusunglee/cyrtranslit/internal/db"
	"github.com/jusunglee/cyrtranslit/internal/metrics"
	"github.com/jusunglee/cyrtranslit/internal/transliteration"
)

const maxBodyBytes = 1 << 20

type ConvertHandler struct {
	repo db.Repository
	log  *slog.Logger
}

// NewConvertHandler builds the conversion endpoints. repo may be nil, in
// which case nothing is recorded.
func NewConvertHandler(repo db.Repository, log *slog.Logger) *ConvertHandler {
	return &ConvertHandler{repo: repo, log: log}
}

type standardsResponse struct {
	Data []transliteration.Info `json:"data"`
}

func (h *ConvertHandler) Standards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, standardsResponse{Data: transliteration.Standards()})
}

type convertRequest struct {
	Text      string `json:"text"`
	Standard  string `json:"standard"`
	Direction string `json:"direction"`
}

type convertResponse struct {
	ID        int64  `json:"id,omitempty"`
	Standard  string `json:"standard"`
	Direction string `json:"direction"`
	Result    string `json:"result"`
}

func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Standard == "" {
		writeError(w, http.StatusBadRequest, "standard is required")
		return
	}
	std, err := transliteration.ParseStandard(req.Standard)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	dir, err := transliteration.ParseDirection(req.Direction)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tr := transliteration.MustNew(std)
	metrics.ConversionInputBytes.WithLabelValues(string(std)).Observe(float64(len(req.Text)))

	result, err := tr.ConvertDirection(req.Text, dir)
	if errors.Is(err, transliteration.ErrUnsupportedDirection) {
		metrics.ConversionsTotal.WithLabelValues(string(std), string(dir), "unsupported").Inc()
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "converting text", "standard", std, "direction", dir, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	metrics.ConversionsTotal.WithLabelValues(string(std), string(dir), "ok").Inc()

	resp := convertResponse{
		Standard:  string(std),
		Direction: string(dir),
		Result:    result,
	}

	if h.repo != nil {
		saved, err := h.repo.CreateConversion(r.Context(), db.CreateConversionParams{
			Standard:  string(std),
			Direction: string(dir),
			Input:     req.Text,
			Output:    result,
		})
		if err != nil {
			// the conversion itself succeeded; history is best effort
			h.log.WarnContext(r.Context(), "recording conversion", "standard", std, "error", err)
		} else {
			resp.ID = saved.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}
