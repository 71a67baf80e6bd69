package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/textscanner/internal/domain"
)

const (
	msgTextRequired       = "Text is required"
	msgExplanationFailed  = "Failed to get explanation"
	msgBodyTooLarge       = "Request body too large"
	defaultMaxRequestBody = 100 * 1024
)

// explainService defines the minimal interface needed by ExplainHandler.
type explainService interface {
	Explain(ctx context.Context, text string) (string, error)
}

// ExplainHandler serves POST /explain.
type ExplainHandler struct {
	svc          explainService
	log          *slog.Logger
	maxBodyBytes int64
	showDetails  bool
}

// NewExplainHandler creates an ExplainHandler. When showDetails is set the
// upstream error text is echoed to clients in "details".
func NewExplainHandler(svc explainService, logger *slog.Logger, maxBodyBytes int64, showDetails bool) *ExplainHandler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxRequestBody
	}
	return &ExplainHandler{
		svc:          svc,
		log:          logger.With("handler", "explain"),
		maxBodyBytes: maxBodyBytes,
		showDetails:  showDetails,
	}
}

type explainRequest struct {
	Text string `json:"text"`
}

type explainResponse struct {
	Explanation string `json:"explanation"`
}

// Explain handles POST /explain.
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)

	var req explainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, msgTextRequired)
		return
	}

	explanation, err := h.svc.Explain(r.Context(), req.Text)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, explainResponse{Explanation: explanation})
}

func (h *ExplainHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrValidation) {
		writeError(w, http.StatusBadRequest, msgTextRequired)
		return
	}

	h.log.ErrorContext(r.Context(), "explanation failed", slog.String("error", err.Error()))

	resp := errorResponse{Error: msgExplanationFailed}
	if h.showDetails {
		resp.Details = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}
