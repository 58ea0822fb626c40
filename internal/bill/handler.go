package bill

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warikango/warikan/internal/report"
	"github.com/warikango/warikan/pkg/response"
)

// Handler handles HTTP requests for bill operations
type Handler struct {
	service *Service
}

// NewHandler creates a new bill handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for bill endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/split", h.Split)
	r.Post("/report", h.TextReport)

	return r
}

// Split handles POST /bills/split
// @Summary      Split a bill
// @Description  Compute per-person payments rounded to ten cents, reconciled so they sum exactly to the rounded bill total
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        request body SplitRequest true "Bill to split"
// @Success      200 {object} response.APIResponse{data=ReportResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /bills/split [post]
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rep, err := h.service.SplitBill(r.Context(), &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.JSON(w, http.StatusOK, rep.ToResponse())
}

// TextReport handles POST /bills/report
// @Summary      Render a bill report
// @Description  Compute the split and render it as a fixed-layout text report
// @Tags         bills
// @Accept       json
// @Produce      plain
// @Param        request body SplitRequest true "Bill to split"
// @Success      200 {string} string "text report"
// @Failure      400 {object} response.APIResponse
// @Router       /bills/report [post]
func (h *Handler) TextReport(w http.ResponseWriter, r *http.Request) {
	var req SplitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	rep, err := h.service.SplitBill(r.Context(), &req)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	report.WriteText(w, rep.ToResponse().Bill)
}
