package handlers

import (
	"net/http"

	"github.com/AmericanDreamdev/american-dream-api/internal/dashboard"
	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type DashboardHandler struct {
	LeadRepo entity.LeadRepositoryInterface
}

func NewDashboardHandler(leadRepo entity.LeadRepositoryInterface) *DashboardHandler {
	return &DashboardHandler{LeadRepo: leadRepo}
}

type DashboardResponse struct {
	Leads []entity.Lead   `json:"leads"`
	Stats dashboard.Stats `json:"stats"`
}

// HandleListLeads (GET /dashboard/leads?search=&tab=)
// Carrega todos os leads e delega filtro + estatísticas ao motor puro.
func (h *DashboardHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	sel := dashboard.FilterSelection{
		Search: r.URL.Query().Get("search"),
		Tab:    dashboard.Tab(r.URL.Query().Get("tab")),
	}
	if sel.Tab == "" {
		sel.Tab = dashboard.TabAll
	}
	if !dashboard.ValidTab(sel.Tab) {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_TAB", "tab deve ser all, paid, pending ou not-paid")
		return
	}

	leads, err := h.LeadRepo.ListAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "erro ao carregar leads")
		return
	}

	filtered, stats := dashboard.FilterAndAggregate(leads, sel)

	writeJSON(w, http.StatusOK, DashboardResponse{
		Leads: filtered,
		Stats: stats,
	})
}
