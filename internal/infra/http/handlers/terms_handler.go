package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

type TermsHandler struct {
	AcceptTermsUC *usecase.AcceptTermsUseCase
}

func NewTermsHandler(uc *usecase.AcceptTermsUseCase) *TermsHandler {
	return &TermsHandler{AcceptTermsUC: uc}
}

// HandleAccept (POST /terms/accept)
// O IP do cliente entra na trilha de auditoria; a geolocalização é
// best-effort e pode ir vazia.
func (h *TermsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var input usecase.AcceptTermsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	input.ClientIP = getClientIP(r)

	output, err := h.AcceptTermsUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case isValidationError(err):
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		case usecase.IsDomainError(err):
			writeErrorResponse(w, http.StatusBadRequest, err.(*usecase.DomainError).Code, err.Error())
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
