package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AmericanDreamdev/american-dream-api/internal/infra/http/middleware"
	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

type PaymentHandler struct {
	CreatePaymentUC *usecase.CreatePaymentUseCase
}

func NewPaymentHandler(uc *usecase.CreatePaymentUseCase) *PaymentHandler {
	return &PaymentHandler{CreatePaymentUC: uc}
}

// HandleCreateForProof (POST /functions/create-payment-for-proof)
// Idempotente: repetir o mesmo (lead_id, term_acceptance_id) devolve o mesmo
// payment_id.
func (h *PaymentHandler) HandleCreateForProof(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePaymentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CreatePaymentUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case isValidationError(err):
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
		case usecase.IsDomainError(err):
			writeErrorResponse(w, http.StatusBadRequest, err.(*usecase.DomainError).Code, err.Error())
		default:
			middleware.RecordIntegrationError("payment")
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	middleware.RecordPaymentCreated()
	writeJSON(w, http.StatusOK, output)
}

func isValidationError(err error) bool {
	_, ok := err.(usecase.ValidationError)
	return ok
}
