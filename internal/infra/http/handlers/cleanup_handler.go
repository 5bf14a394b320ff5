package handlers

import (
	"net/http"

	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

type CleanupHandler struct {
	CleanupUC *usecase.CleanupTestUsersUseCase
}

func NewCleanupHandler(uc *usecase.CleanupTestUsersUseCase) *CleanupHandler {
	return &CleanupHandler{CleanupUC: uc}
}

// HandleCleanup (POST /functions/cleanup-test-users)
// Sem corpo. Apaga leads de teste pelo padrão fixo de email e reporta o que
// conseguiu remover.
func (h *CleanupHandler) HandleCleanup(w http.ResponseWriter, r *http.Request) {
	output, err := h.CleanupUC.Execute(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "CLEANUP_FAILED", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, output)
}
