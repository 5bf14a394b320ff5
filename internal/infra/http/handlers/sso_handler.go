package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/AmericanDreamdev/american-dream-api/internal/infra/http/middleware"
	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

// Delays que o front usa antes de redirecionar para a home em caso de erro.
// Token ausente redireciona rápido; erro da API de sessão dá mais tempo para o
// usuário ler a mensagem.
const (
	MissingTokenRedirectDelay = 2 * time.Second
	ErrorRedirectDelay        = 5 * time.Second
)

type SSOHandler struct {
	UC          *usecase.EstablishSessionUseCase
	RedirectURL string
	rateLimiter *RateLimiter

	// Configuráveis para teste; zero usa os defaults acima.
	MissingTokenDelay time.Duration
	ErrorDelay        time.Duration
}

func NewSSOHandler(uc *usecase.EstablishSessionUseCase, redirectURL string) *SSOHandler {
	return &SSOHandler{
		UC:                uc,
		RedirectURL:       redirectURL,
		rateLimiter:       NewRateLimiter(20, time.Minute), // 20 req/min por IP
		MissingTokenDelay: MissingTokenRedirectDelay,
		ErrorDelay:        ErrorRedirectDelay,
	}
}

type SSOErrorResponse struct {
	Error                string  `json:"error"`
	Message              string  `json:"message"`
	RedirectURL          string  `json:"redirect_url"`
	RedirectAfterSeconds float64 `json:"redirect_after_seconds"`
}

// HandleCallback (GET /auth/callback?token=...)
// Uma tentativa por chamada, sem retry. O token segue bruto para a API de
// auth; erros viram um payload com destino e delay de redirect.
func (h *SSOHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeErrorResponse(w, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests. Please try again later.")
		return
	}

	token := r.URL.Query().Get("token")

	session, err := h.UC.Execute(r.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrTokenMissing) {
			middleware.RecordSSOAttempt("missing_token")
			writeJSON(w, http.StatusBadRequest, SSOErrorResponse{
				Error:                "TOKEN_MISSING",
				Message:              "token não informado",
				RedirectURL:          h.RedirectURL,
				RedirectAfterSeconds: h.MissingTokenDelay.Seconds(),
			})
			return
		}

		middleware.RecordSSOAttempt("error")
		message := "não foi possível estabelecer a sessão"
		if err.Error() != "" {
			message = err.Error()
		}
		writeJSON(w, http.StatusUnauthorized, SSOErrorResponse{
			Error:                "SESSION_FAILED",
			Message:              message,
			RedirectURL:          h.RedirectURL,
			RedirectAfterSeconds: h.ErrorDelay.Seconds(),
		})
		return
	}

	middleware.RecordSSOAttempt("success")
	writeJSON(w, http.StatusOK, map[string]any{"session": session})
}
