package usecase

import (
	"context"
	"log"

	"github.com/AmericanDreamdev/american-dream-api/internal/auth"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/supabase"
)

type EstablishSessionUseCase struct {
	Sessions SessionAPI
}

func NewEstablishSessionUseCase(sessions SessionAPI) *EstablishSessionUseCase {
	return &EstablishSessionUseCase{Sessions: sessions}
}

// Execute troca o token de SSO por uma sessão. O token vai BRUTO para a API de
// auth: a decodificação local é só diagnóstico e não participa da decisão.
// Token ausente falha na hora, sem chamada de rede.
func (uc *EstablishSessionUseCase) Execute(ctx context.Context, token string) (*supabase.Session, error) {
	if token == "" {
		return nil, ErrTokenMissing
	}

	// Log advisory de quem está chegando. Falha de decode não bloqueia nada.
	if identity, ok := auth.ExtractIdentity(token); ok {
		log.Printf("🔑 [SSO] Tentativa de sessão para sub=%s email=%s", identity.Subject, identity.Email)
	}

	// Refresh token vazio de propósito: a API deriva a sessão do access token.
	session, err := uc.Sessions.SetSession(ctx, token, "")
	if err != nil {
		log.Printf("❌ [SSO] API de sessão recusou o token: %v", err)
		return nil, &TechnicalError{Code: "SESSION_FAILED", Message: err.Error()}
	}
	if session == nil {
		return nil, &TechnicalError{Code: "SESSION_FAILED", Message: "não foi possível estabelecer a sessão"}
	}

	return session, nil
}
