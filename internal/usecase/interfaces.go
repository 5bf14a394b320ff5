package usecase

import (
	"context"

	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/partner"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/supabase"
)

// SessionAPI é a fatia da API de auth que o fluxo de SSO usa.
type SessionAPI interface {
	SetSession(ctx context.Context, accessToken, refreshToken string) (*supabase.Session, error)
}

// AuthAdminAPI é a fatia admin usada pela limpeza de dados de teste.
type AuthAdminAPI interface {
	DeleteAuthUser(ctx context.Context, userID string) error
}

// PartnerSync é o callout de sincronização de pagamento com o parceiro.
type PartnerSync interface {
	SyncPayment(ctx context.Context, input partner.SyncPaymentInput) error
}

// GeoLookup resolve a localização de um IP. Best-effort: devolve vazio em
// qualquer falha, nunca erro.
type GeoLookup interface {
	Lookup(ctx context.Context, ip string) string
}
