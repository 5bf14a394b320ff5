package entity

import (
	"context"
	"time"
)

// Status de pagamento exibidos no dashboard. O campo é texto livre no banco,
// mas só esse conjunto participa da classificação.
const (
	StatusPago                     = "Pago"
	StatusPendente                 = "Pendente"
	StatusPendenteStripe           = "Pendente (Stripe)"
	StatusPendenteInfinitePay      = "Pendente (InfinitePay)"
	StatusNaoPagou                 = "Não pagou"
	StatusRedirecionadoInfinitePay = "Redirecionado (InfinitePay)"
)

type Lead struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	Phone            string     `json:"phone,omitempty"`
	StatusPagamento  string     `json:"status_pagamento"`
	IsConfirmadoPago bool       `json:"is_confirmado_pago"`
	UserID           string     `json:"user_id,omitempty"` // ID no Supabase Auth, se o lead já criou conta
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	LastEmailSentAt  *time.Time `json:"last_email_sent_at,omitempty"`
}

type LeadRepositoryInterface interface {
	ListAll(ctx context.Context) ([]Lead, error)
	FindByID(ctx context.Context, id string) (*Lead, error)
	FindByEmailPattern(ctx context.Context, pattern string) ([]Lead, error)
	MarkPaymentConfirmed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
