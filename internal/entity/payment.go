package entity

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPaymentAlreadyExists = errors.New("payment already exists for this lead and acceptance")

type Payment struct {
	ID                    string    `json:"id"`
	LeadID                string    `json:"lead_id"`
	TermAcceptanceID      string    `json:"term_acceptance_id"`
	Amount                int       `json:"amount"` // Em centavos
	Currency              string    `json:"currency"`
	PaymentMethod         string    `json:"payment_method"`
	Status                string    `json:"status"` // PENDING, CONFIRMED
	StripeSessionID       string    `json:"stripe_session_id,omitempty"`
	StripePaymentIntentID string    `json:"stripe_payment_intent_id,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PaymentRepositoryInterface interface {
	Create(ctx context.Context, p *Payment) error
	FindByLeadAndAcceptance(ctx context.Context, leadID, termAcceptanceID string) (*Payment, error)
	DeleteByLeadID(ctx context.Context, leadID string) (int, error)
}

// NewPayment cria um pagamento confirmado por comprovante.
func NewPayment(leadID, termAcceptanceID string, amount int, currency, method string) *Payment {
	return &Payment{
		ID:               uuid.New().String(),
		LeadID:           leadID,
		TermAcceptanceID: termAcceptanceID,
		Amount:           amount,
		Currency:         currency,
		PaymentMethod:    method,
		Status:           "CONFIRMED",
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

// IsNotFound distingue "não existe" de erro real na checagem de idempotência.
func IsNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
