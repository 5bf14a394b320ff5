package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type PaymentRepository struct {
	DB *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// Create insere o pagamento. A tabela tem unique em (lead_id,
// term_acceptance_id); violação vira ErrPaymentAlreadyExists para o usecase
// tratar como "já existe" em vez de erro técnico.
func (r *PaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	query := `
		INSERT INTO payments (
			id,
			lead_id,
			term_acceptance_id,
			amount,
			currency,
			payment_method,
			status,
			stripe_session_id,
			stripe_payment_intent_id,
			created_at,
			updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			NULLIF($8, ''),
			NULLIF($9, ''),
			$10, $11
		)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		p.ID,
		p.LeadID,
		p.TermAcceptanceID,
		p.Amount,
		p.Currency,
		p.PaymentMethod,
		p.Status,
		p.StripeSessionID,
		p.StripePaymentIntentID,
		p.CreatedAt,
		p.UpdatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return entity.ErrPaymentAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("erro ao criar pagamento: %w", err)
	}
	return nil
}

func (r *PaymentRepository) FindByLeadAndAcceptance(ctx context.Context, leadID, termAcceptanceID string) (*entity.Payment, error) {
	query := `
		SELECT
			id,
			lead_id,
			term_acceptance_id,
			amount,
			currency,
			payment_method,
			status,
			COALESCE(stripe_session_id, ''),
			COALESCE(stripe_payment_intent_id, ''),
			created_at,
			updated_at
		FROM payments
		WHERE lead_id = $1 AND term_acceptance_id = $2
		ORDER BY created_at
		LIMIT 1
	`

	var p entity.Payment
	err := r.DB.QueryRowContext(ctx, query, leadID, termAcceptanceID).Scan(
		&p.ID,
		&p.LeadID,
		&p.TermAcceptanceID,
		&p.Amount,
		&p.Currency,
		&p.PaymentMethod,
		&p.Status,
		&p.StripeSessionID,
		&p.StripePaymentIntentID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) DeleteByLeadID(ctx context.Context, leadID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM payments WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
