package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id,
	COALESCE(name, ''),
	COALESCE(email, ''),
	COALESCE(phone, ''),
	COALESCE(status_pagamento, ''),
	COALESCE(is_confirmado_pago, false),
	COALESCE(user_id::text, ''),
	created_at,
	updated_at,
	last_email_sent_at
`

// ListAll devolve todos os leads na ordem de captação (mais recente primeiro).
// O dashboard filtra e agrega em memória, então a ordem daqui é a que o
// usuário vê.
func (r *LeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads ORDER BY created_at DESC`, leadColumns)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar leads: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE id = $1`, leadColumns)

	var lead entity.Lead
	if err := scanLead(r.DB.QueryRowContext(ctx, query, id), &lead); err != nil {
		return nil, err
	}
	return &lead, nil
}

// FindByEmailPattern faz match por substring case-insensitive (ilike). Usado
// pela limpeza de usuários de teste.
func (r *LeadRepository) FindByEmailPattern(ctx context.Context, pattern string) ([]entity.Lead, error) {
	query := fmt.Sprintf(`SELECT %s FROM leads WHERE email ILIKE $1 ORDER BY created_at`, leadColumns)

	rows, err := r.DB.QueryContext(ctx, query, pattern)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar leads por padrão de email: %w", err)
	}
	defer rows.Close()

	return scanLeads(rows)
}

// MarkPaymentConfirmed marca o lead como pago. Mantém o invariante do
// dashboard: confirmado nunca cai no bucket "não pagou".
func (r *LeadRepository) MarkPaymentConfirmed(ctx context.Context, id string) error {
	query := `
		UPDATE leads
		SET is_confirmado_pago = true, status_pagamento = $1, updated_at = NOW()
		WHERE id = $2
	`
	_, err := r.DB.ExecContext(ctx, query, entity.StatusPago, id)
	if err != nil {
		return fmt.Errorf("erro ao confirmar pagamento do lead %s: %w", id, err)
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner, lead *entity.Lead) error {
	return row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.StatusPagamento,
		&lead.IsConfirmadoPago,
		&lead.UserID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&lead.LastEmailSentAt,
	)
}

func scanLeads(rows *sql.Rows) ([]entity.Lead, error) {
	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := scanLead(rows, &lead); err != nil {
			return nil, fmt.Errorf("erro ao ler lead: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
