package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type TermAcceptanceRepository struct {
	DB *sql.DB
}

func NewTermAcceptanceRepository(db *sql.DB) *TermAcceptanceRepository {
	return &TermAcceptanceRepository{DB: db}
}

func (r *TermAcceptanceRepository) Create(ctx context.Context, t *entity.TermAcceptance) error {
	query := `
		INSERT INTO term_acceptances (
			id, lead_id, contract_url, client_ip, client_geo, accepted_at
		) VALUES (
			$1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6
		)
	`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		t.ID,
		t.LeadID,
		t.ContractURL,
		t.ClientIP,
		t.ClientGeo,
		t.AcceptedAt,
	)
	if err != nil {
		return fmt.Errorf("erro ao registrar aceite de contrato: %w", err)
	}
	return nil
}

func (r *TermAcceptanceRepository) FindByID(ctx context.Context, id string) (*entity.TermAcceptance, error) {
	query := `
		SELECT
			id,
			lead_id,
			COALESCE(contract_url, ''),
			COALESCE(client_ip, ''),
			COALESCE(client_geo, ''),
			accepted_at
		FROM term_acceptances
		WHERE id = $1
	`

	var t entity.TermAcceptance
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.LeadID,
		&t.ContractURL,
		&t.ClientIP,
		&t.ClientGeo,
		&t.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TermAcceptanceRepository) DeleteByLeadID(ctx context.Context, leadID string) (int, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM term_acceptances WHERE lead_id = $1`, leadID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}
