package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type TermAcceptance struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead_id"`
	ContractURL string    `json:"contract_url,omitempty"`
	ClientIP    string    `json:"client_ip,omitempty"`
	ClientGeo   string    `json:"client_geo,omitempty"` // cidade/país, preenchido best-effort
	AcceptedAt  time.Time `json:"accepted_at"`
}

type TermAcceptanceRepositoryInterface interface {
	Create(ctx context.Context, t *TermAcceptance) error
	FindByID(ctx context.Context, id string) (*TermAcceptance, error)
	DeleteByLeadID(ctx context.Context, leadID string) (int, error)
}

func NewTermAcceptance(leadID, contractURL, clientIP, clientGeo string) *TermAcceptance {
	return &TermAcceptance{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		ContractURL: contractURL,
		ClientIP:    clientIP,
		ClientGeo:   clientGeo,
		AcceptedAt:  time.Now(),
	}
}
