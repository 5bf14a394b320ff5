package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

type AcceptTermsUseCase struct {
	TermRepo entity.TermAcceptanceRepositoryInterface
	LeadRepo entity.LeadRepositoryInterface
	Geo      GeoLookup
}

func NewAcceptTermsUseCase(
	termRepo entity.TermAcceptanceRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	geo GeoLookup,
) *AcceptTermsUseCase {
	return &AcceptTermsUseCase{
		TermRepo: termRepo,
		LeadRepo: leadRepo,
		Geo:      geo,
	}
}

// Execute registra o aceite do contrato com trilha de auditoria. A localização
// do IP é best-effort: vazio entra no registro quando o lookup falha.
func (uc *AcceptTermsUseCase) Execute(ctx context.Context, input AcceptTermsInput) (*AcceptTermsOutput, error) {
	if errs := ValidateAcceptTermsInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead não encontrado"}
	}

	geo := ""
	if uc.Geo != nil {
		geo = uc.Geo.Lookup(ctx, input.ClientIP)
	}

	acceptance := entity.NewTermAcceptance(lead.ID, input.ContractURL, input.ClientIP, geo)

	if err := uc.TermRepo.Create(ctx, acceptance); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: fmt.Sprintf("erro ao registrar aceite: %v", err)}
	}

	log.Printf("✅ [TERMS] Aceite %s registrado para lead %s (ip=%s geo=%q)", acceptance.ID, lead.ID, input.ClientIP, geo)
	return &AcceptTermsOutput{TermAcceptanceID: acceptance.ID}, nil
}
