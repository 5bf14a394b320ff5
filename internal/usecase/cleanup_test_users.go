package usecase

import (
	"context"
	"log"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
)

// TestEmailPattern identifica contas criadas pelos testes de QA. O padrão é
// fixo: só emails de sub-endereçamento "+test@" entram na limpeza.
const TestEmailPattern = "%+test@%"

type CleanupTestUsersUseCase struct {
	LeadRepo    entity.LeadRepositoryInterface
	PaymentRepo entity.PaymentRepositoryInterface
	TermRepo    entity.TermAcceptanceRepositoryInterface
	AuthAdmin   AuthAdminAPI
}

func NewCleanupTestUsersUseCase(
	leadRepo entity.LeadRepositoryInterface,
	paymentRepo entity.PaymentRepositoryInterface,
	termRepo entity.TermAcceptanceRepositoryInterface,
	authAdmin AuthAdminAPI,
) *CleanupTestUsersUseCase {
	return &CleanupTestUsersUseCase{
		LeadRepo:    leadRepo,
		PaymentRepo: paymentRepo,
		TermRepo:    termRepo,
		AuthAdmin:   authAdmin,
	}
}

// Execute apaga leads de teste e seus usuários de auth. Falha em um registro
// não interrompe os demais: o erro fica no detail daquele lead.
func (uc *CleanupTestUsersUseCase) Execute(ctx context.Context) (*CleanupOutput, error) {
	leads, err := uc.LeadRepo.FindByEmailPattern(ctx, TestEmailPattern)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao buscar leads de teste"}
	}

	out := &CleanupOutput{
		Success: true,
		Found:   len(leads),
		Details: make([]CleanupDetail, 0, len(leads)),
	}

	for _, lead := range leads {
		detail := CleanupDetail{LeadID: lead.ID, Email: lead.Email}

		if n, err := uc.PaymentRepo.DeleteByLeadID(ctx, lead.ID); err != nil {
			detail.Error = err.Error()
			out.Details = append(out.Details, detail)
			continue
		} else {
			detail.DeletedPayments = n
		}

		if n, err := uc.TermRepo.DeleteByLeadID(ctx, lead.ID); err != nil {
			detail.Error = err.Error()
			out.Details = append(out.Details, detail)
			continue
		} else {
			detail.DeletedTerms = n
		}

		if err := uc.LeadRepo.Delete(ctx, lead.ID); err != nil {
			detail.Error = err.Error()
			out.Details = append(out.Details, detail)
			continue
		}
		out.DeletedLeads++

		if lead.UserID != "" {
			if err := uc.AuthAdmin.DeleteAuthUser(ctx, lead.UserID); err != nil {
				log.Printf("⚠️ [CLEANUP] Lead %s apagado, mas auth user %s ficou: %v", lead.ID, lead.UserID, err)
				detail.Error = err.Error()
			} else {
				detail.AuthUserDeleted = true
				out.DeletedAuthUsers++
			}
		}

		out.Details = append(out.Details, detail)
	}

	log.Printf("🧹 [CLEANUP] %d leads de teste encontrados, %d apagados, %d auth users removidos",
		out.Found, out.DeletedLeads, out.DeletedAuthUsers)
	return out, nil
}
