package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/partner"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/queue"
)

// Defaults de um pagamento criado por comprovante.
const (
	DefaultAmount        = 49700 // R$ 497,00 em centavos
	DefaultCurrency      = "BRL"
	DefaultPaymentMethod = "comprovante"
)

type CreatePaymentUseCase struct {
	PaymentRepo entity.PaymentRepositoryInterface
	LeadRepo    entity.LeadRepositoryInterface
	TermRepo    entity.TermAcceptanceRepositoryInterface
	Partner     PartnerSync
	Queue       queue.ProducerInterface
}

func NewCreatePaymentUseCase(
	paymentRepo entity.PaymentRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	termRepo entity.TermAcceptanceRepositoryInterface,
	partnerClient PartnerSync,
	producer queue.ProducerInterface,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		PaymentRepo: paymentRepo,
		LeadRepo:    leadRepo,
		TermRepo:    termRepo,
		Partner:     partnerClient,
		Queue:       producer,
	}
}

// Execute cria o pagamento de forma idempotente por (lead_id,
// term_acceptance_id): pedido repetido devolve o mesmo payment_id. A checagem
// prévia cobre o caso comum; a constraint única no banco fecha a corrida entre
// dois pedidos quase simultâneos.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, input CreatePaymentInput) (*CreatePaymentOutput, error) {
	if errs := ValidateCreatePaymentInput(input); len(errs) > 0 {
		return nil, errs[0]
	}

	existing, err := uc.PaymentRepo.FindByLeadAndAcceptance(ctx, input.LeadID, input.TermAcceptanceID)
	if err == nil && existing != nil {
		log.Printf("📥 [PAYMENT] Pagamento já existe para lead=%s aceite=%s", input.LeadID, input.TermAcceptanceID)
		return &CreatePaymentOutput{PaymentID: existing.ID}, nil
	}
	if err != nil && !entity.IsNotFound(err) {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: fmt.Sprintf("erro ao consultar pagamentos: %v", err)}
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead não encontrado"}
	}

	term, err := uc.TermRepo.FindByID(ctx, input.TermAcceptanceID)
	if err != nil {
		return nil, &DomainError{Code: "TERM_NOT_FOUND", Message: "aceite de contrato não encontrado"}
	}
	if term.LeadID != lead.ID {
		return nil, &DomainError{Code: "TERM_MISMATCH", Message: "aceite não pertence a este lead"}
	}

	amount := input.Amount
	if amount == 0 {
		amount = DefaultAmount
	}
	currency := input.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	method := input.PaymentMethod
	if method == "" {
		method = DefaultPaymentMethod
	}

	payment := entity.NewPayment(lead.ID, term.ID, amount, currency, method)

	if err := uc.PaymentRepo.Create(ctx, payment); err != nil {
		// Dois pedidos passaram pela checagem ao mesmo tempo: a constraint
		// segurou o segundo. Devolve o registro que ganhou a corrida.
		if errors.Is(err, entity.ErrPaymentAlreadyExists) {
			winner, findErr := uc.PaymentRepo.FindByLeadAndAcceptance(ctx, input.LeadID, input.TermAcceptanceID)
			if findErr != nil {
				return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: fmt.Sprintf("erro ao reler pagamento existente: %v", findErr)}
			}
			return &CreatePaymentOutput{PaymentID: winner.ID}, nil
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: fmt.Sprintf("erro ao criar pagamento: %v", err)}
	}

	if err := uc.LeadRepo.MarkPaymentConfirmed(ctx, lead.ID); err != nil {
		log.Printf("❌ [PAYMENT] Pagamento criado mas lead %s não atualizado: %v", lead.ID, err)
	}

	// Notificação é best-effort: fila fora do ar não derruba a criação.
	if uc.Queue != nil {
		event := queue.PaymentCreatedPayload{
			PaymentID:     payment.ID,
			LeadID:        lead.ID,
			Name:          lead.Name,
			Email:         lead.Email,
			Amount:        payment.Amount,
			Currency:      payment.Currency,
			PaymentMethod: payment.PaymentMethod,
		}
		if err := uc.Queue.PublishPaymentCreated(ctx, event); err != nil {
			log.Printf("⚠️ [PAYMENT] Falha ao publicar evento de notificação: %v", err)
		}
	}

	// O sync com o parceiro NÃO é best-effort: falha sobe para o chamador.
	// Como a criação é idempotente, repetir o pedido tenta o sync de novo sem
	// duplicar o pagamento.
	syncInput := partner.SyncPaymentInput{
		UserID:        lead.UserID,
		PaymentID:     payment.ID,
		LeadID:        lead.ID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		PaymentMethod: payment.PaymentMethod,
		Status:        payment.Status,
	}
	if err := uc.Partner.SyncPayment(ctx, syncInput); err != nil {
		log.Printf("❌ [PAYMENT] Sync com parceiro falhou para %s: %v", payment.ID, err)
		return nil, &TechnicalError{Code: "PARTNER_SYNC_FAILED", Message: fmt.Sprintf("pagamento %s criado, mas o sync com o parceiro falhou", payment.ID)}
	}

	log.Printf("✅ [PAYMENT] Pagamento %s criado e sincronizado para lead %s", payment.ID, lead.ID)
	return &CreatePaymentOutput{PaymentID: payment.ID}, nil
}
