package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

func TestAcceptTermsRecordsAuditTrail(t *testing.T) {
	termRepo := new(MockTermAcceptanceRepository)
	leadRepo := new(MockLeadRepository)
	geo := new(MockGeoLookup)
	uc := usecase.NewAcceptTermsUseCase(termRepo, leadRepo, geo)

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(&entity.Lead{ID: "lead-1"}, nil)
	geo.On("Lookup", mock.Anything, "200.10.20.30").Return("São Paulo, SP, BR")
	termRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	output, err := uc.Execute(context.Background(), usecase.AcceptTermsInput{
		LeadID:      "lead-1",
		ContractURL: "https://storage.exemplo.com/contrato.pdf",
		ClientIP:    "200.10.20.30",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.TermAcceptanceID)

	created := termRepo.Calls[0].Arguments.Get(1).(*entity.TermAcceptance)
	assert.Equal(t, "200.10.20.30", created.ClientIP)
	assert.Equal(t, "São Paulo, SP, BR", created.ClientGeo)
}

// Lookup de geolocalização é best-effort: vazio não bloqueia o aceite.
func TestAcceptTermsGeoFailureIsSwallowed(t *testing.T) {
	termRepo := new(MockTermAcceptanceRepository)
	leadRepo := new(MockLeadRepository)
	geo := new(MockGeoLookup)
	uc := usecase.NewAcceptTermsUseCase(termRepo, leadRepo, geo)

	leadRepo.On("FindByID", mock.Anything, "lead-1").Return(&entity.Lead{ID: "lead-1"}, nil)
	geo.On("Lookup", mock.Anything, mock.Anything).Return("")
	termRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	output, err := uc.Execute(context.Background(), usecase.AcceptTermsInput{
		LeadID:   "lead-1",
		ClientIP: "10.0.0.1",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.TermAcceptanceID)

	created := termRepo.Calls[0].Arguments.Get(1).(*entity.TermAcceptance)
	assert.Empty(t, created.ClientGeo)
}

func TestAcceptTermsMissingLeadID(t *testing.T) {
	uc := usecase.NewAcceptTermsUseCase(new(MockTermAcceptanceRepository), new(MockLeadRepository), new(MockGeoLookup))

	_, err := uc.Execute(context.Background(), usecase.AcceptTermsInput{})

	var vErr usecase.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "lead_id", vErr.Field)
}
