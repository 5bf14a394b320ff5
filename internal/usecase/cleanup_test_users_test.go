package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
	"github.com/AmericanDreamdev/american-dream-api/internal/usecase"
)

func cleanupFixtures() (*MockLeadRepository, *MockPaymentRepository, *MockTermAcceptanceRepository, *MockAuthAdmin, *usecase.CleanupTestUsersUseCase) {
	leadRepo := new(MockLeadRepository)
	paymentRepo := new(MockPaymentRepository)
	termRepo := new(MockTermAcceptanceRepository)
	authAdmin := new(MockAuthAdmin)

	uc := usecase.NewCleanupTestUsersUseCase(leadRepo, paymentRepo, termRepo, authAdmin)
	return leadRepo, paymentRepo, termRepo, authAdmin, uc
}

func TestCleanupDeletesMatchingLeadsAndAuthUsers(t *testing.T) {
	leadRepo, paymentRepo, termRepo, authAdmin, uc := cleanupFixtures()

	leads := []entity.Lead{
		{ID: "lead-1", Email: "qa+test@exemplo.com", UserID: "auth-1"},
		{ID: "lead-2", Email: "outra+test@exemplo.com"}, // sem conta de auth
	}

	leadRepo.On("FindByEmailPattern", mock.Anything, usecase.TestEmailPattern).Return(leads, nil)
	paymentRepo.On("DeleteByLeadID", mock.Anything, "lead-1").Return(2, nil)
	paymentRepo.On("DeleteByLeadID", mock.Anything, "lead-2").Return(0, nil)
	termRepo.On("DeleteByLeadID", mock.Anything, "lead-1").Return(1, nil)
	termRepo.On("DeleteByLeadID", mock.Anything, "lead-2").Return(0, nil)
	leadRepo.On("Delete", mock.Anything, "lead-1").Return(nil)
	leadRepo.On("Delete", mock.Anything, "lead-2").Return(nil)
	authAdmin.On("DeleteAuthUser", mock.Anything, "auth-1").Return(nil)

	output, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, 2, output.Found)
	assert.Equal(t, 2, output.DeletedLeads)
	assert.Equal(t, 1, output.DeletedAuthUsers)
	assert.Len(t, output.Details, 2)
	assert.Equal(t, 2, output.Details[0].DeletedPayments)
	assert.True(t, output.Details[0].AuthUserDeleted)
	assert.False(t, output.Details[1].AuthUserDeleted)
	authAdmin.AssertNumberOfCalls(t, "DeleteAuthUser", 1)
}

func TestCleanupPerRecordFailureDoesNotStopOthers(t *testing.T) {
	leadRepo, paymentRepo, termRepo, _, uc := cleanupFixtures()

	leads := []entity.Lead{
		{ID: "lead-1", Email: "qa+test@exemplo.com"},
		{ID: "lead-2", Email: "outra+test@exemplo.com"},
	}

	leadRepo.On("FindByEmailPattern", mock.Anything, usecase.TestEmailPattern).Return(leads, nil)
	paymentRepo.On("DeleteByLeadID", mock.Anything, "lead-1").Return(0, errors.New("fk violation"))
	paymentRepo.On("DeleteByLeadID", mock.Anything, "lead-2").Return(0, nil)
	termRepo.On("DeleteByLeadID", mock.Anything, "lead-2").Return(0, nil)
	leadRepo.On("Delete", mock.Anything, "lead-2").Return(nil)

	output, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, output.Found)
	assert.Equal(t, 1, output.DeletedLeads)
	assert.NotEmpty(t, output.Details[0].Error)
	assert.Empty(t, output.Details[1].Error)
}

func TestCleanupNoMatches(t *testing.T) {
	leadRepo, _, _, _, uc := cleanupFixtures()

	leadRepo.On("FindByEmailPattern", mock.Anything, usecase.TestEmailPattern).Return([]entity.Lead{}, nil)

	output, err := uc.Execute(context.Background())

	assert.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, 0, output.Found)
	assert.Empty(t, output.Details)
}
