package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/http/handlers"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmailPattern(ctx context.Context, pattern string) ([]entity.Lead, error) {
	args := m.Called(ctx, pattern)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) MarkPaymentConfirmed(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDashboardListLeads(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("ListAll", mock.Anything).Return([]entity.Lead{
		{ID: "1", Name: "Ana Silva", Email: "ana@exemplo.com", StatusPagamento: entity.StatusPago, IsConfirmadoPago: true},
		{ID: "2", Name: "Bruno Costa", Email: "bruno@exemplo.com", StatusPagamento: entity.StatusPendente},
	}, nil)

	handler := handlers.NewDashboardHandler(leadRepo)

	req := httptest.NewRequest("GET", "/dashboard/leads", nil)
	rec := httptest.NewRecorder()
	handler.HandleListLeads(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.DashboardResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Leads, 2)
	assert.Equal(t, 2, resp.Stats.Total)
	assert.Equal(t, 1, resp.Stats.Paid)
	assert.Equal(t, 1, resp.Stats.Pending)
}

func TestDashboardSearchAndTab(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("ListAll", mock.Anything).Return([]entity.Lead{
		{ID: "1", Name: "Ana Silva", Email: "ana@exemplo.com", StatusPagamento: entity.StatusPago, IsConfirmadoPago: true},
		{ID: "2", Name: "Ana Paula", Email: "paula@exemplo.com", StatusPagamento: entity.StatusNaoPagou},
	}, nil)

	handler := handlers.NewDashboardHandler(leadRepo)

	req := httptest.NewRequest("GET", "/dashboard/leads?search=ANA&tab=not-paid", nil)
	rec := httptest.NewRecorder()
	handler.HandleListLeads(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.DashboardResponse
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Leads, 1)
	assert.Equal(t, "2", resp.Leads[0].ID)
	assert.Equal(t, 1, resp.Stats.NotPaid)
}

func TestDashboardInvalidTab(t *testing.T) {
	handler := handlers.NewDashboardHandler(new(MockLeadRepository))

	req := httptest.NewRequest("GET", "/dashboard/leads?tab=whatever", nil)
	rec := httptest.NewRecorder()
	handler.HandleListLeads(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardDatabaseError(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("ListAll", mock.Anything).Return(nil, errors.New("connection refused"))

	handler := handlers.NewDashboardHandler(leadRepo)

	req := httptest.NewRequest("GET", "/dashboard/leads", nil)
	rec := httptest.NewRecorder()
	handler.HandleListLeads(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
