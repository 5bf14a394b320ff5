package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AmericanDreamdev/american-dream-api/internal/entity"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/partner"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/integration/supabase"
	"github.com/AmericanDreamdev/american-dream-api/internal/infra/queue"
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

// MockPaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, p *entity.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByLeadAndAcceptance(ctx context.Context, leadID, termAcceptanceID string) (*entity.Payment, error) {
	args := m.Called(ctx, leadID, termAcceptanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeleteByLeadID(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

// MockTermAcceptanceRepository
type MockTermAcceptanceRepository struct {
	mock.Mock
}

func (m *MockTermAcceptanceRepository) Create(ctx context.Context, t *entity.TermAcceptance) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTermAcceptanceRepository) FindByID(ctx context.Context, id string) (*entity.TermAcceptance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.TermAcceptance), args.Error(1)
}

func (m *MockTermAcceptanceRepository) DeleteByLeadID(ctx context.Context, leadID string) (int, error) {
	args := m.Called(ctx, leadID)
	return args.Int(0), args.Error(1)
}

// MockPartnerSync
type MockPartnerSync struct {
	mock.Mock
}

func (m *MockPartnerSync) SyncPayment(ctx context.Context, input partner.SyncPaymentInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishPaymentCreated(ctx context.Context, payload queue.PaymentCreatedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockSessionAPI
type MockSessionAPI struct {
	mock.Mock
}

func (m *MockSessionAPI) SetSession(ctx context.Context, accessToken, refreshToken string) (*supabase.Session, error) {
	args := m.Called(ctx, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supabase.Session), args.Error(1)
}

// MockAuthAdmin
type MockAuthAdmin struct {
	mock.Mock
}

func (m *MockAuthAdmin) DeleteAuthUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockGeoLookup
type MockGeoLookup struct {
	mock.Mock
}

func (m *MockGeoLookup) Lookup(ctx context.Context, ip string) string {
	args := m.Called(ctx, ip)
	return args.String(0)
}
