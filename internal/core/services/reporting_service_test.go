package services_test

import (
	"context"
	"testing"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetCategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CategoryTotal), args.Error(1)
}

func (m *MockReportingRepository) GetInvoiceDiscrepancies(ctx context.Context, tolerance decimal.Decimal) ([]domain.InvoiceDiscrepancy, error) {
	args := m.Called(ctx, tolerance)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceDiscrepancy), args.Error(1)
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

// --- Test Suite ---
type ReportingServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  portssvc.ReportingSvcFacade
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewReportingService(suite.mockRepo)
}

func (suite *ReportingServiceTestSuite) TestCategoryReport_Success() {
	ctx := context.Background()
	expected := []domain.CategoryTotal{
		{Category: domain.CategoryCoaching, ItemCount: 3, TotalAmount: decimal.RequireFromString("300.00")},
		{Category: domain.CategoryShipping, ItemCount: 1, TotalAmount: decimal.RequireFromString("20.00")},
	}

	suite.mockRepo.On("GetCategoryTotals", ctx).Return(expected, nil).Once()

	totals, err := suite.service.CategoryReport(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, totals)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ReportingServiceTestSuite) TestCategoryReport_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("GetCategoryTotals", ctx).Return(nil, expectedErr).Once()

	totals, err := suite.service.CategoryReport(ctx)

	suite.Require().Error(err)
	suite.Nil(totals)
	suite.ErrorIs(err, expectedErr)
}

func (suite *ReportingServiceTestSuite) TestDiscrepancyReport_UsesSharedTolerance() {
	ctx := context.Background()
	expected := []domain.InvoiceDiscrepancy{
		{
			InvoiceID:       1,
			InvoiceTotal:    decimal.RequireFromString("100.00"),
			CalculatedTotal: decimal.RequireFromString("100.015"),
			Difference:      decimal.RequireFromString("-0.015"),
		},
	}

	suite.mockRepo.On("GetInvoiceDiscrepancies", ctx, domain.DiscrepancyTolerance).Return(expected, nil).Once()

	rows, err := suite.service.DiscrepancyReport(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, rows)
	suite.True(rows[0].ExceedsTolerance())
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
