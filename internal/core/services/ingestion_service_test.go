package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/MarkChukwuebuka/invoice-etl/internal/core/domain"
	portsrepo "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/repositories"
	portssvc "github.com/MarkChukwuebuka/invoice-etl/internal/core/ports/services"
	"github.com/MarkChukwuebuka/invoice-etl/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RecordSource ---
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) ReadInvoices(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawRecord), args.Error(1)
}

func (m *MockRecordSource) ReadLineItems(ctx context.Context) ([]domain.RawRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RawRecord), args.Error(1)
}

var _ portsrepo.RecordSource = (*MockRecordSource)(nil)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) BulkInsertInvoices(ctx context.Context, invoices []domain.Invoice) (int64, error) {
	args := m.Called(ctx, invoices)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

var _ portsrepo.InvoiceRepository = (*MockInvoiceRepository)(nil)

// --- Mock LineItemRepository ---
type MockLineItemRepository struct {
	mock.Mock
}

func (m *MockLineItemRepository) BulkInsertLineItems(ctx context.Context, items []domain.LineItem) (int64, error) {
	args := m.Called(ctx, items)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLineItemRepository) FindLineItemsByInvoiceID(ctx context.Context, invoiceID int64) ([]domain.LineItem, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LineItem), args.Error(1)
}

var _ portsrepo.LineItemRepository = (*MockLineItemRepository)(nil)

// --- Test Suite ---
type IngestionServiceTestSuite struct {
	suite.Suite
	mockSource       *MockRecordSource
	mockInvoiceRepo  *MockInvoiceRepository
	mockLineItemRepo *MockLineItemRepository
	service          portssvc.IngestionSvcFacade
}

func (suite *IngestionServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRecordSource)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockLineItemRepo = new(MockLineItemRepository)
	suite.service = services.NewIngestionService(suite.mockSource, suite.mockInvoiceRepo, suite.mockLineItemRepo)
}

func (suite *IngestionServiceTestSuite) TestRun_Success() {
	ctx := context.Background()

	rawInvoices := []domain.RawRecord{
		{
			"invoice_id":         "1",
			"invoice_status_str": "paid",
			"total":              "50.00",
			"invoice_date":       "2024-01-10",
		},
	}
	rawItems := []domain.RawRecord{
		{"invoice_id": "1", "item_name": "Shipping fee", "line_rate": "10", "line_quantity": "2"},
		{"invoice_id": "1", "item_name": "Coaching program", "line_rate": "15", "line_quantity": "2"},
	}

	suite.mockSource.On("ReadInvoices", ctx).Return(rawInvoices, nil).Once()
	suite.mockSource.On("ReadLineItems", ctx).Return(rawItems, nil).Once()

	suite.mockInvoiceRepo.On("BulkInsertInvoices", ctx, mock.MatchedBy(func(invoices []domain.Invoice) bool {
		return len(invoices) == 1 && invoices[0].InvoiceID == 1
	})).Return(int64(1), nil).Once()

	suite.mockLineItemRepo.On("BulkInsertLineItems", ctx, mock.MatchedBy(func(items []domain.LineItem) bool {
		return len(items) == 2 &&
			items[0].Category == domain.CategoryShipping &&
			items[1].Category == domain.CategoryCoaching
	})).Return(int64(2), nil).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)
	suite.Equal(int64(1), summary.InvoicesLoaded)
	suite.Equal(int64(2), summary.LineItemsLoaded)
	suite.Equal(0, summary.LineItemsDropped)
	suite.True(summary.Validation.Clean())

	suite.mockSource.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockLineItemRepo.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestRun_DropsOrphanLineItems() {
	ctx := context.Background()

	rawInvoices := []domain.RawRecord{
		{"invoice_id": "1", "invoice_status_str": "paid", "total": "20.00"},
	}
	rawItems := []domain.RawRecord{
		{"invoice_id": "1", "item_name": "Freight", "line_rate": "20", "line_quantity": "1"},
		{"invoice_id": "999", "item_name": "Orphan item", "line_rate": "5", "line_quantity": "1"},
	}

	suite.mockSource.On("ReadInvoices", ctx).Return(rawInvoices, nil).Once()
	suite.mockSource.On("ReadLineItems", ctx).Return(rawItems, nil).Once()
	suite.mockInvoiceRepo.On("BulkInsertInvoices", ctx, mock.Anything).Return(int64(1), nil).Once()
	suite.mockLineItemRepo.On("BulkInsertLineItems", ctx, mock.MatchedBy(func(items []domain.LineItem) bool {
		return len(items) == 1 && items[0].InvoiceID == 1
	})).Return(int64(1), nil).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, summary.LineItemsDropped)
	suite.Equal(1, summary.Validation.Counts[domain.CheckMissingInvoiceIDs])
	suite.Equal([]int64{999}, summary.Validation.MissingInvoiceSamples)
	suite.mockLineItemRepo.AssertExpectations(suite.T())
}

func (suite *IngestionServiceTestSuite) TestRun_ValidationDoesNotBlockLoad() {
	ctx := context.Background()

	// Negative total and negative rate: reported, but still loaded.
	rawInvoices := []domain.RawRecord{
		{"invoice_id": "1", "invoice_status_str": "void", "total": "-5.00"},
	}
	rawItems := []domain.RawRecord{
		{"invoice_id": "1", "item_name": "Adjustment", "line_rate": "-5", "line_quantity": "1"},
	}

	suite.mockSource.On("ReadInvoices", ctx).Return(rawInvoices, nil).Once()
	suite.mockSource.On("ReadLineItems", ctx).Return(rawItems, nil).Once()
	suite.mockInvoiceRepo.On("BulkInsertInvoices", ctx, mock.Anything).Return(int64(1), nil).Once()
	suite.mockLineItemRepo.On("BulkInsertLineItems", ctx, mock.Anything).Return(int64(1), nil).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Validation.Counts[domain.CheckNegativeTotals])
	suite.Equal(1, summary.Validation.Counts[domain.CheckNegativeRates])
	suite.Equal(int64(1), summary.InvoicesLoaded)
	suite.Equal(int64(1), summary.LineItemsLoaded)
}

func (suite *IngestionServiceTestSuite) TestRun_SourceError() {
	ctx := context.Background()
	expectedErr := errors.New("required column missing: invoice_id")

	suite.mockSource.On("ReadInvoices", ctx).Return(nil, expectedErr).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	// No storage interaction before the precondition failure
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "BulkInsertInvoices", mock.Anything, mock.Anything)
	suite.mockLineItemRepo.AssertNotCalled(suite.T(), "BulkInsertLineItems", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceTestSuite) TestRun_InvoiceLoadFailure() {
	ctx := context.Background()
	expectedErr := errors.New("connection reset")

	suite.mockSource.On("ReadInvoices", ctx).Return([]domain.RawRecord{
		{"invoice_id": "1", "invoice_status_str": "paid"},
	}, nil).Once()
	suite.mockSource.On("ReadLineItems", ctx).Return([]domain.RawRecord{}, nil).Once()
	suite.mockInvoiceRepo.On("BulkInsertInvoices", ctx, mock.Anything).Return(int64(0), expectedErr).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
	suite.mockLineItemRepo.AssertNotCalled(suite.T(), "BulkInsertLineItems", mock.Anything, mock.Anything)
}

func (suite *IngestionServiceTestSuite) TestRun_LineItemLoadFailure() {
	ctx := context.Background()
	expectedErr := errors.New("disk full")

	suite.mockSource.On("ReadInvoices", ctx).Return([]domain.RawRecord{
		{"invoice_id": "1", "invoice_status_str": "paid"},
	}, nil).Once()
	suite.mockSource.On("ReadLineItems", ctx).Return([]domain.RawRecord{
		{"invoice_id": "1", "item_name": "Freight", "line_rate": "1", "line_quantity": "1"},
	}, nil).Once()
	suite.mockInvoiceRepo.On("BulkInsertInvoices", ctx, mock.Anything).Return(int64(1), nil).Once()
	suite.mockLineItemRepo.On("BulkInsertLineItems", ctx, mock.Anything).Return(int64(0), expectedErr).Once()

	summary, err := suite.service.Run(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, expectedErr)
}

func TestIngestionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestionServiceTestSuite))
}
