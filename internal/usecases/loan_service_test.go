package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-library/internal/common"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	domain_mocks "github.com/cleitonmarx/symbiont-library/internal/domain/mocks"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLoanServiceImpl_Create(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)
	today := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	book := domain.Book{ID: 4, Title: "Dom Casmurro", Author: "Machado", ISBN: "123"}
	input := domain.Loan{Book: book, Customer: "Fulano"}
	toPersist := domain.Loan{Book: book, Customer: "Fulano", LoanDate: today}
	created := domain.Loan{ID: 21, Book: book, Customer: "Fulano", LoanDate: today}

	tests := map[string]struct {
		loan            domain.Loan
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedLoan    domain.Loan
		expectedErr     error
	}{
		"success": {
			loan: input,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockLoanRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(false, nil)
				repo.EXPECT().CreateLoan(mock.Anything, toPersist).Return(created, nil)
				outbox.EXPECT().RecordLoanEvent(mock.Anything, domain.LoanEvent{
					Type:      domain.EventType_LOAN_CREATED,
					LoanID:    21,
					BookID:    4,
					ISBN:      "123",
					Customer:  "Fulano",
					LoanDate:  today,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedLoan: created,
		},
		"keeps-given-loan-date": {
			loan: domain.Loan{Book: book, Customer: "Fulano", LoanDate: today.AddDate(0, 0, -2)},
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockLoanRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				persisted := domain.Loan{Book: book, Customer: "Fulano", LoanDate: today.AddDate(0, 0, -2)}
				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(false, nil)
				repo.EXPECT().CreateLoan(mock.Anything, persisted).Return(domain.Loan{
					ID: 22, Book: book, Customer: "Fulano", LoanDate: today.AddDate(0, 0, -2),
				}, nil)
				outbox.EXPECT().RecordLoanEvent(mock.Anything, mock.Anything).Return(nil)
			},
			expectedLoan: domain.Loan{ID: 22, Book: book, Customer: "Fulano", LoanDate: today.AddDate(0, 0, -2)},
		},
		"already-loaned": {
			loan: input,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockLoanRepository(t)
				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(true, nil)
			},
			expectedErr: domain.ErrAlreadyLoaned,
		},
		"validation-error": {
			loan:        domain.Loan{Customer: " "},
			expectedErr: domain.NewValidationErr("book must not be empty", "customer must not be empty"),
		},
		"repository-error": {
			loan: input,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockLoanRepository(t)
				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(false, nil)
				repo.EXPECT().CreateLoan(mock.Anything, toPersist).Return(domain.Loan{}, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			ls := NewLoanServiceImpl(uow, domain_mocks.NewMockLoanRepository(t), timeProvider)
			got, err := ls.Create(context.Background(), tt.loan)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedLoan, got)
		})
	}
}

func TestLoanServiceImpl_SetReturned(t *testing.T) {
	fixedTime := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	loanDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	book := domain.Book{ID: 4, Title: "Dom Casmurro", Author: "Machado", ISBN: "123"}
	open := domain.Loan{ID: 21, Book: book, Customer: "Fulano", LoanDate: loanDate}
	closed := domain.Loan{ID: 21, Book: book, Customer: "Fulano", LoanDate: loanDate, Returned: true}

	tests := map[string]struct {
		returned        bool
		setExpectations func(uow *domain_mocks.MockUnitOfWork)
		expectedLoan    domain.Loan
		expectedErr     error
	}{
		"return-open-loan": {
			returned: true,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockLoanRepository(t)
				outbox := domain_mocks.NewMockOutboxRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().Outbox().Return(outbox)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetLoan(mock.Anything, int64(21)).Return(open, true, nil)
				repo.EXPECT().UpdateLoan(mock.Anything, closed).Return(nil)
				outbox.EXPECT().RecordLoanEvent(mock.Anything, domain.LoanEvent{
					Type:      domain.EventType_LOAN_RETURNED,
					LoanID:    21,
					BookID:    4,
					ISBN:      "123",
					Customer:  "Fulano",
					LoanDate:  loanDate,
					CreatedAt: fixedTime,
				}).Return(nil)
			},
			expectedLoan: closed,
		},
		"already-returned-is-noop": {
			returned: true,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockLoanRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetLoan(mock.Anything, int64(21)).Return(closed, true, nil)
			},
			expectedLoan: closed,
		},
		"reopen-free-book": {
			returned: false,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockLoanRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetLoan(mock.Anything, int64(21)).Return(closed, true, nil)
				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(false, nil)
				repo.EXPECT().UpdateLoan(mock.Anything, open).Return(nil)
			},
			expectedLoan: open,
		},
		"reopen-loaned-book": {
			returned: false,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockLoanRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetLoan(mock.Anything, int64(21)).Return(closed, true, nil)
				repo.EXPECT().ExistsActiveLoan(mock.Anything, int64(4)).Return(true, nil)
			},
			expectedErr: domain.ErrAlreadyLoaned,
		},
		"not-found": {
			returned: true,
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockLoanRepository(t)

				uow.EXPECT().Loan().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().GetLoan(mock.Anything, int64(21)).Return(domain.Loan{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("loan not found"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			timeProvider.EXPECT().Now().Return(fixedTime)
			tt.setExpectations(uow)

			ls := NewLoanServiceImpl(uow, domain_mocks.NewMockLoanRepository(t), timeProvider)
			got, err := ls.SetReturned(context.Background(), 21, tt.returned)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expectedLoan, got)
		})
	}
}

func TestLoanServiceImpl_Find(t *testing.T) {
	loans := domain.Page[domain.Loan]{
		Items: []domain.Loan{
			{ID: 1, Book: domain.Book{ID: 4, ISBN: "123"}, Customer: "Fulano"},
		},
		Page:          1,
		Size:          1,
		TotalElements: 3,
	}

	tests := map[string]struct {
		filter          domain.LoanFilter
		page            domain.PageRequest
		setExpectations func(repo *domain_mocks.MockLoanRepository)
		expected        domain.Page[domain.Loan]
		expectedErr     error
	}{
		"by-isbn": {
			filter: domain.LoanFilter{ISBN: common.Ptr("123")},
			page:   domain.PageRequest{Page: 1, Size: 1},
			setExpectations: func(repo *domain_mocks.MockLoanRepository) {
				repo.EXPECT().FindLoans(
					mock.Anything,
					domain.LoanFilter{ISBN: common.Ptr("123")},
					domain.PageRequest{Page: 1, Size: 1},
				).Return(loans, nil)
			},
			expected: loans,
		},
		"size-too-large": {
			page:        domain.PageRequest{Page: 0, Size: 101},
			expectedErr: domain.NewValidationErr("size must be between 1 and 100"),
		},
		"repository-error": {
			page: domain.PageRequest{Page: 0, Size: 20},
			setExpectations: func(repo *domain_mocks.MockLoanRepository) {
				repo.EXPECT().FindLoans(mock.Anything, domain.LoanFilter{}, domain.PageRequest{Page: 0, Size: 20}).
					Return(domain.Page[domain.Loan]{}, errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockLoanRepository(t)
			if tt.setExpectations != nil {
				tt.setExpectations(repo)
			}

			ls := NewLoanServiceImpl(domain_mocks.NewMockUnitOfWork(t), repo, domain_mocks.NewMockCurrentTimeProvider(t))
			got, err := ls.Find(context.Background(), tt.filter, tt.page)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInitLoanService_Initialize(t *testing.T) {
	ils := InitLoanService{}

	ctx, err := ils.Initialize(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, ctx)

	registered, err := depend.Resolve[LoanService]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
