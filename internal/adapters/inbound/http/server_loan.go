package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/cleitonmarx/symbiont-library/internal/usecases"
)

func (api LibraryAppServer) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateLoanJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	book, found, err := api.BookService.GetByISBN(r.Context(), req.Isbn)
	if err != nil {
		api.respondError(w, r, err)
		return
	}
	if !found {
		usecases.RecordBusinessRuleViolation(r.Context(), domain.ErrBookNotFoundForISBN)
		api.respondError(w, r, domain.ErrBookNotFoundForISBN)
		return
	}

	loan := domain.Loan{
		Book:     book,
		Customer: req.Customer,
	}
	if req.LoanDate != nil {
		loan.LoanDate = req.LoanDate.Time
	}

	loan, err = api.LoanService.Create(r.Context(), loan)
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, loan.ID)
}

func (api LibraryAppServer) UpdateLoan(w http.ResponseWriter, r *http.Request, id gen.Id) {
	if id <= 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req gen.UpdateLoanJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	loan, err := api.LoanService.SetReturned(r.Context(), id, req.Returned)
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toLoan(loan))
}

func (api LibraryAppServer) FindLoans(w http.ResponseWriter, r *http.Request, params gen.FindLoansParams) {
	filter := domain.LoanFilter{
		ISBN:     params.Isbn,
		Customer: params.Customer,
	}

	page, err := api.LoanService.Find(r.Context(), filter, domain.NewPageRequest(params.Page, params.Size))
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toLoanPage(page))
}
