package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const internalErrorMessage = "internal server error"

type errorResponse struct {
	status int
	body   *gen.ErrorResp
	// defect marks failures that can only come from a programming error.
	defect bool
}

// toErrorResponse is the single place where domain failures become HTTP statuses.
func toErrorResponse(err error) errorResponse {
	var (
		validationErr   *domain.ValidationErr
		businessRuleErr *domain.BusinessRuleErr
		notFoundErr     *domain.NotFoundErr
		invalidArgErr   *domain.InvalidArgumentErr
	)

	switch {
	case errors.As(err, &validationErr):
		return errorResponse{
			status: http.StatusBadRequest,
			body:   &gen.ErrorResp{Errors: validationErr.Messages()},
		}
	case errors.As(err, &businessRuleErr):
		return errorResponse{
			status: http.StatusBadRequest,
			body:   &gen.ErrorResp{Errors: []string{businessRuleErr.Error()}},
		}
	case errors.As(err, &notFoundErr):
		return errorResponse{status: http.StatusNotFound}
	case errors.As(err, &invalidArgErr):
		return errorResponse{
			status: http.StatusInternalServerError,
			body:   &gen.ErrorResp{Errors: []string{internalErrorMessage}},
			defect: true,
		}
	default:
		return errorResponse{
			status: http.StatusInternalServerError,
			body:   &gen.ErrorResp{Errors: []string{internalErrorMessage}},
		}
	}
}

func toBook(b domain.Book) gen.Book {
	return gen.Book{
		Id:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		Isbn:   b.ISBN,
	}
}

func toLoan(l domain.Loan) gen.Loan {
	return gen.Loan{
		Id:       l.ID,
		Book:     toBook(l.Book),
		Customer: l.Customer,
		LoanDate: openapi_types.Date{Time: l.LoanDate},
		Returned: l.Returned,
	}
}

func toBookPage(p domain.Page[domain.Book]) gen.BookPage {
	resp := gen.BookPage{
		Content:       []gen.Book{},
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
	}
	for _, b := range p.Items {
		resp.Content = append(resp.Content, toBook(b))
	}
	return resp
}

func toLoanPage(p domain.Page[domain.Loan]) gen.LoanPage {
	resp := gen.LoanPage{
		Content:       []gen.Loan{},
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages(),
	}
	for _, l := range p.Items {
		resp.Content = append(resp.Content, toLoan(l))
	}
	return resp
}
