package http

import (
	"net/http"

	"github.com/cleitonmarx/symbiont-library/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont-library/internal/domain"
)

func (api LibraryAppServer) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateBookJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	book, err := api.BookService.Create(r.Context(), domain.Book{
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.Isbn,
	})
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, toBook(book))
}

func (api LibraryAppServer) GetBook(w http.ResponseWriter, r *http.Request, id gen.Id) {
	book, found, err := api.getBook(r, id)
	if err != nil {
		api.respondError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, toBook(book))
}

func (api LibraryAppServer) UpdateBook(w http.ResponseWriter, r *http.Request, id gen.Id) {
	if id <= 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var req gen.UpdateBookJSONRequestBody
	if err := decodeJSON(r, &req); err != nil {
		respondBadRequest(w, err.Error())
		return
	}

	book, err := api.BookService.Update(r.Context(), domain.Book{
		ID:     id,
		Title:  req.Title,
		Author: req.Author,
		ISBN:   req.Isbn,
	})
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toBook(book))
}

func (api LibraryAppServer) DeleteBook(w http.ResponseWriter, r *http.Request, id gen.Id) {
	book, found, err := api.getBook(r, id)
	if err != nil {
		api.respondError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if err := api.BookService.Delete(r.Context(), book); err != nil {
		api.respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (api LibraryAppServer) FindBooks(w http.ResponseWriter, r *http.Request, params gen.FindBooksParams) {
	filter := domain.BookFilter{
		Title:  params.Title,
		Author: params.Author,
		ISBN:   params.Isbn,
	}

	page, err := api.BookService.Find(r.Context(), filter, domain.NewPageRequest(params.Page, params.Size))
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toBookPage(page))
}

func (api LibraryAppServer) FindBookLoans(w http.ResponseWriter, r *http.Request, id gen.Id, params gen.FindBookLoansParams) {
	_, found, err := api.getBook(r, id)
	if err != nil {
		api.respondError(w, r, err)
		return
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	page, err := api.LoanService.Find(r.Context(), domain.LoanFilter{BookID: &id}, domain.NewPageRequest(params.Page, params.Size))
	if err != nil {
		api.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toLoanPage(page))
}

// getBook looks a book up by id. Ids the store never assigns are reported as absent.
func (api LibraryAppServer) getBook(r *http.Request, id int64) (domain.Book, bool, error) {
	if id <= 0 {
		return domain.Book{}, false, nil
	}
	return api.BookService.GetByID(r.Context(), id)
}
