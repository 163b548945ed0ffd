package postgres

import (
	"errors"

	"github.com/cleitonmarx/symbiont-library/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation = "23505"

	booksISBNConstraint      = "books_isbn_key"
	loansOneActivePerBookIdx = "loans_one_active_per_book"
)

// constraintErrors maps unique constraints to the business rule they back.
var constraintErrors = map[string]error{
	booksISBNConstraint:      domain.ErrDuplicateISBN,
	loansOneActivePerBookIdx: domain.ErrAlreadyLoaned,
}

// translateConstraintErr converts a unique violation raised by a known constraint into its
// domain error. Any other error is returned unchanged.
func translateConstraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return err
	}
	if domainErr, ok := constraintErrors[pgErr.ConstraintName]; ok {
		return domainErr
	}
	return err
}

// escapeLike escapes the LIKE wildcards of v so it is matched literally.
func escapeLike(v string) string {
	var b []rune
	for _, r := range v {
		switch r {
		case '\\', '%', '_':
			b = append(b, '\\')
		}
		b = append(b, r)
	}
	return string(b)
}

// containsPattern builds a LIKE pattern matching v anywhere in the column.
func containsPattern(v string) string {
	return "%" + escapeLike(v) + "%"
}
