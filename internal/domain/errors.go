package domain

import "strings"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
// It carries one message per invalid field, in field declaration order.
type ValidationErr struct {
	domainErr
	messages []string
}

// NewValidationErr creates a new ValidationErr with the given messages.
func NewValidationErr(messages ...string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: strings.Join(messages, "; ")},
		messages:  messages,
	}
}

// Messages returns the individual validation messages.
func (e *ValidationErr) Messages() []string {
	return e.messages
}

// BusinessRuleErr represents the violation of a business rule. It always carries a single,
// fixed message.
type BusinessRuleErr struct {
	domainErr
}

// NewBusinessRuleErr creates a new BusinessRuleErr with the given message.
func NewBusinessRuleErr(message string) *BusinessRuleErr {
	return &BusinessRuleErr{
		domainErr: domainErr{message: message},
	}
}

// InvalidArgumentErr represents an internal precondition violation, such as updating a book
// without an id. It signals a programming error rather than a client error.
type InvalidArgumentErr struct {
	domainErr
}

// NewInvalidArgumentErr creates a new InvalidArgumentErr with the given message.
func NewInvalidArgumentErr(message string) *InvalidArgumentErr {
	return &InvalidArgumentErr{
		domainErr: domainErr{message: message},
	}
}

var (
	// ErrDuplicateISBN is returned when a book with the same isbn already exists.
	ErrDuplicateISBN = NewBusinessRuleErr("Isnb ja cadastrado")
	// ErrBookNotFoundForISBN is returned when a loan references an isbn with no book.
	ErrBookNotFoundForISBN = NewBusinessRuleErr("Book not found for passed isbn")
	// ErrAlreadyLoaned is returned when the book already has an unreturned loan.
	ErrAlreadyLoaned = NewBusinessRuleErr("Book already loaned")
)
