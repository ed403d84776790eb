package core

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers classify with errors.Is; the message shown to the
// caller comes from MapError.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAIUnavailable      = errors.New("ai advisor not configured")
	ErrUpstream           = errors.New("upstream failure")
	ErrTooManyImports     = errors.New("too many imports in progress, please try again later")
	ErrDecode             = errors.New("encoding error: no supported encoding matched")
	ErrNoColumnsDetected  = errors.New("no csv columns detected")
	ErrInvalidCSV         = errors.New("invalid csv")
	ErrNotCSV             = errors.New("file must be a csv")
	ErrFileTooLarge       = errors.New("file too large")
	ErrInvalidCredentials = &DomainError{Kind: ErrUnauthorized, Msg: "Incorrect email or password"}
)

// Frequently returned domain errors with fixed caller-facing text.
var (
	ErrCategoryNotFound    = &DomainError{Kind: ErrNotFound, Msg: "Category not found"}
	ErrTransactionNotFound = &DomainError{Kind: ErrNotFound, Msg: "Transaction not found"}
	ErrBudgetNotFound      = &DomainError{Kind: ErrNotFound, Msg: "Budget not found"}
	ErrHouseholdNotFound   = &DomainError{Kind: ErrNotFound, Msg: "Household not found"}
	ErrMemberNotFound      = &DomainError{Kind: ErrNotFound, Msg: "Member not found"}
	ErrUserNotFound        = &DomainError{Kind: ErrNotFound, Msg: "User not found"}
	ErrInvalidInviteCode   = &DomainError{Kind: ErrNotFound, Msg: "Invalid invite code"}
	ErrNotMember           = &DomainError{Kind: ErrForbidden, Msg: "Not a member of this household"}
	ErrEmailTaken          = &DomainError{Kind: ErrConflict, Msg: "Email already registered"}
	ErrAlreadyMember       = &DomainError{Kind: ErrConflict, Msg: "Already a member of this household"}
	ErrImportFieldsMissing = &DomainError{Kind: ErrInvalidInput, Msg: "date_column, amount_column, and category_id are required"}
	ErrDefaultCategory     = &DomainError{Kind: ErrInvalidInput, Msg: "Cannot modify default categories"}
	ErrDeleteDefault       = &DomainError{Kind: ErrInvalidInput, Msg: "Cannot delete default categories"}
)

// DomainError pairs an error kind with the message returned to the caller.
type DomainError struct {
	Kind error
	Msg  string
}

func (e *DomainError) Error() string { return e.Msg }

// Is reports whether target is this error's kind.
func (e *DomainError) Is(target error) bool { return target == e.Kind }

func forbidden(format string, args ...any) error {
	return &DomainError{Kind: ErrForbidden, Msg: fmt.Sprintf(format, args...)}
}

func upstream(format string, args ...any) error {
	return &DomainError{Kind: ErrUpstream, Msg: fmt.Sprintf(format, args...)}
}

func invalidInput(format string, args ...any) error {
	return &DomainError{Kind: ErrInvalidInput, Msg: fmt.Sprintf(format, args...)}
}

// RowError describes why a single CSV data row was not imported.
// Line is the 1-based line of the row in the file, header included.
type RowError struct {
	Line int
	Msg  string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Line, e.Msg)
}
