package core

// importer.go implements the confirm step of the CSV import.
//
// The flow for one request:
//  1. Validate the mapping and resolve the target category in the caller's scope
//  2. Take an import slot from the limiter
//  3. Decode and parse the file
//  4. Convert every row; bad rows are skipped and reported, never fatal
//  5. Store all converted rows and the import record in one transaction
//  6. Publish an import.completed event (best effort)

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxReportedRowErrors caps the row errors returned to the caller.
const MaxReportedRowErrors = 10

// ColumnMapping names the header columns holding each transaction field.
type ColumnMapping struct {
	DateColumn        string
	AmountColumn      string
	DescriptionColumn string
	DateFormat        string
}

// ImportRequest is the caller's choice of mapping and destination.
type ImportRequest struct {
	Mapping       ColumnMapping
	CategoryID    string
	HouseholdID   *uuid.UUID
	IsIncome      bool
	NegateAmounts bool
}

func (r ImportRequest) validate() error {
	if strings.TrimSpace(r.Mapping.DateColumn) == "" ||
		strings.TrimSpace(r.Mapping.AmountColumn) == "" ||
		strings.TrimSpace(r.CategoryID) == "" {
		return ErrImportFieldsMissing
	}
	return nil
}

// Candidate is a converted row ready to be stored.
type Candidate struct {
	Amount      decimal.Decimal
	Date        Date
	Description *string
}

// ImportOutcome summarizes a confirm call.
type ImportOutcome struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

func (o *ImportOutcome) recordError(err error) {
	o.Skipped++
	if len(o.Errors) < MaxReportedRowErrors {
		o.Errors = append(o.Errors, err.Error())
	}
}

// ImportRecord is the stored history entry of one confirm call.
type ImportRecord struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	HouseholdID *uuid.UUID `json:"household_id"`
	FileName    string     `json:"file_name"`
	Encoding    string     `json:"encoding"`
	Imported    int        `json:"imported"`
	Skipped     int        `json:"skipped"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewImportRecord is the input for storing an import history entry.
type NewImportRecord struct {
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	HouseholdID *uuid.UUID
	FileName    string
	Encoding    string
	Imported    int
	Skipped     int
}

// ConvertRows turns parsed rows into candidates. Rows without a date are
// skipped silently, as are rows whose amount is zero after sign handling.
// Rows that fail to convert are counted as skipped and the first
// MaxReportedRowErrors failures are reported in row order.
func ConvertRows(rows []ImportRow, m ColumnMapping, negate bool) ([]Candidate, ImportOutcome) {
	formats := DateFormats(m.DateFormat)
	outcome := ImportOutcome{Errors: []string{}}
	candidates := make([]Candidate, 0, len(rows))

	for _, row := range rows {
		cand, skip, err := convertRow(row, m, formats, negate)
		switch {
		case err != nil:
			outcome.recordError(err)
		case skip:
			outcome.Skipped++
		default:
			candidates = append(candidates, cand)
			outcome.Imported++
		}
	}
	return candidates, outcome
}

// convertRow converts one row. A panic while converting becomes a row error.
func convertRow(row ImportRow, m ColumnMapping, formats []string, negate bool) (cand Candidate, skip bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RowError{Line: row.Line(), Msg: fmt.Sprint(r)}
		}
	}()

	rawDate := CleanCell(row.Get(m.DateColumn))
	if rawDate == "" {
		return Candidate{}, true, nil
	}
	date, ok := ParseDate(rawDate, formats)
	if !ok {
		return Candidate{}, false, &RowError{
			Line: row.Line(),
			Msg:  fmt.Sprintf("Could not parse date '%s'", rawDate),
		}
	}

	rawAmount := CleanCell(row.Get(m.AmountColumn))
	amount, perr := ParseAmount(rawAmount)
	if perr != nil {
		return Candidate{}, false, &RowError{
			Line: row.Line(),
			Msg:  fmt.Sprintf("Invalid amount '%s'", rawAmount),
		}
	}
	if negate {
		amount = amount.Neg()
	}
	amount = amount.Abs()
	if !amount.IsPositive() {
		return Candidate{}, true, nil
	}

	cand = Candidate{Amount: amount, Date: date}
	if m.DescriptionColumn != "" {
		cand.Description = OptionalText(row.Get(m.DescriptionColumn))
	}
	return cand, false, nil
}

// ImportCSV runs the confirm step for userID. Fatal problems (missing
// fields, unknown category, undecodable file, no columns, storage failure)
// return an error and store nothing.
func (s *Service) ImportCSV(ctx context.Context, userID uuid.UUID, upload Upload, req ImportRequest) (*ImportOutcome, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	categoryID, err := uuid.Parse(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, ErrCategoryNotFound
	}

	// No category is visible through a household the caller is not in.
	scope, err := s.scopeFor(ctx, userID, req.HouseholdID)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	category, err := s.store.FindOwnedCategory(ctx, categoryID, scope)
	if err != nil {
		return nil, categoryLookupErr(err)
	}

	if err := s.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer s.limiter.Release()

	ctx, cancel := context.WithTimeout(ctx, s.importTimeout)
	defer cancel()

	ctx, logger := logging.WithFields(ctx,
		"file", upload.FileName,
		"category_id", category.ID,
		"client_ip", IPAddressFromContext(ctx),
		"user_agent", UserAgentFromContext(ctx),
	)

	decoded, err := Decode(upload.Data)
	if err != nil {
		return nil, err
	}

	table, err := DetectTable(decoded.Text, req.Mapping.DateColumn)
	if err != nil {
		return nil, err
	}

	mapping := req.Mapping
	if mapping.DateFormat == "" {
		mapping.DateFormat = s.defaultDateFormat
	}
	candidates, outcome := ConvertRows(table.Rows, mapping, req.NegateAmounts)

	txs := make([]NewTransaction, len(candidates))
	for i, c := range candidates {
		txs[i] = NewTransaction{
			UserID:      userID,
			CategoryID:  category.ID,
			HouseholdID: scope.HouseholdID,
			Amount:      c.Amount,
			Description: c.Description,
			Date:        c.Date,
			IsShared:    scope.IsShared(),
		}
	}

	record, err := s.store.SaveImport(ctx, NewImportRecord{
		UserID:      userID,
		CategoryID:  category.ID,
		HouseholdID: scope.HouseholdID,
		FileName:    upload.FileName,
		Encoding:    decoded.Encoding,
		Imported:    outcome.Imported,
		Skipped:     outcome.Skipped,
	}, txs)
	if err != nil {
		return nil, fmt.Errorf("save import: %w", err)
	}

	logger.Info("csv import committed",
		"import_id", record.ID,
		"encoding", decoded.Encoding,
		"delimiter", string(table.Delimiter),
		"is_income", req.IsIncome,
		"imported", outcome.Imported,
		"skipped", outcome.Skipped,
	)

	s.publishImport(ctx, record)
	return &outcome, nil
}

// ImportHistory lists the caller's most recent imports, newest first.
func (s *Service) ImportHistory(ctx context.Context, userID uuid.UUID, limit int) ([]ImportRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.store.ListImports(ctx, userID, limit)
}

func (s *Service) publishImport(ctx context.Context, record *ImportRecord) {
	if s.events == nil {
		return
	}
	event := ImportCompleted{
		ImportID:    record.ID,
		UserID:      record.UserID,
		CategoryID:  record.CategoryID,
		HouseholdID: record.HouseholdID,
		FileName:    record.FileName,
		Imported:    record.Imported,
		Skipped:     record.Skipped,
		CompletedAt: record.CreatedAt,
	}
	if err := s.events.PublishImportCompleted(ctx, event); err != nil {
		logging.FromContext(ctx).Warn("publish import event failed", "import_id", record.ID, "error", err)
	}
}

// categoryLookupErr maps any not-found lookup to ErrCategoryNotFound.
func categoryLookupErr(err error) error {
	if isNotFound(err) {
		return ErrCategoryNotFound
	}
	return fmt.Errorf("find category: %w", err)
}
