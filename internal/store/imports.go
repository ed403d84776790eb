package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
)

func toImportRecord(row database.Import) *core.ImportRecord {
	return &core.ImportRecord{
		ID:          row.ID,
		UserID:      row.UserID,
		CategoryID:  row.CategoryID,
		HouseholdID: uuidPtr(row.HouseholdID),
		FileName:    row.FileName,
		Encoding:    row.Encoding,
		Imported:    int(row.Imported),
		Skipped:     int(row.Skipped),
		CreatedAt:   row.CreatedAt.Time,
	}
}

// SaveImport bulk-copies the transactions and records the import in one
// database transaction. Nothing is stored if any step fails.
func (s *Store) SaveImport(ctx context.Context, rec core.NewImportRecord, txs []core.NewTransaction) (*core.ImportRecord, error) {
	rows := make([]database.CopyTransactionsParams, len(txs))
	for i, t := range txs {
		rows[i] = database.CopyTransactionsParams{
			ID:          uuid.New(),
			Amount:      toPgNumeric(t.Amount),
			Description: toPgText(t.Description),
			Date:        toPgDate(t.Date),
			CategoryID:  t.CategoryID,
			UserID:      t.UserID,
			HouseholdID: toPgUUID(t.HouseholdID),
			IsShared:    t.IsShared,
		}
	}

	var saved database.Import
	err := s.inTx(ctx, func(q *database.Queries) error {
		if len(rows) > 0 {
			if _, err := q.CopyTransactions(ctx, rows); err != nil {
				return wrapErr("copy transactions", err)
			}
		}
		var err error
		saved, err = q.CreateImport(ctx, database.CreateImportParams{
			ID:          uuid.New(),
			UserID:      rec.UserID,
			CategoryID:  rec.CategoryID,
			HouseholdID: toPgUUID(rec.HouseholdID),
			FileName:    rec.FileName,
			Encoding:    rec.Encoding,
			Imported:    int32(rec.Imported),
			Skipped:     int32(rec.Skipped),
		})
		return wrapErr("record import", err)
	})
	if err != nil {
		return nil, err
	}
	return toImportRecord(saved), nil
}

// ListImports returns userID's most recent imports, newest first.
func (s *Store) ListImports(ctx context.Context, userID uuid.UUID, limit int) ([]core.ImportRecord, error) {
	rows, err := s.q.ListImports(ctx, database.ListImportsParams{UserID: userID, Limit: int32(limit)})
	if err != nil {
		return nil, wrapErr("list imports", err)
	}
	out := make([]core.ImportRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toImportRecord(row))
	}
	return out, nil
}
