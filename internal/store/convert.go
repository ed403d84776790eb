package store

import (
	"errors"
	"fmt"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// uniqueViolation is the Postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

// Helper functions for type conversion

func toPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func toPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func uuidPtr(u pgtype.UUID) *uuid.UUID {
	if !u.Valid {
		return nil
	}
	id := uuid.UUID(u.Bytes)
	return &id
}

func toPgDate(d core.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time, Valid: true}
}

func toPgDatePtr(d *core.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{Valid: false}
	}
	return toPgDate(*d)
}

func dateOf(d pgtype.Date) core.Date {
	if !d.Valid {
		return core.Date{}
	}
	return core.DateOf(d.Time)
}

func toPgBool(b *bool) pgtype.Bool {
	if b == nil {
		return pgtype.Bool{Valid: false}
	}
	return pgtype.Bool{Bool: *b, Valid: true}
}

func toPgInt4(i *int) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: int32(*i), Valid: true}
}

// toPgNumeric keeps the exact coefficient and exponent of d.
func toPgNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func toPgNumericPtr(d *decimal.Decimal) pgtype.Numeric {
	if d == nil {
		return pgtype.Numeric{Valid: false}
	}
	return toPgNumeric(*d)
}

// toDecimal reads a numeric column. NULL and NaN read as zero.
func toDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.NaN || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

// scopeArgs renders an access scope as the (user_id, household_id) pair
// every scoped query filters on.
func scopeArgs(scope core.AccessScope) (uuid.UUID, pgtype.UUID) {
	return scope.UserID, toPgUUID(scope.HouseholdID)
}

// wrapErr maps driver errors onto core errors so callers can classify them
// with errors.Is.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// isUniqueViolation reports whether err is a unique constraint failure on
// the named constraint (any constraint when name is empty).
func isUniqueViolation(err error, name string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return name == "" || pgErr.ConstraintName == name
}
