// Package sqlerr classifies database driver errors.
//
// Repositories pass every failed statement through Classify so that callers
// can tell a constraint violation (bad input) from an unreachable database
// (retry later) with errors.Is, without importing driver packages.
package sqlerr

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrConstraint matches any *Error.
	ErrConstraint = errors.New("constraint violation")
	// ErrUnavailable marks connectivity failures and timeouts.
	ErrUnavailable = errors.New("database unavailable")
)

type Code int

const (
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	default:
		return "other"
	}
}

// Error is a constraint violation reported by the database.
type Error struct {
	Code       Code
	Table      string
	Column     string
	Constraint string
	Message    string

	driverErr error
}

func (e *Error) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("%s on %s (%s): %s", e.Code, e.Table, e.Constraint, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() []error {
	if e.driverErr == nil {
		return []error{ErrConstraint}
	}
	return []error{ErrConstraint, e.driverErr}
}

// MapCode maps a Postgres SQLSTATE to a Code.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return Other
	}
}

// Classify wraps err so it matches ErrConstraint or ErrUnavailable where
// applicable. gorm.ErrRecordNotFound and unrecognized errors pass through
// unchanged; nil stays nil.
func Classify(err error) error {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPg(pgErr, err)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &Error{Code: UniqueViolation, Message: err.Error(), driverErr: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &Error{Code: ForeignKeyViolation, Message: err.Error(), driverErr: err}
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return &Error{Code: CheckViolation, Message: err.Error(), driverErr: err}
	}

	if isUnavailable(err) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func classifyPg(pgErr *pgconn.PgError, err error) error {
	if code := MapCode(pgErr.Code); code != Other {
		return &Error{
			Code:       code,
			Table:      pgErr.TableName,
			Column:     pgErr.ColumnName,
			Constraint: pgErr.ConstraintName,
			Message:    pgErr.Message,
			driverErr:  err,
		}
	}

	// Class 08 is connection exceptions; 57P01..57P03 are admin/crash shutdown
	// and "cannot connect now".
	if len(pgErr.Code) == 5 && (pgErr.Code[:2] == "08" || pgErr.Code[:4] == "57P0") {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr)
}

// ErrCode reports the Code of the first *Error in err's chain.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}
