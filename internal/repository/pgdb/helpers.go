package pgdb

import (
	"errors"

	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/jackc/pgx/v5/pgconn"
)

// Коды SQLSTATE, которые отдаёт PostgreSQL при нарушении ограничений.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
)

// constraintErr классифицирует ошибку PostgreSQL по SQLSTATE, сохраняя
// имя нарушенного ограничения в тексте. Остальные ошибки возвращаются как есть.
func constraintErr(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolationCode:
		return e.Wrap(pgErr.ConstraintName, e.ErrUniqueViolation)
	case checkViolationCode:
		return e.Wrap(pgErr.ConstraintName, e.ErrCheckViolation)
	case foreignKeyViolationCode:
		return e.Wrap(pgErr.ConstraintName, e.ErrForeignKeyViolation)
	default:
		return err
	}
}

func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
