package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único de PostgreSQL
// (SQLSTATE 23505). La usa el adaptador de usuarios para mapear un username
// repetido a domain.ErrDuplicate en lugar de un error de persistencia genérico.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
