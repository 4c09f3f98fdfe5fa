package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Restobar-api/internal/domain"
)

// consultaFallida envuelve la falla de una consulta de lectura con
// ErrDataUnavailable: el dato puede existir pero la fuente no pudo responder.
// Conserva la causa original en la cadena de errores.
func consultaFallida(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDataUnavailable, err)
}

// esViolacionUnicidad detecta la violación de constraint único de PostgreSQL (23505).
func esViolacionUnicidad(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
