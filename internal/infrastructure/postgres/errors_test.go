package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Restobar-api/internal/domain"
)

func TestConsultaFallida_MarcaDatosNoDisponibles(t *testing.T) {
	causa := errors.New("connection refused")
	err := consultaFallida("ventas.VentasPorProducto", causa)

	assert.True(t, errors.Is(err, domain.ErrDataUnavailable))
	assert.True(t, errors.Is(err, causa), "conserva la causa original en la cadena")
	assert.Contains(t, err.Error(), "ventas.VentasPorProducto")
}

func TestEsViolacionUnicidad(t *testing.T) {
	assert.True(t, esViolacionUnicidad(&pgconn.PgError{Code: "23505"}))
	assert.True(t, esViolacionUnicidad(fmt.Errorf("usuarios.Crear: %w", &pgconn.PgError{Code: "23505"})))

	assert.False(t, esViolacionUnicidad(&pgconn.PgError{Code: "23503"}))
	assert.False(t, esViolacionUnicidad(errors.New("sin código pg")))
}
