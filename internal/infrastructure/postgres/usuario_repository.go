package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Restobar-api/internal/domain"
	"github.com/jhoicas/Restobar-api/internal/domain/entity"
	"github.com/jhoicas/Restobar-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// BuscarPorEmail devuelve nil, nil si el usuario no existe.
func (r *UsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	const query = `
	SELECT id, email, password_hash, nombre, rol, estado, creado_en, actualizado_en
	FROM usuarios WHERE email = $1 LIMIT 1`

	var u entity.Usuario
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Nombre, &u.Rol, &u.Estado,
		&u.CreadoEn, &u.ActualizadoEn,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, consultaFallida("usuarios.BuscarPorEmail", err)
	}
	return &u, nil
}

// Crear persiste un nuevo usuario.
func (r *UsuarioRepo) Crear(ctx context.Context, usuario *entity.Usuario) error {
	const query = `
	INSERT INTO usuarios (id, email, password_hash, nombre, rol, estado, creado_en, actualizado_en)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		usuario.ID, usuario.Email, usuario.PasswordHash, usuario.Nombre,
		usuario.Rol, usuario.Estado, usuario.CreadoEn, usuario.ActualizadoEn,
	)
	if err != nil {
		if esViolacionUnicidad(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("usuarios.Crear: %w", err)
	}
	return nil
}
