package repository

import (
	"context"

	"github.com/jhoicas/Restobar-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios (auth).
type UsuarioRepository interface {
	// BuscarPorEmail devuelve nil, nil si el usuario no existe.
	BuscarPorEmail(ctx context.Context, email string) (*entity.Usuario, error)
	Crear(ctx context.Context, usuario *entity.Usuario) error
}
