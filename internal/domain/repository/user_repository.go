package repository

import "github.com/jpcastillo/warehouse-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByEmail devuelve nil si el email no existe.
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
}
