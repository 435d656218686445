package repository

import "github.com/devyansh/etransport-api/internal/domain/entity"

// UserRepository defines the persistence port for User.
// Lookups return (nil, nil) when no row matches.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
