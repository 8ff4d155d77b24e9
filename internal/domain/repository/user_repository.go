package repository

import "github.com/U-Yash/Eyewear-Product-Management/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
	List(limit, offset int) ([]*entity.User, error)
	UpdateRole(id, role string) error
	UpdateStatus(id, status string) error
	Delete(id string) error
}
