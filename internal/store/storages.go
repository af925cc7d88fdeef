package store

import (
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
)

// Storages aggregates all repositories behind their interfaces so that the
// service layer depends on a single constructor-injected value.
type Storages struct {
	UserRepository    UserRepository
	ContactRepository ContactRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ContactRepository: NewContactRepository(db, logger),
	}
}
