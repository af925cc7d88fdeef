package store

import (
	"context"

	"github.com/contactkeeper/go-contact-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ConfirmEmail(ctx context.Context, email string) error
	UpdateAvatar(ctx context.Context, email, avatarURL string) (models.User, error)
}

// ContactRepository is the persistence contract for address-book entries.
type ContactRepository interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	GetContacts(ctx context.Context, skip, limit int) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) (models.Contact, error)
	SearchContacts(ctx context.Context, query string) ([]models.Contact, error)
	GetAllContacts(ctx context.Context) ([]models.Contact, error)
}
