package service

import (
	"context"
	"io"

	"github.com/contactkeeper/go-contact-keeper/internal/notify"
	"github.com/contactkeeper/go-contact-keeper/models"
)

// AuthService covers the account lifecycle: registration, login,
// email confirmation, and per-request bearer-token authentication.
type AuthService interface {
	// RegisterUser creates an unconfirmed account and schedules the
	// confirmation email as a fire-and-forget background send.
	RegisterUser(ctx context.Context, username, email, password string) (models.User, error)

	// Login verifies credentials and issues a short-lived access token
	// whose subject claim is the user's email.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// ConfirmEmail redeems an email-confirmation token, marking the
	// matching user as confirmed. Idempotent in effect.
	ConfirmEmail(ctx context.Context, tokenString string) error

	// Authenticate resolves a bearer token to the user it was issued for.
	// Used by the authentication middleware on every protected route.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// ContactService exposes the address-book operations. Contacts are not
// scoped to the authenticated user: every caller sees the same table.
type ContactService interface {
	CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error)
	ListContacts(ctx context.Context, skip, limit int) ([]models.Contact, error)
	GetContact(ctx context.Context, contactID int64) (models.Contact, error)
	UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error)
	DeleteContact(ctx context.Context, contactID int64) (models.Contact, error)
	SearchContacts(ctx context.Context, query string) ([]models.Contact, error)
	UpcomingBirthdays(ctx context.Context) ([]models.Contact, error)
}

// AvatarService uploads a user's avatar image to the external CDN and
// persists the resulting public URL on the user record.
type AvatarService interface {
	UpdateAvatar(ctx context.Context, user models.User, file io.Reader) (models.User, error)
}

// MailDispatcher is the narrow seam between the auth service and the
// background mail worker. Enqueue must never block the caller.
type MailDispatcher interface {
	Enqueue(msg notify.ConfirmationEmail)
}
