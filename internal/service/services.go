package service

import (
	"github.com/contactkeeper/go-contact-keeper/internal/config"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/internal/upload"
)

// Services aggregates every application service behind its interface so the
// transport layer depends on a single constructor-injected value.
type Services struct {
	AuthService    AuthService
	ContactService ContactService
	AvatarService  AvatarService
}

// NewServices wires all services to their repositories and external
// collaborators.
func NewServices(storages *store.Storages, dispatcher MailDispatcher, uploader upload.Uploader, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, dispatcher, cfg.App, logger),
		ContactService: NewContactService(storages.ContactRepository, logger),
		AvatarService:  NewAvatarService(storages.UserRepository, uploader, logger),
	}
}
