package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/service"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, username, email, password string) (models.User, error)
	loginFn        func(ctx context.Context, email, password string) (models.Token, error)
	confirmEmailFn func(ctx context.Context, tokenString string) error
	authenticateFn func(ctx context.Context, tokenString string) (models.User, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, username, email, password string) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, username, email, password)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) ConfirmEmail(ctx context.Context, tokenString string) error {
	if m.confirmEmailFn != nil {
		return m.confirmEmailFn(ctx, tokenString)
	}
	return nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, tokenString)
	}
	return models.User{}, service.ErrTokenInvalid
}

// ─────────────────────────────────────────────
// Mock: service.ContactService
// ─────────────────────────────────────────────

type mockContactService struct {
	createContactFn     func(ctx context.Context, contact models.Contact) (models.Contact, error)
	listContactsFn      func(ctx context.Context, skip, limit int) ([]models.Contact, error)
	getContactFn        func(ctx context.Context, contactID int64) (models.Contact, error)
	updateContactFn     func(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error)
	deleteContactFn     func(ctx context.Context, contactID int64) (models.Contact, error)
	searchContactsFn    func(ctx context.Context, query string) ([]models.Contact, error)
	upcomingBirthdaysFn func(ctx context.Context) ([]models.Contact, error)
}

func (m *mockContactService) CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	if m.createContactFn != nil {
		return m.createContactFn(ctx, contact)
	}
	return contact, nil
}

func (m *mockContactService) ListContacts(ctx context.Context, skip, limit int) ([]models.Contact, error) {
	if m.listContactsFn != nil {
		return m.listContactsFn(ctx, skip, limit)
	}
	return nil, nil
}

func (m *mockContactService) GetContact(ctx context.Context, contactID int64) (models.Contact, error) {
	if m.getContactFn != nil {
		return m.getContactFn(ctx, contactID)
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *mockContactService) UpdateContact(ctx context.Context, contactID int64, contact models.Contact) (models.Contact, error) {
	if m.updateContactFn != nil {
		return m.updateContactFn(ctx, contactID, contact)
	}
	return contact, nil
}

func (m *mockContactService) DeleteContact(ctx context.Context, contactID int64) (models.Contact, error) {
	if m.deleteContactFn != nil {
		return m.deleteContactFn(ctx, contactID)
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *mockContactService) SearchContacts(ctx context.Context, query string) ([]models.Contact, error) {
	if m.searchContactsFn != nil {
		return m.searchContactsFn(ctx, query)
	}
	return nil, nil
}

func (m *mockContactService) UpcomingBirthdays(ctx context.Context) ([]models.Contact, error) {
	if m.upcomingBirthdaysFn != nil {
		return m.upcomingBirthdaysFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.AvatarService
// ─────────────────────────────────────────────

type mockAvatarService struct {
	updateAvatarFn func(ctx context.Context, user models.User, file io.Reader) (models.User, error)
}

func (m *mockAvatarService) UpdateAvatar(ctx context.Context, user models.User, file io.Reader) (models.User, error) {
	if m.updateAvatarFn != nil {
		return m.updateAvatarFn(ctx, user, file)
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given mocks. The rate limiter is
// nil: these tests exercise the handlers directly, never through Init.
func newTestHandler(auth service.AuthService, contacts service.ContactService, avatars service.AvatarService) *Handler {
	if auth == nil {
		auth = &mockAuthService{}
	}
	if contacts == nil {
		contacts = &mockContactService{}
	}
	if avatars == nil {
		avatars = &mockAvatarService{}
	}

	return NewHandler(&service.Services{
		AuthService:    auth,
		ContactService: contacts,
		AvatarService:  avatars,
	}, nil, logger.Nop())
}

// withURLParam attaches a chi route parameter to the request context so that
// handlers can be called without mounting the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeErrorDetail extracts the "detail" field from a structured error body.
func decodeErrorDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}
