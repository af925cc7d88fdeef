package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/contactkeeper/go-contact-keeper/internal/config"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/notify"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
	"github.com/contactkeeper/go-contact-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, email confirmation,
// and JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// dispatcher enqueues confirmation email sends onto the background mail
	// worker. May be nil in tests; registration then skips the send.
	dispatcher MailDispatcher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// publicHost is the externally reachable base URL used to build the
	// confirmation link embedded in registration email.
	publicHost string

	// accessTokenDuration controls the lifetime of login access tokens.
	accessTokenDuration time.Duration

	// confirmTokenDuration controls the lifetime of email-confirmation tokens.
	confirmTokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and mail dispatcher, populated with security parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, dispatcher MailDispatcher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		dispatcher:           dispatcher,
		tokenSignKey:         cfg.TokenSignKey,
		tokenIssuer:          cfg.TokenIssuer,
		publicHost:           cfg.PublicHost,
		accessTokenDuration:  cfg.AccessTokenDuration,
		confirmTokenDuration: cfg.ConfirmTokenDuration,
		logger:               logger,
	}
}

// RegisterUser creates a new unconfirmed user account.
//
// It validates that username, email, and password are non-empty, hashes the
// password with bcrypt, and delegates persistence to the UserRepository.
// On success a confirmation email send is enqueued on the mail dispatcher;
// the send happens outside the request/response cycle and its outcome never
// affects the returned result.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - A wrapped storage error if the repository call fails (e.g. email
//     already registered — see store.ErrEmailAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, username, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || email == "" || password == "" {
		log.Error().Str("username", username).Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username: username,
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.scheduleConfirmationEmail(ctx, registeredUser)

	return registeredUser, nil
}

// Login authenticates an existing user and issues an access token.
//
// Both an unknown email and a wrong password yield ErrInvalidCredentials so
// that the caller cannot probe for registered addresses. Login is not gated
// on email confirmation: an unconfirmed user can still log in.
func (a *authService) Login(ctx context.Context, email, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, ErrInvalidCredentials
	}

	if !utils.VerifyPassword(password, foundUser.Password) {
		log.Error().Int64("id", foundUser.UserID).Str("email", email).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.Email, a.accessTokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ConfirmEmail validates an email-confirmation token and marks the matching
// user as confirmed.
//
// Every failure mode — expired, tampered, malformed token, or a token whose
// subject matches no registered user — is normalised to ErrTokenInvalid.
// Re-confirming an already-confirmed user succeeds (idempotent in effect).
func (a *authService) ConfirmEmail(ctx context.Context, tokenString string) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("confirmation token rejected")
		return ErrTokenInvalid
	}

	if err := a.userRepository.ConfirmEmail(ctx, token.Email); err != nil {
		log.Err(err).Str("email", token.Email).Msg("email confirmation failed")
		return ErrTokenInvalid
	}

	return nil
}

// Authenticate resolves a bearer token string to the user it was issued for.
//
// It validates the token signature, expiry, and issuer, then looks up the
// user by the subject email claim. Any failure along the way — including a
// valid token for an email no longer present — collapses to ErrTokenInvalid.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Err(err).Msg("access token rejected")
		return models.User{}, ErrTokenInvalid
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Email)
	if err != nil {
		log.Err(err).Str("email", token.Email).Msg("no user for valid token subject")
		return models.User{}, ErrTokenInvalid
	}

	return user, nil
}

// scheduleConfirmationEmail issues a 24-hour confirmation token, builds the
// confirmation link, and hands the message to the background mail worker.
// Failures are logged and swallowed: email delivery never affects the
// registration request.
func (a *authService) scheduleConfirmationEmail(ctx context.Context, user models.User) {
	log := logger.FromContext(ctx)

	if a.dispatcher == nil {
		return
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Email, a.confirmTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("confirmation token creation failed, email skipped")
		return
	}

	confirmationURL := fmt.Sprintf("%s/auth/confirm_email/%s",
		strings.TrimRight(a.publicHost, "/"), token.SignedString)

	a.dispatcher.Enqueue(notify.ConfirmationEmail{
		To:              user.Email,
		Username:        user.Username,
		ConfirmationURL: confirmationURL,
	})
}
