package service

import (
	"context"
	"fmt"
	"io"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/store"
	"github.com/contactkeeper/go-contact-keeper/internal/upload"
	"github.com/contactkeeper/go-contact-keeper/models"
)

// avatarPublicIDPrefix namespaces avatar objects on the CDN. The full
// storage key is "avatars/<username>", so re-uploading overwrites the
// previous avatar of the same user.
const avatarPublicIDPrefix = "avatars/"

// avatarService is the concrete implementation of AvatarService.
// It forwards the uploaded image to the external CDN and persists the
// returned versioned URL on the user record.
type avatarService struct {
	userRepository store.UserRepository
	uploader       upload.Uploader
	logger         *logger.Logger
}

// NewAvatarService constructs an AvatarService on top of the given uploader
// and user repository.
func NewAvatarService(userRepository store.UserRepository, uploader upload.Uploader, logger *logger.Logger) AvatarService {
	return &avatarService{
		userRepository: userRepository,
		uploader:       uploader,
		logger:         logger,
	}
}

// UpdateAvatar uploads the image to the CDN under a key derived from the
// username (requesting a 250×250 fill-crop transform) and stores the
// resulting public URL on the user.
//
// Returns:
//   - ErrNoFileProvided when file is nil.
//   - ErrAvatarUploadFailed (wrapping the underlying cause) when the CDN
//     call fails.
//   - The updated user on success.
func (a *avatarService) UpdateAvatar(ctx context.Context, user models.User, file io.Reader) (models.User, error) {
	log := logger.FromContext(ctx)

	if file == nil {
		return models.User{}, ErrNoFileProvided
	}

	publicID := avatarPublicIDPrefix + user.Username
	avatarURL, err := a.uploader.Upload(ctx, file, publicID)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("avatar upload to CDN failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrAvatarUploadFailed, err)
	}

	updated, err := a.userRepository.UpdateAvatar(ctx, user.Email, avatarURL)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("persisting avatar URL failed")
		return models.User{}, fmt.Errorf("persisting avatar URL failed: %w", err)
	}

	return updated, nil
}
