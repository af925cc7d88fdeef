package http

import (
	"net/http"

	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/service"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
)

// maxAvatarMemory caps how much of the multipart body is buffered in memory
// before spilling to disk.
const maxAvatarMemory = 10 << 20 // 10 MiB

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if err := r.ParseMultipartForm(maxAvatarMemory); err != nil {
		log.Err(err).Msg("invalid multipart body")
		writeServiceError(w, r, service.ErrNoFileProvided)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no avatar file in request")
		writeServiceError(w, r, service.ErrNoFileProvided)
		return
	}
	defer file.Close()

	updated, err := h.services.AvatarService.UpdateAvatar(ctx, user, file)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", updated.UserID).Str("avatar_url", updated.AvatarURL).Msg("avatar updated")

	utils.WriteJSON(w, updated, http.StatusOK)
}
