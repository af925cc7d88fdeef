package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/contactkeeper/go-contact-keeper/internal/service"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
	"github.com/contactkeeper/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// avatarRequest builds an authenticated multipart PATCH request carrying the
// image under the given form field name.
func avatarRequest(t *testing.T, fieldName string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, "avatar.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPatch, "/contacts/avatar", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	user := models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}
	return req.WithContext(context.WithValue(req.Context(), utils.UserCtxKey, user))
}

func TestUpdateAvatar_Success(t *testing.T) {
	const avatarURL = "https://res.cloudinary.com/demo/image/upload/v1/avatars/alice"

	avatars := &mockAvatarService{
		updateAvatarFn: func(_ context.Context, user models.User, file io.Reader) (models.User, error) {
			require.NotNil(t, file)
			content, err := io.ReadAll(file)
			require.NoError(t, err)
			require.Equal(t, "png-bytes", string(content))

			user.AvatarURL = avatarURL
			return user, nil
		},
	}
	h := newTestHandler(nil, nil, avatars)

	rec := httptest.NewRecorder()
	h.updateAvatar(rec, avatarRequest(t, "file"))

	require.Equal(t, http.StatusOK, rec.Code)

	var updated map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, avatarURL, updated["avatar_url"])
}

func TestUpdateAvatar_NoAuthenticatedUser(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPatch, "/contacts/avatar", nil)
	rec := httptest.NewRecorder()

	h.updateAvatar(rec, req)

	requireUnauthorized(t, rec)
}

func TestUpdateAvatar_WrongFieldName(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	rec := httptest.NewRecorder()
	h.updateAvatar(rec, avatarRequest(t, "image"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrNoFileProvided.Error(), decodeErrorDetail(t, rec))
}

func TestUpdateAvatar_NotMultipart(t *testing.T) {
	h := newTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPatch, "/contacts/avatar", strings.NewReader("raw bytes"))
	user := models.User{UserID: 1, Username: "alice", Email: "alice@example.com"}
	req = req.WithContext(context.WithValue(req.Context(), utils.UserCtxKey, user))
	rec := httptest.NewRecorder()

	h.updateAvatar(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, service.ErrNoFileProvided.Error(), decodeErrorDetail(t, rec))
}

func TestUpdateAvatar_UploadFailure(t *testing.T) {
	avatars := &mockAvatarService{
		updateAvatarFn: func(_ context.Context, _ models.User, _ io.Reader) (models.User, error) {
			return models.User{}, fmt.Errorf("%w: CDN rejected upload: 500 Internal Server Error", service.ErrAvatarUploadFailed)
		},
	}
	h := newTestHandler(nil, nil, avatars)

	rec := httptest.NewRecorder()
	h.updateAvatar(rec, avatarRequest(t, "file"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// upload failures keep the underlying cause in the response detail
	assert.Contains(t, decodeErrorDetail(t, rec), service.ErrAvatarUploadFailed.Error())
	assert.Contains(t, decodeErrorDetail(t, rec), "CDN rejected upload")
}
