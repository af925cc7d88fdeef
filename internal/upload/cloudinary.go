// Package upload integrates with the external image CDN that stores user
// avatars. The CDN is an opaque collaborator behind the narrow Uploader
// interface; only the signed HTTP upload call and the public delivery URL
// format are implemented here.
package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/contactkeeper/go-contact-keeper/internal/config"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/go-resty/resty/v2"
)

const (
	// apiBaseURL is the Cloudinary upload API endpoint root; the cloud name
	// is appended per account.
	apiBaseURL = "https://api.cloudinary.com/v1_1"

	// deliveryBaseURL is the public CDN root used to build versioned
	// delivery URLs.
	deliveryBaseURL = "https://res.cloudinary.com"

	// avatarTransformation requests a 250×250 fill crop: the image is
	// resized and cropped to exactly fill the target dimensions.
	avatarTransformation = "c_fill,h_250,w_250"
)

// Uploader stores an image under the given public ID and returns its public
// URL. Implementations must treat the image bytes as opaque.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, publicID string) (string, error)
}

// CloudinaryClient is the production Uploader backed by the Cloudinary
// HTTP upload API.
type CloudinaryClient struct {
	client *resty.Client
	cfg    config.Cloudinary
	logger *logger.Logger

	// now returns the current time, used for the signed timestamp
	// parameter. Injected for tests; defaults to time.Now.
	now func() time.Time
}

// uploadResponse is the subset of Cloudinary's upload response the
// application needs to build the versioned delivery URL.
type uploadResponse struct {
	PublicID string `json:"public_id"`
	Version  int64  `json:"version"`
}

// NewCloudinaryClient constructs a CloudinaryClient for the configured
// account.
func NewCloudinaryClient(cfg config.Cloudinary, logger *logger.Logger) *CloudinaryClient {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("%s/%s", apiBaseURL, cfg.CloudName)).
		SetTimeout(30 * time.Second)

	return &CloudinaryClient{
		client: client,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Upload sends the image to the CDN with a signed multipart request,
// overwriting any previous object under the same public ID, and returns the
// versioned public delivery URL.
func (c *CloudinaryClient) Upload(ctx context.Context, file io.Reader, publicID string) (string, error) {
	log := logger.FromContext(ctx)

	params := map[string]string{
		"overwrite":      "true",
		"public_id":      publicID,
		"timestamp":      strconv.FormatInt(c.now().Unix(), 10),
		"transformation": avatarTransformation,
	}
	params["signature"] = signParams(params, c.cfg.APISecret)
	params["api_key"] = c.cfg.APIKey

	var result uploadResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("file", "avatar", file).
		SetFormData(params).
		SetResult(&result).
		Post("/image/upload")
	if err != nil {
		log.Err(err).Str("public_id", publicID).Msg("CDN upload request failed")
		return "", fmt.Errorf("CDN upload request failed: %w", err)
	}

	if resp.IsError() {
		log.Error().Str("public_id", publicID).Str("status", resp.Status()).Msg("CDN rejected upload")
		return "", fmt.Errorf("CDN rejected upload: %s", resp.Status())
	}

	return c.deliveryURL(result), nil
}

// deliveryURL builds the versioned public URL for an uploaded image,
// e.g. https://res.cloudinary.com/<cloud>/image/upload/v123/avatars/john.
func (c *CloudinaryClient) deliveryURL(r uploadResponse) string {
	return fmt.Sprintf("%s/%s/image/upload/v%d/%s",
		deliveryBaseURL, c.cfg.CloudName, r.Version, r.PublicID)
}

// signParams computes the Cloudinary request signature: parameters sorted by
// key, joined as key=value pairs with "&", the API secret appended, and the
// whole string hashed with SHA-1. The api_key and file parameters are never
// part of the signed string.
func signParams(params map[string]string, apiSecret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + apiSecret))
	return hex.EncodeToString(sum[:])
}
