// Package storage uploads gallery images to Cloudinary using its signed
// upload endpoint.
package storage

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"
	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/errs"
)

const uploadTimeout = 30 * time.Second

type ImageUploader interface {
	UploadBase64(ctx context.Context, base64Image, publicID string) (string, error)
}

type CloudinaryUploader struct {
	cloudName string
	apiKey    string
	apiSecret string
	folder    string
	client    *http.Client
}

func NewCloudinaryUploader(cfg config.StorageConfig) *CloudinaryUploader {
	return &CloudinaryUploader{
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		folder:    cfg.Folder,
		client:    &http.Client{Timeout: uploadTimeout},
	}
}

// UploadBase64 accepts a raw or data-URI base64 payload and returns the
// secure URL of the stored image.
func (u *CloudinaryUploader) UploadBase64(ctx context.Context, base64Image, publicID string) (string, error) {
	if base64Image == "" {
		return "", errs.New("empty image payload")
	}
	if u.cloudName == "" || u.apiKey == "" || u.apiSecret == "" {
		return "", errs.New("storage credentials not configured")
	}

	payload := base64Image
	if i := strings.Index(base64Image, ","); i != -1 {
		payload = base64Image[i+1:]
	}

	if u.folder != "" {
		publicID = u.folder + "/" + publicID
	}

	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(
		fmt.Sprintf("public_id=%s&timestamp=%s%s", publicID, timestamp, u.apiSecret),
	)))

	form := url.Values{}
	form.Add("file", "data:image/jpeg;base64,"+payload)
	form.Add("api_key", u.apiKey)
	form.Add("public_id", publicID)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + u.cloudName + "/image/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build upload request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := u.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "upload request failed")
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read upload response")
	}

	if res.StatusCode != http.StatusOK {
		return "", errs.New(fmt.Sprintf("upload rejected with status %d", res.StatusCode))
	}

	var uploadRes struct {
		SecureURL string `json:"secure_url"`
		Error     struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &uploadRes); err != nil {
		return "", errs.Wrap(err, "failed to decode upload response")
	}
	if uploadRes.Error.Message != "" {
		return "", errs.New(uploadRes.Error.Message)
	}

	return uploadRes.SecureURL, nil
}
