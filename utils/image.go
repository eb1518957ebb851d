package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"lmsadmin/config"
	courseModels "lmsadmin/models/course"

	"github.com/gabriel-vasile/mimetype"
)

// ReadImageUpload validates an uploaded file as an image within the size cap
// and converts it to a data-URI payload. The server receives embedded image
// data as part of the course document; nothing is written to disk here.
func ReadImageUpload(file *multipart.FileHeader) (courseModels.ImagePayload, error) {
	maxBytes := int64(config.AppConfig.MaxImageSizeMB) << 20
	if file.Size > maxBytes {
		return courseModels.ImagePayload{}, fmt.Errorf("image exceeds the %dMB limit", config.AppConfig.MaxImageSizeMB)
	}

	src, err := file.Open()
	if err != nil {
		return courseModels.ImagePayload{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxBytes+1))
	if err != nil {
		return courseModels.ImagePayload{}, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(raw)) > maxBytes {
		return courseModels.ImagePayload{}, fmt.Errorf("image exceeds the %dMB limit", config.AppConfig.MaxImageSizeMB)
	}

	mime := mimetype.Detect(raw)
	if !strings.HasPrefix(mime.String(), "image/") {
		return courseModels.ImagePayload{}, fmt.Errorf("unsupported file type %s; only images are accepted", mime.String())
	}

	dataURI := "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(raw)
	return courseModels.ImagePayload{
		Data:        dataURI,
		ContentType: mime.String(),
		Size:        int64(len(raw)),
	}, nil
}
