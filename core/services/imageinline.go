// ABOUTME: Image inlining service for embedding a record's top image as a data URL
// ABOUTME: Bounded by a byte ceiling; keeps the original URL on overflow or failure

package services

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"clipper-app-api/core/domain"
	"clipper-app-api/core/interfaces"
)

// DefaultImageInlineMaxBytes bounds how large a fetched top image may be
// before inlining is abandoned and the URL kept as-is.
const DefaultImageInlineMaxBytes = 1 << 20

// ImageInlineService fetches a record's top image and rewrites it into a
// base64 data URL so saved articles stay self-contained.
type ImageInlineService struct {
	deps     interfaces.Dependencies
	maxBytes int64
}

// NewImageInlineService creates an image inline service. A non-positive
// maxBytes falls back to DefaultImageInlineMaxBytes.
func NewImageInlineService(deps interfaces.Dependencies, maxBytes int64) *ImageInlineService {
	if maxBytes <= 0 {
		maxBytes = DefaultImageInlineMaxBytes
	}
	return &ImageInlineService{
		deps:     deps,
		maxBytes: maxBytes,
	}
}

// InlineTopImage replaces record.TopImage with a data URL when the image
// can be fetched within the byte ceiling. Any failure leaves the record
// unchanged; inlining is best-effort.
func (s *ImageInlineService) InlineTopImage(ctx context.Context, record *domain.ArticleRecord) {
	if record == nil || record.TopImage == "" {
		return
	}
	if strings.HasPrefix(record.TopImage, "data:") {
		return
	}
	if s.deps.HTTPClient == nil {
		return
	}

	resp, err := s.deps.HTTPClient.Get(ctx, record.TopImage)
	if err != nil {
		s.logDebug("top image fetch failed", map[string]interface{}{
			"url":   record.TopImage,
			"error": err.Error(),
		})
		return
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusOK {
		s.logDebug("top image fetch returned non-OK status", map[string]interface{}{
			"url":    record.TopImage,
			"status": resp.StatusCode(),
		})
		return
	}

	// Read one byte past the ceiling to detect overflow.
	data, err := io.ReadAll(io.LimitReader(body, s.maxBytes+1))
	if err != nil {
		s.logDebug("top image read failed", map[string]interface{}{
			"url":   record.TopImage,
			"error": err.Error(),
		})
		return
	}
	if int64(len(data)) > s.maxBytes {
		s.logDebug("top image exceeds inline ceiling, keeping URL", map[string]interface{}{
			"url":      record.TopImage,
			"maxBytes": s.maxBytes,
		})
		return
	}
	if len(data) == 0 {
		return
	}

	contentType := resp.Header("Content-Type")
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
		if !strings.HasPrefix(contentType, "image/") {
			s.logDebug("top image response is not an image", map[string]interface{}{
				"url":         record.TopImage,
				"contentType": contentType,
			})
			return
		}
	}

	record.TopImage = "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

func (s *ImageInlineService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}
