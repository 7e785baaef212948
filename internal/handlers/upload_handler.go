package handlers

import (
	"bytes"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/dance-school/internal/audit"
	"github.com/BruksfildServices01/dance-school/internal/httperr"
	"github.com/BruksfildServices01/dance-school/internal/httpresp"
	"github.com/BruksfildServices01/dance-school/internal/imaging"
	"github.com/BruksfildServices01/dance-school/internal/middleware"
	"github.com/BruksfildServices01/dance-school/internal/storage"
)

const MaxUploadBytes = 5 << 20

type UploadHandler struct {
	store storage.Uploader
	audit *audit.Dispatcher
	log   logrus.FieldLogger
}

// NewUploadHandler accepts a nil store; uploads then answer 503.
func NewUploadHandler(
	store storage.Uploader,
	audit *audit.Dispatcher,
	log logrus.FieldLogger,
) *UploadHandler {
	return &UploadHandler{store: store, audit: audit, log: log}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.store == nil {
		httperr.Unavailable(c, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "file_required", "Multipart field \"file\" is required.")
		return
	}
	if fh.Size <= 0 || fh.Size > MaxUploadBytes {
		httperr.BadRequest(c, "file_size_invalid", "Images must be between 1 byte and 5 MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	// Trust the bytes, not the client's Content-Type.
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		httperr.BadRequest(c, "file_not_image", "Only image uploads are allowed.")
		return
	}

	data, err = imaging.Fit(data, contentType, imaging.DefaultMaxWidth, imaging.DefaultMaxHeight)
	if err != nil {
		httperr.BadRequest(c, "file_not_image", "The image could not be read.")
		return
	}

	key := objectKey(time.Now().UTC(), contentType, fh.Filename)

	url, err := h.store.Upload(c.Request.Context(), key, contentType, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	ev := audit.Event{
		Action:   audit.ActionImageUploaded,
		Entity:   "upload",
		Metadata: map[string]any{"key": key, "size": len(data)},
	}
	if user, ok := middleware.CurrentUser(c); ok {
		ev.UserID = &user.ID
	}
	h.audit.Dispatch(ev)

	httpresp.Created(c, gin.H{"url": url, "key": key})
}

var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
	"image/bmp":  ".bmp",
}

// objectKey is images/YYYY/MM/<uuid><ext>. The extension comes from the
// detected type, falling back to the client's filename.
func objectKey(now time.Time, contentType, filename string) string {
	ext, ok := imageExt[contentType]
	if !ok {
		ext = strings.ToLower(path.Ext(filename))
	}
	return path.Join("images", now.Format("2006/01"), uuid.NewString()+ext)
}
