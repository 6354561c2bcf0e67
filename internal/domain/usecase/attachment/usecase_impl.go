package attachment

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/gateway/storage"
	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

var allowedTypes = []string{
	"image/png",
	"image/jpg",
	"image/jpeg",
	"image/gif",
	"image/svg",
	"image/svg+xml",
	"image/webp",
}

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type attachmentUseCase struct {
	gateway storage.ImageGateway
	now     func() time.Time
}

func NewAttachmentUseCase(gateway storage.ImageGateway) UseCase {
	return &attachmentUseCase{
		gateway: gateway,
		now:     time.Now,
	}
}

func (uc *attachmentUseCase) Store(files map[string][]*multipart.FileHeader, acceptedFields ...string) (string, error) {
	var file *multipart.FileHeader
	count := 0

	for field, headers := range files {
		if len(headers) == 0 {
			continue
		}
		if !slices.Contains(acceptedFields, field) {
			return "", &model.AttachmentError{Message: msg.GetMessage("attachment.error.unexpected-field", field)}
		}
		count += len(headers)
		file = headers[0]
	}

	if count == 0 {
		return "", nil
	}
	if count > 1 {
		return "", &model.AttachmentError{Message: msg.GetMessage("attachment.error.too-many-files")}
	}

	mediaType, err := detectMediaType(file)
	if err != nil {
		return "", err
	}
	if !slices.Contains(allowedTypes, mediaType) {
		return "", &model.AttachmentError{Message: msg.GetMessage("attachment.error.unsupported-type", mediaType)}
	}

	content, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("%s", msg.GetMessage("attachment.error.store-failed", err))
	}
	defer content.Close()

	name := fmt.Sprintf("%d-%s", uc.now().UnixMilli(), sanitizeFilename(file.Filename))
	reference, err := uc.gateway.Save(name, content)
	if err != nil {
		return "", fmt.Errorf("%s", msg.GetMessage("attachment.error.store-failed", err))
	}

	log.Info(msg.GetMessage("attachment.stored", reference), zap.String("type", mediaType), zap.Int64("size", file.Size))
	return reference, nil
}

func (uc *attachmentUseCase) Owns(reference string) bool {
	return uc.gateway.Manages(reference)
}

func (uc *attachmentUseCase) Remove(reference string) {
	if reference == "" || !uc.gateway.Manages(reference) {
		return
	}
	if err := uc.gateway.Delete(reference); err != nil {
		log.Error(msg.GetMessage("attachment.error.remove-failed", reference, err), zap.Error(err))
		return
	}
	log.Info(msg.GetMessage("attachment.removed", reference))
}

// detectMediaType trusts the declared part type and sniffs the content
// only when the client sent none or a generic one.
func detectMediaType(file *multipart.FileHeader) (string, error) {
	declared := file.Header.Get("Content-Type")
	if declared != "" {
		mediaType, _, err := mime.ParseMediaType(declared)
		if err == nil && mediaType != "application/octet-stream" {
			return strings.ToLower(mediaType), nil
		}
	}

	content, err := file.Open()
	if err != nil {
		return "", err
	}
	defer content.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(content, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(head[:n]))
	return mediaType, nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeNameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")
	if name == "" {
		return "image"
	}
	return name
}
