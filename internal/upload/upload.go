package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize caps uploads at 5MB.
const MaxFileSize = 5 * 1024 * 1024

// PublicPrefix is the URL path uploaded files are served under.
const PublicPrefix = "/uploads"

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Error marks an upload rejected by validation (type or size) as opposed to
// an IO failure; handlers map it to a 400 with the message as-is.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// ErrFileTooLarge is returned when an upload exceeds MaxFileSize.
var ErrFileTooLarge = &Error{msg: "File too large. Maximum file size is 5MB."}

// IsRejected reports whether err is an upload validation rejection.
func IsRejected(err error) bool {
	var ue *Error
	return errors.As(err, &ue)
}

// Saver writes validated multipart image uploads to a local directory.
type Saver struct {
	dir string
}

// NewSaver creates a Saver, ensuring the upload directory exists.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// SaveImage validates and stores an uploaded image, returning its public
// path. The content type is sniffed from the bytes, not trusted from the
// request. Filenames follow {field}-{timestamp}-{random}{ext} to avoid
// collisions.
func (s *Saver) SaveImage(file *multipart.FileHeader, field string) (string, error) {
	if file.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("detect upload type: %w", err)
	}
	if !allowedTypes[mtype.String()] {
		return "", &Error{msg: fmt.Sprintf("Invalid file type. Only JPEG, PNG, GIF and WebP are allowed. You uploaded: %s", mtype.String())}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	filename := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Int63n(1e9), mtype.Extension())
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return PublicPrefix + "/" + filename, nil
}

// Dir returns the local directory uploads are written to.
func (s *Saver) Dir() string {
	return s.dir
}
