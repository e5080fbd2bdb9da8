package filestorage

import (
	"errors"
	"mime/multipart"
)

// ErrUnsupportedFileType is returned when an upload's extension is not allowed
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ImageExtensions are the extensions accepted for course thumbnails
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath stores the upload under path and returns the URL it is served at
	SaveFileWithPath(fileHeader *multipart.FileHeader, path string) (string, error)

	// DeleteFile removes a previously saved file given its URL
	DeleteFile(fileURL string) error

	// GetFullPath returns the full filesystem path for a given file URL
	GetFullPath(fileURL string) string
}
