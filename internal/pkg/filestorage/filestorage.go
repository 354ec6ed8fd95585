package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for persisting uploaded files
type FileStorage interface {
	// SaveFile persists an uploaded file and returns the generated filename
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file by its generated filename
	DeleteFile(filename string) error
}
