package filemgr

import "errors"

type FileKind string

const (
	KindDocument FileKind = "document"
	KindPicture  FileKind = "picture"
)

const (
	// MaxDocumentSize is the ceiling for resume/cover-letter/portfolio
	// uploads. Files are stored directly on disk, so the limit is an
	// operational choice, not a database constraint.
	MaxDocumentSize = 10 << 20

	// MaxPictureSize bounds profile picture uploads.
	MaxPictureSize = 2 << 20

	ThumbWidth = 150
)

var (
	AllowedExtensions = map[FileKind][]string{
		KindDocument: {".pdf", ".doc", ".docx", ".txt"},
		KindPicture:  {".jpg", ".jpeg", ".png", ".gif", ".webp"},
	}

	AllowedMIMEs = map[FileKind][]string{
		KindDocument: {
			"application/pdf", "application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			"text/plain",
		},
		KindPicture: {"image/jpeg", "image/png", "image/gif", "image/webp"},
	}

	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)
