package filemgr

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveFile validates and writes one upload to destDir, returning the stored
// filename. Extension and sniffed MIME type must both be allowed for the
// kind; the copy is cut off at maxSize.
func SaveFile(reader io.Reader, header *multipart.FileHeader, destDir string, kind FileKind, maxSize int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isExtensionAllowed(ext, kind) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidExtension, ext, kind)
	}
	if maxSize > 0 && header.Size > maxSize {
		return "", ErrFileTooLarge
	}

	buf := make([]byte, 512)
	n, err := reader.Read(buf)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read header: %w", err)
	}
	mimeType := http.DetectContentType(buf[:n])
	// OOXML documents (.docx) are ZIP containers, so the sniff reports zip;
	// like octet-stream, fall back to the declared type, which still has to
	// pass the allow-list below.
	if mimeType == "application/octet-stream" || mimeType == "application/zip" {
		if formMime := header.Header.Get("Content-Type"); formMime != "" {
			mimeType = formMime
		}
	}
	if !isMIMEAllowed(mimeType, kind) {
		return "", fmt.Errorf("%w: %s for %s", ErrInvalidMIME, mimeType, kind)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", destDir, err)
	}

	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), ensureSafeFilename(header.Filename, ext))
	fullPath := filepath.Join(destDir, filename)
	out, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", fullPath, err)
	}
	defer out.Close()

	if _, err := out.Write(buf[:n]); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}

	written, err := io.Copy(out, io.LimitReader(reader, maxSize-int64(n)+1))
	if err != nil {
		return "", fmt.Errorf("write body: %w", err)
	}
	if maxSize > 0 && written+int64(n) > maxSize {
		os.Remove(fullPath)
		return "", ErrFileTooLarge
	}

	return filename, nil
}

// SaveDocument stores one attachment under
// <root>/<collection>/<slot>/<ownerID>/<timestamp>_<filename> and returns the
// retrievable URL path.
func SaveDocument(file multipart.File, header *multipart.FileHeader, collection, slot, ownerID string) (string, error) {
	defer file.Close()

	if ownerID == "" {
		ownerID = "anonymous"
	}
	destDir := filepath.Join(UploadsRoot(), collection, slot, ownerID)

	filename, err := SaveFile(file, header, destDir, KindDocument, MaxDocumentSize)
	if err != nil {
		return "", err
	}

	return "/" + filepath.ToSlash(filepath.Join(destDir, filename)), nil
}

// FormFile opens the named upload from a parsed multipart form. A nil return
// with no error means the field was left empty.
func FormFile(form *multipart.Form, key string) (multipart.File, *multipart.FileHeader, error) {
	if form == nil || len(form.File[key]) == 0 {
		return nil, nil, nil
	}
	header := form.File[key][0]
	file, err := header.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", key, err)
	}
	return file, header, nil
}
