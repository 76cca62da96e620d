package filemgr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// SaveProfilePicture stores a user's picture plus a JPEG thumbnail and
// returns both URL paths.
func SaveProfilePicture(file multipart.File, header *multipart.FileHeader, userID string) (string, string, error) {
	defer file.Close()

	buf, err := io.ReadAll(io.LimitReader(file, MaxPictureSize+1))
	if err != nil {
		return "", "", fmt.Errorf("read file: %w", err)
	}
	if int64(len(buf)) > MaxPictureSize {
		return "", "", ErrFileTooLarge
	}

	img, _, err := image.Decode(bytes.NewReader(buf))
	if err != nil {
		return "", "", fmt.Errorf("decode image %q: %w", header.Filename, err)
	}

	destDir := filepath.Join(UploadsRoot(), "users", "picture", userID)
	origName, err := SaveFile(bytes.NewReader(buf), header, destDir, KindPicture, MaxPictureSize)
	if err != nil {
		return "", "", err
	}

	thumbImg := imaging.Resize(img, ThumbWidth, 0, imaging.Lanczos)
	thumbDir := filepath.Join(UploadsRoot(), "users", "thumb", userID)
	if err := os.MkdirAll(thumbDir, 0o755); err != nil {
		return "", "", fmt.Errorf("mkdir %s: %w", thumbDir, err)
	}

	thumbPath := filepath.Join(thumbDir, origName+".jpg")
	out, err := os.Create(thumbPath)
	if err != nil {
		return "", "", fmt.Errorf("create thumbnail: %w", err)
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumbImg, &jpeg.Options{Quality: 85}); err != nil {
		return "", "", fmt.Errorf("encode thumbnail: %w", err)
	}

	origURL := "/" + filepath.ToSlash(filepath.Join(destDir, origName))
	thumbURL := "/" + filepath.ToSlash(thumbPath)
	return origURL, thumbURL, nil
}
