package filemgr

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"talentrack/utils"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

func ensureSafeFilename(name, ext string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeChars.ReplaceAllString(name, "")
	if name == "" {
		name = utils.GetUUID()
	}
	return name + ext
}

func isExtensionAllowed(ext string, kind FileKind) bool {
	for _, a := range AllowedExtensions[kind] {
		if ext == a {
			return true
		}
	}
	return false
}

func isMIMEAllowed(mimeType string, kind FileKind) bool {
	// DetectContentType appends charset parameters to text types.
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	for _, a := range AllowedMIMEs[kind] {
		if mimeType == a {
			return true
		}
	}
	return false
}

// UploadsRoot is the on-disk base of the blob store.
func UploadsRoot() string {
	if root := os.Getenv("UPLOADS_DIR"); root != "" {
		return root
	}
	return filepath.Join("static", "uploads")
}
