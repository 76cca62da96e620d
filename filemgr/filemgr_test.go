package filemgr

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSafeFilename(t *testing.T) {
	cases := []struct {
		in, ext, want string
	}{
		{"My Resume.pdf", ".pdf", "my_resume.pdf"},
		{"../../etc/passwd", ".pdf", "etcpasswd.pdf"},
		{"résumé final.PDF", ".pdf", "rsum_final.pdf"},
		{"plain", ".txt", "plain.txt"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ensureSafeFilename(tc.in, tc.ext), "input %q", tc.in)
	}
}

func TestEnsureSafeFilenameFallsBackToUUID(t *testing.T) {
	got := ensureSafeFilename("!!!.pdf", ".pdf")
	assert.True(t, strings.HasSuffix(got, ".pdf"))
	assert.Greater(t, len(got), len(".pdf"), "stripped-empty names get a generated stem")
}

func TestIsExtensionAllowed(t *testing.T) {
	assert.True(t, isExtensionAllowed(".pdf", KindDocument))
	assert.True(t, isExtensionAllowed(".docx", KindDocument))
	assert.False(t, isExtensionAllowed(".exe", KindDocument))
	assert.False(t, isExtensionAllowed(".pdf", KindPicture))
	assert.True(t, isExtensionAllowed(".webp", KindPicture))
}

func TestIsMIMEAllowed(t *testing.T) {
	assert.True(t, isMIMEAllowed("application/pdf", KindDocument))
	assert.True(t, isMIMEAllowed("text/plain; charset=utf-8", KindDocument))
	assert.False(t, isMIMEAllowed("application/zip", KindDocument))
	assert.True(t, isMIMEAllowed("image/png", KindPicture))
	assert.False(t, isMIMEAllowed("image/png", KindDocument))
}

func TestUploadsRootEnvOverride(t *testing.T) {
	t.Setenv("UPLOADS_DIR", "/tmp/blobs")
	assert.Equal(t, "/tmp/blobs", UploadsRoot())

	t.Setenv("UPLOADS_DIR", "")
	assert.Equal(t, filepath.Join("static", "uploads"), UploadsRoot())
}

func docHeader(filename string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func TestSaveFileWritesValidUpload(t *testing.T) {
	dir := t.TempDir()
	content := []byte("%PDF-1.4 minimal test document body")

	name, err := SaveFile(bytes.NewReader(content), docHeader("My Resume.pdf", int64(len(content))), dir, KindDocument, MaxDocumentSize)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_my_resume.pdf"), "got %q", name)

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestSaveFileRejectsBadExtension(t *testing.T) {
	dir := t.TempDir()
	content := []byte("MZ fake executable")

	_, err := SaveFile(bytes.NewReader(content), docHeader("malware.exe", int64(len(content))), dir, KindDocument, MaxDocumentSize)
	assert.ErrorIs(t, err, ErrInvalidExtension)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "nothing may reach disk on rejection")
}

func TestSaveFileRejectsDeclaredOversize(t *testing.T) {
	dir := t.TempDir()

	header := docHeader("big.pdf", MaxDocumentSize+1)
	_, err := SaveFile(bytes.NewReader([]byte("%PDF-1.4")), header, dir, KindDocument, MaxDocumentSize)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveFileRejectsActualOversize(t *testing.T) {
	// The multipart header can lie about Size; the copy itself is bounded too.
	dir := t.TempDir()
	limit := int64(1024)

	content := append([]byte("%PDF-1.4 "), bytes.Repeat([]byte("a"), int(limit)*2)...)
	header := docHeader("liar.pdf", limit) // declared under the limit

	_, err := SaveFile(bytes.NewReader(content), header, dir, KindDocument, limit)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries, "the partial file must be removed")
}

func TestSaveFileSniffsMIME(t *testing.T) {
	dir := t.TempDir()

	// PNG magic bytes inside a .pdf upload
	content := []byte("\x89PNG\r\n\x1a\n rest of image data")
	header := docHeader("sneaky.pdf", int64(len(content)))

	_, err := SaveFile(bytes.NewReader(content), header, dir, KindDocument, MaxDocumentSize)
	assert.ErrorIs(t, err, ErrInvalidMIME)
}

func TestSaveFileAcceptsDocxZipContainer(t *testing.T) {
	// .docx is a ZIP container: the sniff reports application/zip and the
	// declared OOXML type has to carry the check.
	dir := t.TempDir()
	content := append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0}, 64)...)
	header := &multipart.FileHeader{
		Filename: "resume.docx",
		Size:     int64(len(content)),
		Header: textproto.MIMEHeader{
			"Content-Type": []string{"application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		},
	}

	name, err := SaveFile(bytes.NewReader(content), header, dir, KindDocument, MaxDocumentSize)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(name, "_resume.docx"), "got %q", name)
}

func TestSaveFileRejectsZipWithBadDeclaredType(t *testing.T) {
	dir := t.TempDir()
	content := append([]byte("PK\x03\x04"), bytes.Repeat([]byte{0}, 64)...)
	header := &multipart.FileHeader{
		Filename: "archive.docx",
		Size:     int64(len(content)),
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/zip"}},
	}

	_, err := SaveFile(bytes.NewReader(content), header, dir, KindDocument, MaxDocumentSize)
	assert.ErrorIs(t, err, ErrInvalidMIME)
}

func TestSaveFilePlainTextWithCharset(t *testing.T) {
	dir := t.TempDir()
	content := []byte("just a plain cover letter")
	header := &multipart.FileHeader{
		Filename: "letter.txt",
		Size:     int64(len(content)),
		Header:   textproto.MIMEHeader{"Content-Type": []string{"text/plain"}},
	}

	_, err := SaveFile(bytes.NewReader(content), header, dir, KindDocument, MaxDocumentSize)
	assert.NoError(t, err)
}

func TestFormFileMissingFieldIsNotAnError(t *testing.T) {
	form := &multipart.Form{File: map[string][]*multipart.FileHeader{}}

	file, header, err := FormFile(form, "resume")
	assert.NoError(t, err)
	assert.Nil(t, file)
	assert.Nil(t, header)

	file, header, err = FormFile(nil, "resume")
	assert.NoError(t, err)
	assert.Nil(t, file)
	assert.Nil(t, header)
}
