package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pdfContent = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<<>>\nendobj\n")
	zipContent = []byte("PK\x03\x04\x14\x00\x06\x00\x08\x00\x00\x00!\x00")
	oleContent = append([]byte("\xd0\xcf\x11\xe0\xa1\xb1\x1a\xe1"), make([]byte, 64)...)
)

func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("cv", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["cv"][0]
}

func TestValidate(t *testing.T) {
	store, err := NewCVStore(t.TempDir(), 1024)
	require.NoError(t, err)

	tests := []struct {
		name     string
		filename string
		content  []byte
		want     error
	}{
		{"pdf", "resume.pdf", pdfContent, nil},
		{"upper case extension", "RESUME.PDF", pdfContent, nil},
		{"docx zip container", "resume.docx", zipContent, nil},
		{"doc ole container", "resume.doc", oleContent, nil},
		{"zip named pdf", "resume.pdf", zipContent, ErrFileType},
		{"ole named pdf", "resume.pdf", oleContent, ErrFileType},
		{"zip named doc", "resume.doc", zipContent, ErrFileType},
		{"pdf named docx", "resume.docx", pdfContent, ErrFileType},
		{"exe extension", "virus.exe", []byte("MZ\x90\x00"), ErrFileType},
		{"no extension", "resume", pdfContent, ErrFileType},
		{"text disguised as pdf", "resume.pdf", []byte("just some plain text"), ErrFileType},
		{"too large", "resume.pdf", append(append([]byte{}, pdfContent...), bytes.Repeat([]byte("a"), 2048)...), ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.Validate(fileHeader(t, tt.filename, tt.content))
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.ErrorIs(t, store.Validate(nil), ErrFileRequired)
}

func TestSaveLocateRemove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewCVStore(filepath.Join(dir, "cvs"), 1024)
	require.NoError(t, err)

	userID := uuid.New()
	path, err := store.Save(userID, fileHeader(t, "Resume.PDF", pdfContent))
	require.NoError(t, err)

	name := filepath.Base(path)
	assert.True(t, strings.HasPrefix(name, "cv-"+userID.String()+"-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, pdfContent, data)

	located, err := store.Locate(path)
	require.NoError(t, err)
	assert.Equal(t, path, located)

	other, err := store.Save(userID, fileHeader(t, "resume.pdf", pdfContent))
	require.NoError(t, err)
	assert.NotEqual(t, path, other)

	require.NoError(t, store.Remove(path))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	_, err = store.Locate(path)
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.NoError(t, store.Remove(path), "missing file is not an error")
	assert.NoError(t, store.Remove(""))

	_, err = store.Locate("")
	assert.ErrorIs(t, err, ErrFileNotFound)
}
