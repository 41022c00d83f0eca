package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func multipartFile(t *testing.T, fieldName, fileName, content string) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	file, header, err := req.FormFile(fieldName)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return file, header
}

func TestSaveThumbnail(t *testing.T) {
	dir := t.TempDir()
	file, header := multipartFile(t, "thumbnail", "photo.png", "fake image bytes")
	defer file.Close()

	filename, err := SaveThumbnail(file, header, dir)
	if err != nil {
		t.Fatalf("save thumbnail: %v", err)
	}

	if !strings.HasSuffix(filename, ".png") {
		t.Fatalf("expected .png extension kept, got %q", filename)
	}

	data, err := os.ReadFile(filepath.Join(dir, filename))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestSaveThumbnailCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	file, header := multipartFile(t, "thumbnail", "pic.jpg", "x")
	defer file.Close()

	if _, err := SaveThumbnail(file, header, dir); err != nil {
		t.Fatalf("save thumbnail into missing dir: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("expected one stored file, err=%v entries=%d", err, len(entries))
	}
}

func TestSaveThumbnailUniqueNames(t *testing.T) {
	dir := t.TempDir()

	f1, h1 := multipartFile(t, "thumbnail", "same.png", "a")
	defer f1.Close()
	f2, h2 := multipartFile(t, "thumbnail", "same.png", "b")
	defer f2.Close()

	n1, err := SaveThumbnail(f1, h1, dir)
	if err != nil {
		t.Fatalf("save first: %v", err)
	}
	n2, err := SaveThumbnail(f2, h2, dir)
	if err != nil {
		t.Fatalf("save second: %v", err)
	}
	if n1 == n2 {
		t.Fatalf("expected unique stored names, both were %q", n1)
	}
}
