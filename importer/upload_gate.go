package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxUploadBytes is the upload size ceiling. Price lists are a few hundred
// kilobytes; anything near the ceiling is not a price list.
const MaxUploadBytes = 10 << 20

// allowedContentTypes lists the declared MIME types accepted at the gate.
// Browsers and HTTP clients disagree on what an .xlsx is, so the generic
// octet-stream is allowed and the decoder gets the final say.
var allowedContentTypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                                          true,
	"application/octet-stream":                                          true,
}

// allowedExtensions lists the accepted file name extensions, lower-cased.
var allowedExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// CheckUpload validates an upload before any of its bytes are decoded:
// extension and declared content type against the allow-lists, size against
// the ceiling. maxBytes <= 0 means MaxUploadBytes. The content type may
// carry parameters ("; charset=...") which are ignored.
func CheckUpload(fileName string, size int64, contentType string, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = MaxUploadBytes
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w (파일명: %s)", ErrInvalidFileType, fileName)
	}

	mime := contentType
	if i := strings.Index(mime, ";"); i >= 0 {
		mime = mime[:i]
	}
	mime = strings.ToLower(strings.TrimSpace(mime))
	if mime != "" && !allowedContentTypes[mime] {
		return fmt.Errorf("%w (content type: %s)", ErrInvalidFileType, contentType)
	}

	if size <= 0 {
		return fmt.Errorf("%w: 빈 파일입니다", ErrInvalidFileType)
	}
	if size > maxBytes {
		return fmt.Errorf("%w (크기: %d바이트)", ErrFileTooLarge, size)
	}
	return nil
}
