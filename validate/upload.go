package validate

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"catdogeats/client"
)

// UploadPolicy bounds a multipart file field
type UploadPolicy struct {
	Field        string
	MaxFiles     int
	MaxFileBytes int64
	AllowedTypes []string
}

const mb = 1 << 20

// Upload policies per form
var (
	ReviewImages = UploadPolicy{
		Field:        "images",
		MaxFiles:     5,
		MaxFileBytes: 5 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	}
	InquiryAttachments = UploadPolicy{
		Field:        "attachments",
		MaxFiles:     3,
		MaxFileBytes: 10 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "image/gif", "application/pdf"},
	}
	ProductImages = UploadPolicy{
		Field:        "images",
		MaxFiles:     10,
		MaxFileBytes: 10 * mb,
		AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
	}
)

// MaxRequestBytes bounds the whole multipart body for the policy
func (p UploadPolicy) MaxRequestBytes() int64 {
	return int64(p.MaxFiles)*p.MaxFileBytes + mb
}

func (p UploadPolicy) allowed(contentType string) bool {
	for _, t := range p.AllowedTypes {
		if t == contentType {
			return true
		}
	}
	return false
}

// Files checks the uploaded files against the policy and reads them. The content type
// is sniffed from the bytes; the client-declared type is ignored.
func (p UploadPolicy) Files(headers []*multipart.FileHeader) ([]client.File, error) {
	errs := Errors{}
	if len(headers) > p.MaxFiles {
		errs.add(p.Field, fmt.Sprintf("파일은 최대 %d개까지 첨부할 수 있습니다.", p.MaxFiles))
		return nil, errs
	}

	files := make([]client.File, 0, len(headers))
	for _, h := range headers {
		if h.Size > p.MaxFileBytes {
			errs.add(p.Field, fmt.Sprintf("파일 크기는 %dMB 이하여야 합니다.", p.MaxFileBytes/mb))
			return nil, errs
		}
		data, err := readPart(h, p.MaxFileBytes)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", h.Filename, err)
		}
		if int64(len(data)) > p.MaxFileBytes {
			errs.add(p.Field, fmt.Sprintf("파일 크기는 %dMB 이하여야 합니다.", p.MaxFileBytes/mb))
			return nil, errs
		}
		contentType := http.DetectContentType(data)
		if i := strings.IndexByte(contentType, ';'); i >= 0 {
			contentType = contentType[:i]
		}
		if !p.allowed(contentType) {
			errs.add(p.Field, "지원하지 않는 파일 형식입니다.")
			return nil, errs
		}
		files = append(files, client.File{
			Field:       p.Field,
			Name:        filepath.Base(h.Filename),
			ContentType: contentType,
			Data:        data,
		})
	}
	return files, nil
}

func readPart(h *multipart.FileHeader, limit int64) ([]byte, error) {
	f, err := h.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit+1))
}
