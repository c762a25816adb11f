// internal/app/features/careers/upload.go
package careers

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

// uploadInfo describes a stored résumé object.
type uploadInfo struct {
	Path        string
	FileName    string
	Size        int64
	ContentType string
}

// Résumé object keys group by upload month and carry a uuid prefix so two
// applicants sending "cv.pdf" never collide: resumes/YYYY/MM/xxxxxxxx-cv.pdf.
// The storage write happens here, before any application document references
// the key.
func uploadResume(ctx context.Context, store storage.Store, filename string, reader io.Reader, size int64, contentType string) (uploadInfo, error) {
	now := time.Now().UTC()
	key := fmt.Sprintf("resumes/%04d/%02d/%s-%s",
		now.Year(), now.Month(), uuid.New().String()[:8], safeResumeName(filename))

	opts := &storage.PutOptions{
		ContentType: contentType,
	}
	if err := store.Put(ctx, key, reader, opts); err != nil {
		return uploadInfo{}, fmt.Errorf("résumé upload: %w", err)
	}

	return uploadInfo{
		Path:        key,
		FileName:    filename,
		Size:        size,
		ContentType: contentType,
	}, nil
}

const maxStoredNameLen = 100

// safeResumeName reduces an applicant-supplied filename to a storage-safe
// name: base name only, a conservative character set, bounded length with
// the extension preserved.
func safeResumeName(filename string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, path.Base(strings.ReplaceAll(filename, "\\", "/")))

	if name == "" || name == "." {
		return "file"
	}
	if len(name) > maxStoredNameLen {
		ext := path.Ext(name)
		if len(ext) >= maxStoredNameLen || len(ext) > 9 {
			ext = ""
		}
		name = name[:maxStoredNameLen-len(ext)] + ext
	}
	return name
}
