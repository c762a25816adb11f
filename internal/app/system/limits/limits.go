// Package limits centralizes upload size and type limits.
package limits

import (
	"path/filepath"
	"strings"
)

// MaxResumeSize is the résumé upload cap. Larger files are rejected before
// any storage write happens.
const MaxResumeSize = 5 << 20 // 5 MB

// MaxFormMemory bounds multipart form parsing memory.
const MaxFormMemory = 8 << 20

// resumeExtensions are the accepted résumé file extensions (lowercase).
var resumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AllowedResumeFile reports whether the filename carries an accepted
// résumé extension.
func AllowedResumeFile(filename string) bool {
	return resumeExtensions[strings.ToLower(filepath.Ext(filename))]
}

// ResumeContentType maps a résumé filename to its content type for storage.
func ResumeContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}
