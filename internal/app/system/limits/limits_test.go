package limits

import "testing"

func TestAllowedResumeFile(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"resume.pdf", true},
		{"Resume.PDF", true},
		{"cv.doc", true},
		{"cv.docx", true},
		{"photo.png", false},
		{"script.exe", false},
		{"resume", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := AllowedResumeFile(tt.filename); got != tt.want {
				t.Errorf("AllowedResumeFile(%q) = %v, want %v", tt.filename, got, tt.want)
			}
		})
	}
}

func TestResumeContentType(t *testing.T) {
	if got := ResumeContentType("cv.pdf"); got != "application/pdf" {
		t.Errorf("ResumeContentType(cv.pdf) = %q", got)
	}
	if got := ResumeContentType("weird.bin"); got != "application/octet-stream" {
		t.Errorf("ResumeContentType(weird.bin) = %q", got)
	}
}
