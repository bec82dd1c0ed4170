package util

import (
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode"
)

var reUnderscore = regexp.MustCompile(`_+`)

// SanitizeFilename keeps letters, digits, dots and dashes so portal titles
// (often Japanese) survive as file and folder names on every OS.
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)

	clean := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '-':
			clean = append(clean, r)
		case unicode.IsSpace(r), r == '/', r == '\\', r == '_', r == '・', r == '　':
			clean = append(clean, '_')
		}
	}

	s = reUnderscore.ReplaceAllString(string(clean), "_")
	s = strings.Trim(s, "_.")
	if s == "" {
		return "untitled"
	}
	return s
}

// AttachmentName picks a file name for an attachment, falling back to the
// last URL path segment when the link text is empty.
func AttachmentName(name, rawURL string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		if u, err := url.Parse(rawURL); err == nil {
			if base := path.Base(u.Path); base != "." && base != "/" {
				name = base
			}
		}
	}
	return SanitizeFilename(name)
}
