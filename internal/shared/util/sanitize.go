package util

import (
	"errors"
	"strings"
)

// Scanned notices from phone cameras arrive with long auto-generated names;
// keys built from them must stay within filesystem limits.
const maxFileNameLen = 200

// SanitizeFileName removes path separators, rejects traversal patterns, and
// clamps the name to a storable length.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	if len(s) > maxFileNameLen {
		s = s[len(s)-maxFileNameLen:]
	}
	return s, nil
}
