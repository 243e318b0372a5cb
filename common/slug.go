package common

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gosimple/slug"
)

var (
	ErrEmptySlug = errors.New("slug cannot be empty")
	nonExtChars  = regexp.MustCompile(`[^a-z0-9]`)
)

// Slugify transliterates input to a lower-case, hyphenated ASCII slug.
func Slugify(input, fallback string) (string, error) {
	s := slugify(input)
	if s == "" {
		s = slugify(fallback)
	}
	if s == "" {
		return "", ErrEmptySlug
	}
	return s, nil
}

// SplitFilename returns a slugged base name and a lower-cased extension
// (with leading dot, or empty) for an uploaded file name.
func SplitFilename(name, fallback string) (string, string, error) {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	ext := strings.ToLower(filepath.Ext(name))
	ext = nonExtChars.ReplaceAllString(strings.TrimPrefix(ext, "."), "")
	if ext != "" {
		ext = "." + ext
	}

	base, err := Slugify(strings.TrimSuffix(name, filepath.Ext(name)), fallback)
	if err != nil {
		return "", "", err
	}
	return base, ext, nil
}

func slugify(s string) string {
	return slug.Make(strings.TrimSpace(s))
}
