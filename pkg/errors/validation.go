package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// deckNameRegex matches built-in and user deck names: lowercase words
// joined by dashes, such as "sdv-15min".
var deckNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$|^[a-z0-9]$`)

// ValidateDeckName validates a deck name. Names become output file stems and
// cache key components, so they are restricted to a safe alphabet.
func ValidateDeckName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidDeck, "deck name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidDeck, "deck name too long (max 64 characters)")
	}
	if !deckNameRegex.MatchString(name) {
		return New(ErrCodeInvalidDeck, "invalid deck name %q (use lowercase letters, digits and dashes)", name)
	}
	return nil
}

// ValidateImageName validates an image reference from a deck file. Images
// are looked up relative to the image directory; they may live in a
// subdirectory but may not escape it.
func ValidateImageName(name string) error {
	if name == "" {
		return nil
	}
	if err := ValidatePath(name); err != nil {
		return Wrap(ErrCodeInvalidDeck, err, "image %q", name)
	}
	return nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// cacheSchemes lists the URL schemes accepted for --cache-url.
var cacheSchemes = []string{"file://", "redis://", "rediss://", "mongodb://", "mongodb+srv://"}

// ValidateCacheURL validates a cache backend URL.
func ValidateCacheURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "cache URL cannot be empty")
	}
	for _, s := range cacheSchemes {
		if strings.HasPrefix(rawURL, s) {
			return nil
		}
	}
	return New(ErrCodeInvalidInput, "unsupported cache URL %q (want one of %s)", rawURL, strings.Join(cacheSchemes, ", "))
}
