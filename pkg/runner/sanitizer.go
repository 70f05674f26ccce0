package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"
)

var (
	// DefaultMaxInputSize is 4KB (conservative default)
	DefaultMaxInputSize = 4096
	// EnvMaxInputSize is the environment variable to override the default
	EnvMaxInputSize = "CHATBOT_MAX_INPUT_SIZE"
)

var (
	ErrInputTooLarge = errors.New("input exceeds maximum allowed size")
	ErrInvalidUTF8   = errors.New("input contains invalid UTF-8 sequences")
)

// Sanitizer checks user text before it reaches the chat session.
type Sanitizer struct {
	// MaxSize is the largest accepted input in bytes. Zero or less uses the
	// environment override or DefaultMaxInputSize.
	MaxSize int
}

// NewSanitizer returns a Sanitizer with the given limit.
func NewSanitizer(maxSize int) *Sanitizer {
	return &Sanitizer{MaxSize: maxSize}
}

// SanitizeInput cleans input with the default limit.
func SanitizeInput(input string) (string, error) {
	return (&Sanitizer{}).Clean(input)
}

// Clean enforces the size limit and validates UTF-8. The text itself is
// returned unchanged: labels are matched exactly, whitespace included.
func (s *Sanitizer) Clean(input string) (string, error) {
	// 1. Enforce Size Limit
	limit := s.limit()
	if len(input) > limit {
		// Reject rather than truncate: a truncated label could match another option.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrInputTooLarge, len(input), limit)
	}

	// 2. Validate UTF-8
	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	return input, nil
}

func (s *Sanitizer) limit() int {
	if s != nil && s.MaxSize > 0 {
		return s.MaxSize
	}
	return getMaxInputSize()
}

func getMaxInputSize() int {
	if val := os.Getenv(EnvMaxInputSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxInputSize
}
