package kernel

import (
	"strings"
	"unicode/utf8"

	"foodorder/internal/pkg/errs"
)

// Length limits for optional free text captured with an order.
const (
	CommentMaxLength      = 1000
	InstructionsMaxLength = 500
	ReasonMaxLength       = 1000
)

// OptionalText trims raw and returns nil when nothing is left.
// Text longer than maxLength runes is rejected.
func OptionalText(param, raw string, maxLength int) (*string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil //nolint:nilnil // absent text is not an error
	}

	if n := utf8.RuneCountInString(value); n > maxLength {
		return nil, errs.NewValueIsOutOfRangeError(param+" length", n, 0, maxLength)
	}

	return &value, nil
}

// RequiredText is OptionalText that rejects empty input.
func RequiredText(param, raw string, maxLength int) (string, error) {
	value, err := OptionalText(param, raw, maxLength)
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", errs.NewValueIsRequiredError(param)
	}
	return *value, nil
}
