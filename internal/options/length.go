package options

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLength is returned for a length name that is not a known category.
var ErrUnknownLength = errors.New("unknown password length")

// PasswordLength is a named password length category.
type PasswordLength int

const (
	Short PasswordLength = iota
	Regular
	Long
)

type lengthInfo struct {
	short   string
	long    string
	average uint
}

var lengths = [...]lengthInfo{
	Short:   {short: "s", long: "short", average: 8},
	Regular: {short: "r", long: "regular", average: 16},
	Long:    {short: "l", long: "long", average: 32},
}

// Variants returns the short names of all categories in declaration order.
func Variants() []string {
	names := make([]string, 0, len(lengths))
	for _, info := range lengths {
		names = append(names, info.short)
	}
	return names
}

// ParseLength resolves a category by its short or long name. Matching is
// case-insensitive.
func ParseLength(s string) (PasswordLength, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, info := range lengths {
		if name == info.short || name == info.long {
			return PasswordLength(i), nil
		}
	}
	return Regular, fmt.Errorf("%w %q: must be one of %s", ErrUnknownLength, s, strings.Join(Variants(), ", "))
}

func (l PasswordLength) valid() bool {
	return l >= 0 && int(l) < len(lengths)
}

// AverageLength returns the average password length of the category.
func (l PasswordLength) AverageLength() uint {
	if !l.valid() {
		return lengths[Regular].average
	}
	return lengths[l].average
}

// String returns the long name of the category.
func (l PasswordLength) String() string {
	if !l.valid() {
		return fmt.Sprintf("PasswordLength(%d)", int(l))
	}
	return lengths[l].long
}

// MarshalText implements encoding.TextMarshaler.
func (l PasswordLength) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLength, int(l))
	}
	return []byte(lengths[l].short), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *PasswordLength) UnmarshalText(text []byte) error {
	parsed, err := ParseLength(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
