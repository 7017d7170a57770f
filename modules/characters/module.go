// Package characters provides the "characters" strategy, which injects
// random characters of a character class into the password.
package characters

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/registry"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits       = "0123456789"
	symbols      = "~!@#$%^&*()-_=+[]{};:,.<>?"
)

var classes = map[string]string{
	"lower":  lowerLetters,
	"upper":  upperLetters,
	"digit":  digits,
	"symbol": symbols,
	"alnum":  lowerLetters + upperLetters + digits,
	"any":    lowerLetters + upperLetters + digits + symbols,
}

// Position controls where generated characters go.
type Position string

const (
	Append  Position = "append"
	Prepend Position = "prepend"
	Insert  Position = "insert"
)

// ErrEmptyAlphabet is returned when the configured alphabet has no characters.
var ErrEmptyAlphabet = errors.New("alphabet is empty")

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the characters strategy. Alphabet, when
// set, overrides Class.
type Input struct {
	Class    string `pw:"class,optional"`
	Alphabet string `pw:"alphabet,optional"`
	Count    int    `pw:"count,optional"`
	Position string `pw:"position,optional"`
}

// Generator adds Count characters drawn from an alphabet.
type Generator struct {
	alphabet []rune
	count    int
	position Position
}

// New creates a Generator. A negative count is treated as zero.
func New(alphabet string, count int, position Position) (*Generator, error) {
	switch position {
	case Append, Prepend, Insert:
	default:
		return nil, fmt.Errorf("unknown position %q: must be one of append, prepend, insert", position)
	}
	runes := []rune(alphabet)
	if len(runes) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return &Generator{alphabet: runes, count: max(count, 0), position: position}, nil
}

// Generate implements algorithm.Generator.
func (g *Generator) Generate(_ int, current string, rnd *rand.Rand) string {
	if g.count == 0 {
		return current
	}

	picked := make([]rune, g.count)
	for i := range picked {
		picked[i] = g.alphabet[rnd.IntN(len(g.alphabet))]
	}

	switch g.position {
	case Prepend:
		return string(picked) + current
	case Insert:
		out := []rune(current)
		for _, r := range picked {
			at := rnd.IntN(len(out) + 1)
			out = slices.Insert(out, at, r)
		}
		return string(out)
	default:
		return current + string(picked)
	}
}

func build(_ context.Context, _ *registry.Deps, in *Input) (algorithm.Generator, error) {
	alphabet := in.Alphabet
	if alphabet == "" {
		var ok bool
		alphabet, ok = classes[strings.ToLower(in.Class)]
		if !ok {
			return nil, fmt.Errorf("unknown character class %q: must be one of %s", in.Class, strings.Join(ClassNames(), ", "))
		}
	}
	return New(alphabet, in.Count, Position(strings.ToLower(in.Position)))
}

// ClassNames returns the names of the built-in character classes, sorted.
func ClassNames() []string {
	names := make([]string, 0, len(classes))
	for name := range classes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy("characters", registry.NewStrategy(
		"Adds random characters from a character class or custom alphabet.",
		func() *Input { return &Input{Class: "any", Count: 1, Position: string(Append)} },
		build,
	))
}
