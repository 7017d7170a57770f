// Package words provides the "words" strategy, which appends words picked
// at random from a named word list.
package words

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/registry"
	"github.com/specialistvlad/pwchain/internal/wordstore"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Input defines the arguments of the words strategy.
type Input struct {
	List       string `pw:"list"`
	Count      int    `pw:"count,optional"`
	Separator  string `pw:"separator,optional"`
	Capitalize bool   `pw:"capitalize,optional"`
}

// Generator appends Count words, joined by Separator.
type Generator struct {
	words      []string
	count      int
	separator  string
	capitalize bool
}

// New creates a Generator picking from words. A negative count is treated
// as zero.
func New(words []string, count int, separator string, capitalize bool) *Generator {
	return &Generator{
		words:      words,
		count:      max(count, 0),
		separator:  separator,
		capitalize: capitalize,
	}
}

// Generate implements algorithm.Generator.
func (g *Generator) Generate(_ int, current string, rnd *rand.Rand) string {
	if g.count == 0 || len(g.words) == 0 {
		return current
	}

	var sb strings.Builder
	sb.WriteString(current)
	for i := range g.count {
		if i > 0 {
			sb.WriteString(g.separator)
		}
		word := g.words[rnd.IntN(len(g.words))]
		if g.capitalize {
			word = capitalize(word)
		}
		sb.WriteString(word)
	}
	return sb.String()
}

func capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}

func build(ctx context.Context, deps *registry.Deps, in *Input) (algorithm.Generator, error) {
	list, err := deps.Words.Words(ctx, in.List)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %q", wordstore.ErrEmptyList, in.List)
	}
	return New(list, in.Count, in.Separator, in.Capitalize), nil
}

// Register registers the strategy with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterStrategy("words", registry.NewStrategy(
		"Appends words picked at random from a word list.",
		func() *Input { return &Input{Count: 1} },
		build,
	))
}
