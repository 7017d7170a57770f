package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/recipe"
	"github.com/specialistvlad/pwchain/internal/wordstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoInput struct {
	Text   string `pw:"text"`
	Repeat int    `pw:"repeat,optional"`
}

type echoModule struct{}

func (echoModule) Register(r *Registry) {
	r.RegisterStrategy("echo", NewStrategy("Appends text.",
		func() *echoInput { return &echoInput{Repeat: 1} },
		func(_ context.Context, _ *Deps, in *echoInput) (algorithm.Generator, error) {
			if in.Repeat < 0 {
				return nil, errors.New("repeat must not be negative")
			}
			return algorithm.GeneratorFunc(func(seq int, current string, _ *rand.Rand) string {
				for range in.Repeat {
					current += fmt.Sprintf("[%d:%s]", seq, in.Text)
				}
				return current
			}), nil
		},
	))
}

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func loadRecipe(t *testing.T, src string) *recipe.Recipe {
	t.Helper()
	rc, err := recipe.NewLoader().LoadBytes(testContext(), []byte(src), "test.hcl")
	require.NoError(t, err)
	return rc
}

func newTestRegistry() *Registry {
	r := New(nil)
	echoModule{}.Register(r)
	return r
}

func TestRegisterStrategy(t *testing.T) {
	t.Parallel()

	r := newTestRegistry()

	s, ok := r.Lookup("echo")
	require.True(t, ok)
	assert.Equal(t, "Appends text.", s.Description)
	assert.Equal(t, []string{"echo"}, r.Names())
	assert.NotNil(t, r.Deps().Words, "a default word store is provided")

	require.Panics(t, func() { echoModule{}.Register(r) }, "duplicate names panic")
	require.Panics(t, func() { r.RegisterStrategy("broken", &RegisteredStrategy{}) })
	require.Panics(t, func() { r.RegisterStrategy("nil", nil) })
}

func TestNew_KeepsProvidedDeps(t *testing.T) {
	t.Parallel()

	store := wordstore.NewMemoryStore(map[string][]string{"x": {"y"}})
	r := New(&Deps{Words: store})

	assert.Same(t, store, r.Deps().Words)
}

func TestValidateRecipe(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		src      string
		contains []string
	}{
		{
			name: "valid",
			src: `
strategy "echo" "a" {
  text = "x"
}
strategy "echo" "b" {
  text   = "y"
  repeat = length / 4
}
`,
		},
		{
			name:     "unknown strategy type",
			src:      `strategy "nope" "a" {}`,
			contains: []string{"strategy 'nope.a' (test.hcl)", "unknown strategy type 'nope'", "available: echo"},
		},
		{
			name: "unsupported argument and missing required",
			src: `
strategy "echo" "a" {
  txt = "typo"
}
`,
			contains: []string{"argument 'txt' is not supported", "missing required argument 'text'"},
		},
		{
			name: "literal type mismatch",
			src: `
strategy "echo" "a" {
  text   = "x"
  repeat = "often"
}
`,
			contains: []string{"argument 'repeat'", "type mismatch"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r := newTestRegistry()

			err := r.ValidateRecipe(testContext(), loadRecipe(t, tc.src))

			if len(tc.contains) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidRecipe)
			for _, want := range tc.contains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidateRecipe_ReportsAllProblems(t *testing.T) {
	t.Parallel()

	rc := loadRecipe(t, `
strategy "nope" "a" {}
strategy "echo" "b" {}
`)

	err := newTestRegistry().ValidateRecipe(testContext(), rc)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.a")
	assert.Contains(t, err.Error(), "echo.b")
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	rc := loadRecipe(t, `
strategy "echo" "first" {
  text = "a"
}
strategy "echo" "second" {
  text   = "b"
  repeat = length / 8
}
`)

	// --- Act ---
	alg, err := newTestRegistry().Assemble(testContext(), rc, 16)

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, 2, alg.Len())
	assert.Equal(t, "[0:a][1:b][1:b]", alg.Generate(16))
}

func TestAssemble_PassesOptions(t *testing.T) {
	t.Parallel()

	rc := loadRecipe(t, `strategy "echo" "only" { text = "z" }`)
	var lengthCalls int

	alg, err := newTestRegistry().Assemble(testContext(), rc, 8,
		algorithm.WithLengthFunc(func(avg uint, _ *rand.Rand) uint {
			lengthCalls++
			return avg
		}))
	require.NoError(t, err)

	result := alg.Run(8)
	assert.Equal(t, "[0:z]", result.Value)
	assert.Equal(t, uint(8), result.TargetLength)
	assert.Equal(t, 1, lengthCalls)
}

func TestAssemble_EmptyRecipe(t *testing.T) {
	t.Parallel()

	alg, err := newTestRegistry().Assemble(testContext(), &recipe.Recipe{}, 16)

	require.NoError(t, err)
	assert.Zero(t, alg.Len())
	assert.Empty(t, alg.Generate(16))
}

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		src         string
		expectedErr error
		contains    string
	}{
		{name: "unknown type", src: `strategy "nope" "a" {}`, expectedErr: ErrUnknownStrategy},
		{name: "decode failure", src: `strategy "echo" "a" {}`, contains: `missing required argument "text"`},
		{name: "build failure", src: `strategy "echo" "a" {
  text   = "x"
  repeat = -1
}`, contains: "repeat must not be negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestRegistry().Assemble(testContext(), loadRecipe(t, tc.src), 16)

			require.Error(t, err)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
			}
			if tc.contains != "" {
				assert.Contains(t, err.Error(), tc.contains)
			}
		})
	}
}
