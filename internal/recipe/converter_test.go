package recipe

import (
	"reflect"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	List       string `pw:"list"`
	Count      int    `pw:"count,optional"`
	Capitalize bool   `pw:"capitalize,optional"`
	Ignored    string
	hidden     string `pw:"hidden"`
}

func parseArgs(t *testing.T, src map[string]string) map[string]hcl.Expression {
	t.Helper()
	args := make(map[string]hcl.Expression, len(src))
	for name, text := range src {
		expr, diags := hclsyntax.ParseExpression([]byte(text), name, hcl.Pos{Line: 1, Column: 1})
		require.False(t, diags.HasErrors(), "parse %s: %s", name, diags)
		args[name] = expr
	}
	return args
}

func TestFields(t *testing.T) {
	t.Parallel()

	fields, err := Fields(reflect.TypeOf(&sampleInput{}))
	require.NoError(t, err)

	require.Len(t, fields, 3)
	assert.Equal(t, "list", fields[0].Name)
	assert.False(t, fields[0].Optional)
	assert.Equal(t, "count", fields[1].Name)
	assert.True(t, fields[1].Optional)

	_, err = Fields(reflect.TypeOf(42))
	require.ErrorIs(t, err, ErrInvalidTarget)
}

func TestDecodeArguments(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		args      map[string]string
		average   uint
		expected  sampleInput
		expectErr string
	}{
		{
			name:     "required only keeps defaults",
			args:     map[string]string{"list": `"noun"`},
			expected: sampleInput{List: "noun", Count: 1},
		},
		{
			name:     "all arguments",
			args:     map[string]string{"list": `"color"`, "count": `3`, "capitalize": `true`},
			expected: sampleInput{List: "color", Count: 3, Capitalize: true},
		},
		{
			name:     "length variable and functions",
			args:     map[string]string{"list": `upper("x")`, "count": `max(2, floor(length / 8))`},
			average:  32,
			expected: sampleInput{List: "X", Count: 4},
		},
		{
			name:     "string converts to number",
			args:     map[string]string{"list": `"noun"`, "count": `"5"`},
			expected: sampleInput{List: "noun", Count: 5},
		},
		{
			name:     "null optional is ignored",
			args:     map[string]string{"list": `"noun"`, "count": `null`},
			expected: sampleInput{List: "noun", Count: 1},
		},
		{
			name:      "missing required",
			args:      map[string]string{"count": `2`},
			expectErr: `missing required argument "list"`,
		},
		{
			name:      "unknown argument",
			args:      map[string]string{"list": `"noun"`, "colour": `"red"`, "Ignored": `"x"`},
			expectErr: "unsupported argument(s): Ignored, colour",
		},
		{
			name:      "wrong type",
			args:      map[string]string{"list": `"noun"`, "count": `"many"`},
			expectErr: `failed to decode argument "count"`,
		},
		{
			name:      "fractional count",
			args:      map[string]string{"list": `"noun"`, "count": `length / 3`},
			average:   16,
			expectErr: `failed to decode argument "count"`,
		},
		{
			name:      "unknown variable",
			args:      map[string]string{"list": `size`},
			expectErr: `failed to evaluate argument "list"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			input := sampleInput{Count: 1}

			err := NewConverter().DecodeArguments(testContext(), &input, parseArgs(t, tc.args), EvalContext(tc.average))

			if tc.expectErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, input)
		})
	}
}

func TestDecodeArguments_InvalidTarget(t *testing.T) {
	t.Parallel()

	var nilPtr *sampleInput
	for _, target := range []any{sampleInput{}, nilPtr, new(int)} {
		err := NewConverter().DecodeArguments(testContext(), target, nil, EvalContext(0))
		require.ErrorIs(t, err, ErrInvalidTarget)
	}
}

func TestCheckLiteral(t *testing.T) {
	t.Parallel()

	args := parseArgs(t, map[string]string{
		"number":   `3`,
		"text":     `"abc"`,
		"fraction": `2.5`,
		"variable": `length * 2`,
	})

	intType := reflect.TypeOf(0)
	assert.NoError(t, CheckLiteral(args["number"], intType))
	assert.Error(t, CheckLiteral(args["text"], intType))
	assert.Error(t, CheckLiteral(args["fraction"], intType))
	assert.NoError(t, CheckLiteral(args["variable"], intType), "expressions using variables are checked at decode time")
	assert.NoError(t, CheckLiteral(args["text"], reflect.TypeOf("")))
}
