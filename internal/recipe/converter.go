package recipe

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter binds evaluated recipe arguments to Go input structs.
type Converter struct{}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	return &Converter{}
}

// DecodeArguments evaluates args against evalCtx and stores the results in
// the `pw` tagged fields of target, which must be a pointer to a struct.
// Fields without a matching argument keep their current value when tagged
// optional. Unknown arguments and missing required ones are errors.
func (c *Converter) DecodeArguments(ctx context.Context, target any, args map[string]hcl.Expression, evalCtx *hcl.EvalContext) error {
	logger := ctxlog.FromContext(ctx)

	structVal := reflect.ValueOf(target)
	if structVal.Kind() != reflect.Pointer || structVal.IsNil() || structVal.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
	}
	structVal = structVal.Elem()

	fields, err := Fields(structVal.Type())
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.Name] = struct{}{}
	}
	var unknown []string
	for name := range args {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unsupported argument(s): %s", strings.Join(unknown, ", "))
	}

	for _, f := range fields {
		expr, provided := args[f.Name]
		if !provided {
			if !f.Optional {
				return fmt.Errorf("missing required argument %q", f.Name)
			}
			continue
		}

		val, diags := expr.Value(evalCtx)
		if diags.HasErrors() {
			return fmt.Errorf("failed to evaluate argument %q: %w", f.Name, diags)
		}
		if val.IsNull() {
			if !f.Optional {
				return fmt.Errorf("required argument %q must not be null", f.Name)
			}
			continue
		}

		ptr := structVal.Field(f.Index).Addr().Interface()
		if err := c.decode(val, ptr); err != nil {
			return fmt.Errorf("failed to decode argument %q: %w", f.Name, err)
		}
		logger.Debug("Decoded strategy argument.", "argument", f.Name, "type", val.Type().FriendlyName())
	}

	return nil
}

// decode converts val to the cty type implied by the Go value behind goVal
// and stores it there.
func (c *Converter) decode(val cty.Value, goVal any) error {
	impliedType, err := gocty.ImpliedType(reflect.ValueOf(goVal).Elem().Interface())
	if err != nil {
		return gocty.FromCtyValue(val, goVal)
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w", val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(converted, goVal)
}

// CheckLiteral reports whether expr, when it references no variables, can be
// converted to the cty type implied by goType. Expressions that depend on
// variables are only checked at decode time.
func CheckLiteral(expr hcl.Expression, goType reflect.Type) error {
	if len(expr.Variables()) > 0 {
		return nil
	}

	val, diags := expr.Value(EvalContext(0))
	if diags.HasErrors() {
		return diags
	}
	if val.IsNull() {
		return nil
	}

	impliedType, err := gocty.ImpliedType(reflect.Zero(goType).Interface())
	if err != nil {
		return nil
	}

	converted, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("type mismatch: %s cannot be used as %s", val.Type().FriendlyName(), impliedType.FriendlyName())
	}
	target := reflect.New(goType)
	if err := gocty.FromCtyValue(converted, target.Interface()); err != nil {
		return fmt.Errorf("value out of range for %s: %w", goType, err)
	}
	return nil
}
