package recipe

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/pwchain/internal/ctxlog"
	"github.com/specialistvlad/pwchain/internal/fsutil"
)

const extension = ".hcl"

//go:embed default.hcl
var defaultRecipe []byte

// DefaultName is the file name reported for the embedded default recipe.
const DefaultName = "default.hcl"

// Loader reads recipes from HCL files.
type Loader struct{}

// NewLoader creates a new recipe loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Default returns the recipe compiled into the binary.
func Default(ctx context.Context) (*Recipe, error) {
	return NewLoader().LoadBytes(ctx, defaultRecipe, DefaultName)
}

// Load reads every .hcl file found in paths. Files are expanded with
// fsutil.CollectFiles and their strategy blocks appended in order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Recipe, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Recipe loader started.", "path_count", len(paths))

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no paths given", ErrRecipeNotFound)
	}

	files, err := fsutil.CollectFiles(extension, paths...)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrRecipeNotFound, err)
		}
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no %s files in %v", ErrRecipeNotFound, extension, paths)
	}
	logger.Debug("Discovered recipe files.", "files", files)

	parser := hclparse.NewParser()
	rc := &Recipe{}
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidRecipe, file, diags)
		}
		if err := l.decodeFile(hclFile, file, rc); err != nil {
			return nil, err
		}
	}

	logger.Debug("Recipe loading complete.", "steps", rc.Len())
	return rc, nil
}

// LoadBytes parses a single recipe held in memory. filename is used in
// diagnostics only.
func (l *Loader) LoadBytes(ctx context.Context, src []byte, filename string) (*Recipe, error) {
	logger := ctxlog.FromContext(ctx)

	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidRecipe, filename, diags)
	}

	rc := &Recipe{}
	if err := l.decodeFile(hclFile, filename, rc); err != nil {
		return nil, err
	}
	logger.Debug("Recipe loaded from memory.", "file", filename, "steps", rc.Len())
	return rc, nil
}

// decodeFile translates the strategy blocks of one file into steps.
func (l *Loader) decodeFile(file *hcl.File, filename string, rc *Recipe) error {
	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidRecipe, filename, diags)
	}

	for _, block := range root.Strategies {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return fmt.Errorf("%w: strategy %q in %s: %w", ErrInvalidRecipe, block.Type+"."+block.Name, filename, diags)
		}

		args := make(map[string]hcl.Expression, len(attrs))
		for name, attr := range attrs {
			args[name] = attr.Expr
		}

		step := &Step{Type: block.Type, Name: block.Name, Arguments: args, File: filename}
		if err := rc.append(step); err != nil {
			return err
		}
	}
	return nil
}
