package integration_tests

import (
	"bytes"
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/specialistvlad/pwchain/internal/algorithm"
	"github.com/specialistvlad/pwchain/internal/app"
	"github.com/specialistvlad/pwchain/internal/registry"
	"github.com/specialistvlad/pwchain/internal/testutil"
	"github.com/stretchr/testify/require"
)

// harnessResult holds the outcomes of an integration test run.
type harnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// runIntegrationTest writes files to a temporary recipe directory, builds an
// App for it with the given modules and runs it once. Panics during the run
// are reported as errors.
func runIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) (result *harnessResult) {
	t.Helper()

	if cfg.RecipePath == "" {
		cfg.RecipePath = testutil.WriteFiles(t, files)
	}
	if cfg.Count == 0 {
		cfg.Count = 1
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	valid, err := app.NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	result = &harnessResult{}

	defer func() {
		if r := recover(); r != nil {
			result.Err = fmt.Errorf("application run panicked: %v", r)
		}
		result.Output = out.String()
		result.LogOutput = logs.String()
	}()

	a, err := app.NewApp(out, logs, valid, modules...)
	require.NoError(t, err)
	defer a.Close()

	result.Err = a.Run(context.Background())
	return result
}

// recordModule registers the "record" strategy backed by testutil.Recorder.
// All generators built from one module share its call log.
type recordModule struct {
	log testutil.CallLog
}

type recordInput struct {
	Payload string `pw:"payload"`
}

func (m *recordModule) Register(r *registry.Registry) {
	r.RegisterStrategy("record", registry.NewStrategy(
		"Appends -{sequence}-{payload} and records the call.",
		func() *recordInput { return &recordInput{} },
		func(_ context.Context, _ *registry.Deps, in *recordInput) (algorithm.Generator, error) {
			return testutil.NewRecorder(in.Payload, &m.log), nil
		},
	))
}

// panicModule registers the "explode" strategy whose generator panics.
type panicModule struct{}

func (panicModule) Register(r *registry.Registry) {
	r.RegisterStrategy("explode", registry.NewStrategy(
		"Panics when run.",
		func() *struct{} { return &struct{}{} },
		func(context.Context, *registry.Deps, *struct{}) (algorithm.Generator, error) {
			return algorithm.GeneratorFunc(func(int, string, *rand.Rand) string {
				panic("boom")
			}), nil
		},
	))
}
