package integrationtests

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/droidspec/internal/app"
	"github.com/specialistvlad/droidspec/internal/testutil"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outputs of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
}

// runIntegrationTest writes files under a temporary root and runs the app
// against the "android" directory of that root. When files contain
// "ambient.toml" it is passed as the ambient file. configure may adjust the
// configuration before the app is built.
func runIntegrationTest(t *testing.T, files map[string]string, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	// 1. Lay out the project.
	root := testutil.WriteFiles(t, files)

	// 2. Configure the app.
	cfg := &app.Config{
		DescriptorPaths: []string{filepath.Join(root, "android")},
		Emit:            app.EmitKotlin,
	}
	if _, ok := files["ambient.toml"]; ok {
		cfg.AmbientPath = filepath.Join(root, "ambient.toml")
	}
	if configure != nil {
		configure(cfg)
	}
	cfg, err := app.NewConfig(*cfg)
	require.NoError(t, err)

	// 3. Run, turning startup panics into errors.
	var (
		out, logs *app.SafeBuffer
		runErr    error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				runErr = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		var a *app.App
		a, out, logs = app.SetupAppTest(t, cfg)
		runErr = a.Run(context.Background())
	}()

	result := &HarnessResult{Err: runErr}
	if out != nil {
		result.Output = out.String()
		result.LogOutput = logs.String()
	}
	return result
}
