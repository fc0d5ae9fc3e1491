// Package cli provides helpers for running obra cobra commands against a
// test database
package cli

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/app"
	obracli "github.com/thenoetrevino/obra/internal/cli"
	"github.com/thenoetrevino/obra/internal/testutil"
)

// SetupCLITest creates an in-memory database with the schema applied and an
// App around it. The App is closed when the test ends.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testApp := app.New(db, testutil.SQLiteDialect(t))
	t.Cleanup(func() {
		_ = testApp.Close()
	})

	return db, testApp
}

// ExecuteCLICommand executes a CLI command with a test app instance and
// returns what it wrote to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandWithStderr(t, testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandWithStderr is ExecuteCLICommand that also returns stderr
func ExecuteCLICommandWithStderr(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()
	return execute(t, testApp, cmd, args, "")
}

// ExecuteCLICommandWithInput runs the command with input on stdin
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, error) {
	t.Helper()
	stdout, _, err := execute(t, testApp, cmd, args, input)
	return stdout, err
}

func execute(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string, input string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewBufferString(input))
	cmd.SetArgs(args)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	ctx := obracli.WithApp(context.Background(), testApp)
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
