package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/obra/internal/models"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

// FormatterFromFlags builds an OutputFormatter from --json and --quiet,
// writing to the command's output streams
func FormatterFromFlags(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// ParseID reads a positive ID from the first positional argument or, if
// there is none, from the --id flag
func ParseID(cmd *cobra.Command, args []string) (int, error) {
	var id int
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return 0, fmt.Errorf("invalid ID %q", args[0])
		}
		id = n
	} else if cmd.Flags().Lookup("id") != nil {
		id, _ = cmd.Flags().GetInt("id")
	}
	if id <= 0 {
		return 0, errors.New("ID must be a positive integer")
	}
	return id, nil
}

// ParseHours parses a non-negative decimal rounded to two places
func ParseHours(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid number %q", s)
	}
	if d.IsNegative() {
		return decimal.Zero, models.ErrNegativeHours
	}
	return d.Round(models.HoursScale), nil
}

// ValidateDifficulty checks d is within the 1-5 scale
func ValidateDifficulty(d int) error {
	if d < models.MinDifficulty || d > models.MaxDifficulty {
		return models.ErrDifficultyOutOfRange
	}
	return nil
}

// Fail reports err through the formatter and returns it tagged with the
// matching exit code. A nil err is passed through.
func Fail(formatter *OutputFormatter, err error) error {
	if err == nil {
		return nil
	}

	exit := ExitCode(err)
	code, suggestion := "INTERNAL_ERROR", ""
	switch exit {
	case ExitUsage:
		code = "USAGE_ERROR"
	case ExitValidation:
		code = "VALIDATION_ERROR"
	case ExitNotFound:
		code = "PROJECT_NOT_FOUND"
		suggestion = "Run 'obra project list' to see existing projects"
	case ExitDataErr:
		code = "DATA_ACCESS_ERROR"
		suggestion = "Run 'obra init' if the database has not been created yet"
	}

	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		log.Printf("Error formatting error message: %v", fmtErr)
	}
	return WithExitCode(exit, err)
}

// Usage tags err as a usage error
func Usage(err error) error {
	return WithExitCode(ExitUsage, err)
}

// Invalid tags err as a validation error
func Invalid(err error) error {
	return WithExitCode(ExitValidation, err)
}
