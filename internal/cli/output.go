package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/thenoetrevino/obra/internal/cli/styles"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and ErrOut default to os.Stdout and os.Stderr
	Out    io.Writer
	ErrOut io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut != nil {
		return f.ErrOut
	}
	return os.Stderr
}

// Success outputs successful operation result under the given key
func (f *OutputFormatter) Success(key string, data interface{}) error {
	if f.Quiet {
		// Extract ID if possible
		if idGetter, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", idGetter.GetID())
			return err
		}
	}

	if f.JSON {
		return f.JSONResult(key, data)
	}

	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// JSONResult writes {"success": true, key: data}
func (f *OutputFormatter) JSONResult(key string, data interface{}) error {
	return json.NewEncoder(f.out()).Encode(map[string]interface{}{
		"success": true,
		key:       data,
	})
}

// Printf writes human-readable output. It is silent in quiet mode.
func (f *OutputFormatter) Printf(format string, args ...any) {
	if f.Quiet {
		return
	}
	fmt.Fprintf(f.out(), format, args...)
}

// Successf writes a human-readable confirmation prefixed with a styled
// check mark. It is silent in quiet mode.
func (f *OutputFormatter) Successf(format string, args ...any) {
	if f.Quiet {
		return
	}
	fmt.Fprintf(f.out(), "%s %s", styles.SuccessStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]interface{}{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]interface{}{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(f.errOut(), "%s %s\n", styles.ErrorStyle.Render("Error"), message)
	if suggestion != "" {
		fmt.Fprintf(f.errOut(), "%s %s\n", styles.WarningStyle.Render("Suggestion"), suggestion)
	}
	return nil
}
