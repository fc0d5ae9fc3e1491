package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/thenoetrevino/obra/internal/cli"
)

// errEndOfInput stops the loop when the input stream is exhausted mid-prompt
var errEndOfInput = errors.New("end of input")

// errReadInput wraps a failure of the input stream. A failed scanner never
// yields another line, so the loop stops with this error.
var errReadInput = errors.New("read input")

// readString prints prompt and returns the trimmed line. A blank line gives
// ok == false.
func (r *Runner) readString(prompt string) (value string, ok bool, err error) {
	fmt.Fprintf(r.out, "%s: ", prompt)
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %w", errReadInput, err)
		}
		return "", false, errEndOfInput
	}
	line := strings.TrimSpace(r.in.Text())
	if r.echo {
		fmt.Fprintln(r.out, line)
	}
	return line, line != "", nil
}

// readInt is readString converted to an int
func (r *Runner) readInt(prompt string) (int, bool, error) {
	s, ok, err := r.readString(prompt)
	if err != nil || !ok {
		return 0, ok, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false, fmt.Errorf("%s is not a valid number", s)
	}
	return n, true, nil
}

// readHours is readString converted to a non-negative two-place decimal
func (r *Runner) readHours(prompt string) (decimal.Decimal, bool, error) {
	s, ok, err := r.readString(prompt)
	if err != nil || !ok {
		return decimal.Zero, ok, err
	}
	d, err := cli.ParseHours(s)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("%s is not a valid decimal number: %w", s, err)
	}
	return d, true, nil
}

// readDifficulty is readInt limited to the 1-5 scale
func (r *Runner) readDifficulty(prompt string) (int, bool, error) {
	d, ok, err := r.readInt(prompt)
	if err != nil || !ok {
		return 0, ok, err
	}
	if err := cli.ValidateDifficulty(d); err != nil {
		return 0, false, err
	}
	return d, true, nil
}

