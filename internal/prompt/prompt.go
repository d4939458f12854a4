// Package prompt reads line-oriented answers from the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/localnerve/marketdb/internal/types"
)

// Reader prints prompts to out and reads answers from in, one line each
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Reader
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Line prints label and returns the next line without its terminator.
// io.EOF is returned only when the input ends before any character.
func (r *Reader) Line(label string) (string, error) {
	if label != "" {
		fmt.Fprint(r.out, label)
	}
	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choice reads a menu selection, re-prompting until an integer is entered.
// Range is not checked; callers treat unknown numbers themselves.
func (r *Reader) Choice() (int, error) {
	for {
		line, err := r.Line("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(r.out, "Your input is invalid!")
			continue
		}
		return n, nil
	}
}

// Int64 reads an integer field
func (r *Reader) Int64(label string) (int64, error) {
	line, err := r.Line(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, invalid(label, line)
	}
	return n, nil
}

// Int reads an integer field
func (r *Reader) Int(label string) (int, error) {
	n, err := r.Int64(label)
	return int(n), err
}

// Float reads a finite decimal field
func (r *Reader) Float(label string) (float64, error) {
	line, err := r.Line(label)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalid(label, line)
	}
	return f, nil
}

// YesNo reads a y/n answer; anything but y or yes means no
func (r *Reader) YesNo(label string) (bool, error) {
	line, err := r.Line(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

func invalid(label, value string) error {
	field := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(label), ":"))
	return types.Reject(types.KindInvalidInput, fmt.Sprintf("Invalid value %q for %s.", strings.TrimSpace(value), field))
}
