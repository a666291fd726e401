package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
)

// confirm asks a yes/no question. On a terminal it shows an interactive
// prompt; otherwise it reads one line from in, where "y" or "yes"
// (any case) confirms and anything else, including EOF, declines.
func confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	if isTerminal(in) && isTerminal(out) {
		var ok bool

		err := huh.NewConfirm().
			Title(question).
			Affirmative("Yes").
			Negative("No").
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}

		return ok, err
	}

	return confirmLine(in, out, question)
}

func confirmLine(in io.Reader, out io.Writer, question string) (bool, error) {
	fmt.Fprintf(out, "%s (Y/N) ", question)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false, scanner.Err()
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
