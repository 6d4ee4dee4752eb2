package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/vovakirdan/tui-tanks/internal/config"
)

// errNoDifficulty is returned when input ends before a valid choice.
var errNoDifficulty = errors.New("no difficulty selected")

// promptDifficulty asks for a difficulty on a line-oriented stream and
// repeats the question until it reads a number in range.
func promptDifficulty(r io.Reader, w io.Writer) (config.Difficulty, error) {
	fmt.Fprintln(w, "Select a difficulty: ")
	for d := config.MinDifficulty; d <= config.MaxDifficulty; d++ {
		fmt.Fprintf(w, "%d. %s\n", int(d), d)
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		n, err := strconv.Atoi(sc.Text())
		if err != nil {
			fmt.Fprintln(w, "Invalid input- Retry: ")
			continue
		}
		d := config.Difficulty(n)
		if d.Validate() != nil {
			fmt.Fprintln(w, "Invalid- Retry: ")
			continue
		}
		return d, nil
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return 0, errNoDifficulty
}
