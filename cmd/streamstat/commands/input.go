package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ErrNoValues is returned when the input contains no numeric values.
var ErrNoValues = errors.New("no numeric values in input")

// ReadValues reads whitespace-separated floating-point values from r
// until EOF. A token that does not parse as a float is an error.
func ReadValues(r io.Reader) ([]float64, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []float64

	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", scanner.Text(), err)
		}

		values = append(values, v)
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return nil, fmt.Errorf("read input: %w", scanErr)
	}

	return values, nil
}

// readInputFile reads values from the file at path, or from stdin when
// path is empty.
func readInputFile(path string) ([]float64, error) {
	if path == "" {
		return ReadValues(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	defer f.Close()

	return ReadValues(f)
}

// inputPath extracts the optional positional file argument.
func inputPath(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
