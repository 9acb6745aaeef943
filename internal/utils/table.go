package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
)

// SelectFromTable by:
// 1. Printing a header and one row per item according to rowFormater
// 2. Reading the user's pick by index
// 3. Clearing the printed rows before returning
// Returns the chosen index.
func SelectFromTable[T any](header string, items []T,
	rowFormater func(int, T) (string, error),
) (int, error) {
	fmt.Println(header)
	headerWidth := utf8.RuneCount([]byte(header))
	line := strings.Repeat("-", headerWidth)
	fmt.Printf("%v\n", line)

	amPrinted := 2
	for i, item := range items {
		if err := printSelectRow(os.Stdout, i, item, rowFormater); err != nil {
			return -1, fmt.Errorf("failed to print row: %w", err)
		}
		amPrinted++
	}

	for {
		fmt.Print("pick index ('q' to abort): ")
		choice, err := ReadUserInput()
		if err != nil {
			return -1, fmt.Errorf("failed to read user pick: %w", err)
		}
		idx, convErr := strconv.Atoi(choice)
		if convErr != nil {
			ancli.Warnf("'%v' is not an index\n", choice)
			continue
		}
		if idx < 0 || idx >= len(items) {
			ancli.Warnf("index: '%v' is out of range, max: '%v'\n", idx, len(items)-1)
			continue
		}
		if err := ClearTermTo(-1, amPrinted+1); err != nil {
			return -1, fmt.Errorf("failed to clear term: %w", err)
		}
		return idx, nil
	}
}

func printSelectRow[T any](w io.Writer, i int, item T, formatRow func(int, T) (string, error)) error {
	formatted, err := formatRow(i, item)
	if err != nil {
		return fmt.Errorf("failed to format row: %w", err)
	}

	fmt.Fprintln(w, Colorize(globalTheme.Breadtext, formatted))
	return nil
}
