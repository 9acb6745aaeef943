// Package sweep batch-triages every email file matching a glob,
// printing one verdict line per file.
package sweep

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/mai/internal/email"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/triage"
)

type Command struct {
	Pattern   string
	Completer models.JSONCompleter
	Policy    *policy.Policy

	// Out receives the verdict lines, nil defaults to stdout
	Out io.Writer
}

// Run triages every file matching the pattern. Unreadable or unparsable
// files are warned about and skipped, a classification violation aborts
// the whole sweep since it means the model broke contract, not the file.
func (c *Command) Run(ctx context.Context) error {
	if c.Out == nil {
		c.Out = os.Stdout
	}
	if !strings.Contains(c.Pattern, "*") {
		ancli.PrintWarn(fmt.Sprintf("found no '*' in glob: %v, has it already been expanded? Consider enclosing glob in single quotes\n", c.Pattern))
	}
	files, err := filepath.Glob(c.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse glob: %w", err)
	}
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.Okf("found %v files: %v\n", len(files), files)
	}
	if len(files) == 0 {
		return fmt.Errorf("no files match glob: '%v'", c.Pattern)
	}

	skipped := 0
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, err := os.ReadFile(file)
		if err != nil {
			ancli.PrintWarn(fmt.Sprintf("failed to read file: %v\n", err))
			skipped++
			continue
		}
		parsed, err := email.Parse(raw)
		if err != nil {
			ancli.PrintWarn(fmt.Sprintf("failed to parse '%v': %v\n", file, err))
			skipped++
			continue
		}
		verdict, err := triage.Classify(ctx, c.Completer, c.Policy, parsed)
		if err != nil {
			return fmt.Errorf("failed to classify '%v': %w", file, err)
		}
		fmt.Fprintf(c.Out, "%-8v %v  %v\n", verdict.Decision, file, verdict.Reasoning)
	}
	if skipped > 0 {
		return fmt.Errorf("skipped %v/%v files", skipped, len(files))
	}
	return nil
}
