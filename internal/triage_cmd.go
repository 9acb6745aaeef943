package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/email"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/triage"
	pub_models "github.com/baalimago/mai/pkg/models"
)

type triageCommand struct {
	conf      Config
	pol       *policy.Policy
	target    string
	completer models.Completer
	store     *thread.Store
}

func newTriageCommand(conf Config, pol *policy.Policy, args []string) (models.Command, error) {
	target, _ := firstToken(args)
	completer, err := CreateCompleter(conf.Model)
	if err != nil {
		return nil, err
	}
	store, err := thread.Open(conf.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open thread store: %w", err)
	}
	return &triageCommand{
		conf:      conf,
		pol:       pol,
		target:    target,
		completer: completer,
		store:     store,
	}, nil
}

func (t *triageCommand) Run(ctx context.Context) error {
	defer t.store.Close()
	raw, err := t.readTarget()
	if err != nil {
		return err
	}
	parsed, err := email.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse email: %w", err)
	}
	verdict, err := triage.Classify(ctx, t.completer, t.pol, parsed)
	if err != nil {
		return fmt.Errorf("failed to classify email: %w", err)
	}
	ancli.Okf("verdict: %v\n", verdict.Decision)
	if verdict.Reasoning != "" {
		fmt.Printf("reasoning: %v\n", verdict.Reasoning)
	}

	run := thread.NewRun(parsed, verdict.Decision, verdict.Reasoning)
	if t.conf.ThreadID != "" {
		run.ID = t.conf.ThreadID
		run.Chat.ID = t.conf.ThreadID
	}

	if verdict.Decision.Terminal() {
		if verdict.Decision == pub_models.DecisionNotify {
			// Placeholder until a real notification channel exists
			ancli.Noticef("you should have a look at '%v' from %v\n", parsed.Subject, parsed.Author)
		}
		run.Phase = pub_models.PhaseDone
		if err := t.store.Save(&run); err != nil {
			return fmt.Errorf("failed to checkpoint run '%v': %w", run.ID, err)
		}
		return nil
	}

	responder := newResponder(t.conf, t.pol, t.completer, t.store)
	return handleSuspension(responder.Start(ctx, &run))
}

// readTarget reads the email to triage, from stdin when the target is
// '-' or missing, from the file path otherwise.
func (t *triageCommand) readTarget() ([]byte, error) {
	if t.target == "" || t.target == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read email from stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(t.target)
	if err != nil {
		return nil, fmt.Errorf("failed to read email file: %w", err)
	}
	return raw, nil
}

// handleSuspension converts a suspension into resume guidance, any
// other loop outcome passes through.
func handleSuspension(err error) error {
	if err == nil {
		return nil
	}
	var interrupt *pub_models.InterruptError
	if errors.As(err, &interrupt) {
		ancli.Noticef("the assistant needs your input: %v\n", interrupt.Question)
		fmt.Printf("answer with: mai resume %v <answer>\n", interrupt.ThreadID)
		return nil
	}
	return err
}
