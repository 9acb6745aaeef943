package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/utils"
)

type resumeCommand struct {
	conf      Config
	pol       *policy.Policy
	threadID  string
	answer    string
	completer models.Completer
	store     *thread.Store
}

func newResumeCommand(conf Config, pol *policy.Policy, args []string) (models.Command, error) {
	threadID := conf.ThreadID
	if threadID == "" {
		threadID, args = firstToken(args)
	}
	completer, err := CreateCompleter(conf.Model)
	if err != nil {
		return nil, err
	}
	store, err := thread.Open(conf.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open thread store: %w", err)
	}
	return &resumeCommand{
		conf:      conf,
		pol:       pol,
		threadID:  threadID,
		answer:    strings.TrimSpace(strings.Join(args, " ")),
		completer: completer,
		store:     store,
	}, nil
}

func (r *resumeCommand) Run(ctx context.Context) error {
	defer r.store.Close()
	threadID := r.threadID
	if threadID == "" {
		picked, err := r.pickSuspended()
		if err != nil {
			return err
		}
		threadID = picked
	}
	run, err := r.store.Load(threadID)
	if err != nil {
		return fmt.Errorf("failed to load run: %w", err)
	}
	answer := r.answer
	if answer == "" {
		ancli.Noticef("pending question: %v\n", run.PendingQuestion)
		fmt.Print("your answer: ")
		answer, err = utils.ReadUserInput()
		if err != nil {
			return err
		}
	}
	responder := newResponder(r.conf, r.pol, r.completer, r.store)
	return handleSuspension(responder.Resume(ctx, &run, answer))
}

// pickSuspended presents the runs awaiting user input and returns the
// chosen thread ID.
func (r *resumeCommand) pickSuspended() (string, error) {
	metas, err := r.store.List()
	if err != nil {
		return "", fmt.Errorf("failed to list runs: %w", err)
	}
	suspended := make([]thread.RunMeta, 0, len(metas))
	for _, meta := range metas {
		if meta.Phase.Suspended() {
			suspended = append(suspended, meta)
		}
	}
	if len(suspended) == 0 {
		return "", fmt.Errorf("no runs are awaiting user input")
	}
	idx, err := utils.SelectFromTable(
		fmt.Sprintf("%-3v| %-20v| %-30v| %v", "idx", "updated", "thread", "subject"),
		suspended,
		func(i int, meta thread.RunMeta) (string, error) {
			prefix := fmt.Sprintf("%-3v| %-20v| %-30v| ", i, meta.Updated.Format("2006-01-02 15:04:05"), meta.ID)
			// Long subjects would wrap the row and break the table clearing
			return utils.WidthAppropriateTrunc(meta.Subject, prefix, "", "", 10)
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to pick run: %w", err)
	}
	return suspended[idx].ID, nil
}
