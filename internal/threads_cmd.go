package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/utils"
)

const threadsUsage = `mai - (m)ail (a)rtificial (i)ntelligence

Usage: mai [flags] threads <subcommand> <threadID>

Commands:
  l|list                 List all stored runs, newest first.
  s|show    [threadID]   Print the stored conversation of the run, the most recent one when omitted.
  d|delete  <threadID>   Delete the run with the given thread ID.

The threadID is derived from the email subject, list the runs to find
it. Suspended runs show the pending question in 'show'.

Examples:
  - mai threads list
  - mai threads show Re:_server.room_bookings_a1b2c3d4
  - mai threads delete Re:_server.room_bookings_a1b2c3d4
`

// threadsFmt is index | updated | phase | decision | thread ID
const threadsFmt = "%-3v| %-20v| %-14v| %-8v| %v"

type threadsHandler struct {
	store  *thread.Store
	subCmd string
	arg    string
	raw    bool

	out io.Writer
}

func newThreadsHandler(conf Config, args []string) (models.Command, error) {
	subCmd, rest := firstToken(args)
	if subCmd == "" {
		subCmd = "list"
	}
	arg, _ := firstToken(rest)
	store, err := thread.Open(conf.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open thread store: %w", err)
	}
	return &threadsHandler{
		store:  store,
		subCmd: subCmd,
		arg:    arg,
		raw:    conf.Raw,
		out:    os.Stdout,
	}, nil
}

func (t *threadsHandler) Run(ctx context.Context) error {
	defer t.store.Close()
	switch t.subCmd {
	case "list", "l":
		return t.list()
	case "show", "s":
		return t.show()
	case "delete", "d":
		return t.delete()
	case "help", "h":
		fmt.Fprint(t.out, threadsUsage)
		return nil
	default:
		return fmt.Errorf("unknown subcommand: '%v'\n%v", t.subCmd, threadsUsage)
	}
}

func (t *threadsHandler) list() error {
	metas, err := t.store.List()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(metas) == 0 {
		ancli.Okf("no stored runs yet, triage something first\n")
		return nil
	}
	header := fmt.Sprintf(threadsFmt, "idx", "updated", "phase", "decision", "thread")
	fmt.Fprintln(t.out, header)
	fmt.Fprintln(t.out, strings.Repeat("-", len(header)))
	for i, meta := range metas {
		fmt.Fprintln(t.out, fmt.Sprintf(threadsFmt, i, meta.Updated.Format("2006-01-02 15:04:05"), meta.Phase, meta.Decision, meta.ID))
	}
	return nil
}

func (t *threadsHandler) show() error {
	run, err := t.loadTarget()
	if err != nil {
		return err
	}
	header := fmt.Sprintf("thread: %v\nphase: %v\ndecision: %v\nsubject: %v\n", run.ID, run.Phase, run.Decision, run.Email.Subject)
	if !t.raw {
		header = utils.Colorize(utils.ThemePrimaryColor(), header)
	}
	fmt.Fprintf(t.out, "%v\n", header)
	for _, msg := range run.Chat.Messages {
		if err := utils.AttemptPrettyPrint(t.out, msg, msg.Role, t.raw); err != nil {
			ancli.Warnf("failed to print message: %v\n", err)
		}
	}
	if run.Phase.Suspended() {
		ancli.Noticef("pending question: %v\n", run.PendingQuestion)
		hint := fmt.Sprintf("answer with: mai resume %v <answer>", run.ID)
		if !t.raw {
			hint = utils.Colorize(utils.ThemeSecondaryColor(), hint)
		}
		fmt.Fprintln(t.out, hint)
	}
	return nil
}

// loadTarget resolves the run to show, the most recently updated one
// when no thread ID is given.
func (t *threadsHandler) loadTarget() (thread.Run, error) {
	if t.arg == "" {
		run, err := t.store.Latest()
		if err != nil {
			if errors.Is(err, thread.ErrRunNotFound) {
				return thread.Run{}, fmt.Errorf("no stored runs yet, triage something first")
			}
			return thread.Run{}, fmt.Errorf("failed to load latest run: %w", err)
		}
		return run, nil
	}
	run, err := t.store.Load(t.arg)
	if err != nil {
		if errors.Is(err, thread.ErrRunNotFound) {
			return thread.Run{}, fmt.Errorf("no run with thread ID: '%v'", t.arg)
		}
		return thread.Run{}, fmt.Errorf("failed to load run: %w", err)
	}
	return run, nil
}

func (t *threadsHandler) delete() error {
	if t.arg == "" {
		return fmt.Errorf("delete requires a thread ID, list the runs to find it")
	}
	if err := t.store.Delete(t.arg); err != nil {
		if errors.Is(err, thread.ErrRunNotFound) {
			return fmt.Errorf("no run with thread ID: '%v'", t.arg)
		}
		return fmt.Errorf("failed to delete run: %w", err)
	}
	ancli.Okf("deleted run '%v'\n", t.arg)
	return nil
}
