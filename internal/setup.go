package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/models"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/respond"
	"github.com/baalimago/mai/internal/sweep"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/tools"
	"github.com/baalimago/mai/internal/utils"
)

type Mode int

const (
	HELP Mode = iota
	TRIAGE
	SWEEP
	RESUME
	THREADS
	SETUP
	VERSION
)

func getModeFromArgs(cmd string) (Mode, error) {
	switch cmd {
	case "triage", "t":
		return TRIAGE, nil
	case "sweep", "s":
		return SWEEP, nil
	case "resume", "r":
		return RESUME, nil
	case "threads", "th":
		return THREADS, nil
	case "setup":
		return SETUP, nil
	case "help", "h":
		return HELP, nil
	case "version", "v":
		return VERSION, nil
	default:
		return HELP, fmt.Errorf("unknown command: '%v'", cmd)
	}
}

// Setup parses flags and the command word, loads configuration and
// builds the fully wired Command for main to run.
func Setup(usage string, args []string) (models.Command, error) {
	flagSet, postFlagArgs, err := parseFlags(defaultFlags, args)
	if err != nil {
		return nil, err
	}
	if len(postFlagArgs) == 0 {
		return helpCommand{usage: usage}, nil
	}
	mode, err := getModeFromArgs(postFlagArgs[0])
	if err != nil {
		return nil, err
	}
	switch mode {
	case HELP:
		return helpCommand{usage: usage}, nil
	case VERSION:
		return versionCommand{}, nil
	}

	configDirPath, err := utils.GetMaiConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to find config dir: %w", err)
	}
	conf, err := utils.LoadConfigFromFile(configDirPath, "mailConfig.json", nil, &Default)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	conf.ConfigDir = configDirPath
	applyFlagOverrides(&conf, flagSet, defaultFlags)
	// Colors are cosmetic, a broken theme.json shouldn't block the run
	if err := utils.LoadTheme(configDirPath); err != nil {
		ancli.Warnf("failed to load theme: %v\n", err)
	}

	pol, err := loadPolicy(conf)
	if err != nil {
		return nil, err
	}

	switch mode {
	case SETUP:
		return setupCommand{conf: conf}, nil
	case THREADS:
		return newThreadsHandler(conf, postFlagArgs[1:])
	case TRIAGE:
		return newTriageCommand(conf, pol, postFlagArgs[1:])
	case SWEEP:
		if len(postFlagArgs) < 2 {
			return nil, fmt.Errorf("sweep requires a glob argument, see 'mai help'")
		}
		completer, err := CreateCompleter(conf.Model)
		if err != nil {
			return nil, err
		}
		return &sweep.Command{
			Pattern:   postFlagArgs[1],
			Completer: completer,
			Policy:    pol,
		}, nil
	case RESUME:
		return newResumeCommand(conf, pol, postFlagArgs[1:])
	default:
		return nil, fmt.Errorf("unknown mode: %v", mode)
	}
}

func loadPolicy(conf Config) (*policy.Policy, error) {
	if conf.PolicyPath != "" {
		pol, err := policy.LoadFile(conf.PolicyPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load policy: %w", err)
		}
		return pol, nil
	}
	pol, err := policy.Load(conf.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}
	return pol, nil
}

// newResponder wires the response loop the way every command needs it:
// full tool registry, schemas registered on the vendor, checkpoints to
// the thread store.
func newResponder(conf Config, pol *policy.Policy, completer models.Completer, store *thread.Store) *respond.Responder {
	reg := tools.Defaults()
	RegisterTools(completer, reg)
	r := respond.New(completer, reg, store, pol)
	if conf.MaxToolCalls != 0 {
		r.MaxToolCalls = conf.MaxToolCalls
	}
	r.ToolOutputRuneLimit = conf.ToolOutputRuneLimit
	r.Raw = conf.Raw
	return r
}

// firstToken splits off the leading token, returning it and the rest.
func firstToken(args []string) (string, []string) {
	if len(args) == 0 {
		return "", nil
	}
	return strings.TrimSpace(args[0]), args[1:]
}

type helpCommand struct {
	usage string
}

func (h helpCommand) Run(ctx context.Context) error {
	fmt.Print(h.usage)
	return nil
}
