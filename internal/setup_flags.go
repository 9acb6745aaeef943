package internal

import (
	"flag"
	"fmt"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/utils"
)

// Configurations is the flag-level view of the settings. It's folded
// into the file-loaded Config by applyFlagOverrides.
type Configurations struct {
	ChatModel    string
	PolicyPath   string
	ThreadID     string
	MaxToolCalls int
	PrintRaw     bool
}

var defaultFlags = Configurations{
	ChatModel:    "",
	PolicyPath:   "",
	ThreadID:     "",
	MaxToolCalls: 0,
	PrintRaw:     false,
}

// parseFlags parses CLI flags into Configurations. Paired short/long
// flags are mutually exclusive, setting both is an error.
func parseFlags(defaults Configurations, args []string) (Configurations, []string, error) {
	fs := flag.NewFlagSet("mai", flag.ContinueOnError)
	fs.String("A-helpful-nonexisting-flag", "there is no default", "This isn't a flag. It's only here to tell you that 'mai h/help' gives better overview of usage than 'mai -h'.")

	cmShort := fs.String("cm", defaults.ChatModel, "Set the chat model to use. Mutually exclusive with chat-model flag.")
	cmLong := fs.String("chat-model", defaults.ChatModel, "Set the chat model to use. Mutually exclusive with cm flag.")

	polShort := fs.String("pol", defaults.PolicyPath, "Set the path to a policy toml file. Mutually exclusive with policy flag.")
	polLong := fs.String("policy", defaults.PolicyPath, "Set the path to a policy toml file. Mutually exclusive with pol flag.")

	tidShort := fs.String("tid", defaults.ThreadID, "Set the thread ID to triage under, or to resume. Mutually exclusive with thread flag.")
	tidLong := fs.String("thread", defaults.ThreadID, "Set the thread ID to triage under, or to resume. Mutually exclusive with tid flag.")

	mtcShort := fs.Int("mtc", defaults.MaxToolCalls, "Set the max amount of tool calls before a run is aborted. Mutually exclusive with max-tool-calls flag.")
	mtcLong := fs.Int("max-tool-calls", defaults.MaxToolCalls, "Set the max amount of tool calls before a run is aborted. Mutually exclusive with mtc flag.")

	printRawShort := fs.Bool("r", defaults.PrintRaw, "Set to true to print the transcript without role colors.")
	printRawLong := fs.Bool("raw", defaults.PrintRaw, "Set to true to print the transcript without role colors.")

	err := fs.Parse(args)
	if err != nil {
		return Configurations{}, []string{}, fmt.Errorf("failed to parse args: %w", err)
	}

	postParseArgs := fs.Args()

	chatModel, err := utils.ReturnNonDefault(*cmShort, *cmLong, defaults.ChatModel)
	exitWithFlagError(err, "cm", "chat-model")
	policyPath, err := utils.ReturnNonDefault(*polShort, *polLong, defaults.PolicyPath)
	exitWithFlagError(err, "pol", "policy")
	threadID, err := utils.ReturnNonDefault(*tidShort, *tidLong, defaults.ThreadID)
	exitWithFlagError(err, "tid", "thread")
	maxToolCalls, err := utils.ReturnNonDefault(*mtcShort, *mtcLong, defaults.MaxToolCalls)
	exitWithFlagError(err, "mtc", "max-tool-calls")

	printRaw := *printRawShort || *printRawLong

	newConf := Configurations{
		ChatModel:    chatModel,
		PolicyPath:   policyPath,
		ThreadID:     threadID,
		MaxToolCalls: maxToolCalls,
		PrintRaw:     printRaw,
	}

	return newConf, postParseArgs, nil
}

func exitWithFlagError(err error, shortFlag, longflag string) {
	if err != nil {
		ancli.PrintErr(fmt.Sprintf("flags: '%v' and '%v' are mutually exclusive, err: %v\n", shortFlag, longflag, err))
		os.Exit(1)
	}
}
