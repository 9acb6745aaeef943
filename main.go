package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	"github.com/baalimago/go_away_boilerplate/pkg/shutdown"
	"github.com/baalimago/mai/internal"
	"github.com/baalimago/mai/internal/utils"
	"github.com/joho/godotenv"
)

const usage = `mai - (m)ail (a)rtificial (i)ntelligence

Prerequisites:
  - Set the OPENAI_API_KEY environment variable to your OpenAI API key, or put it in a .env file in your working directory
  - (Optional) Set the OLLAMA_API_KEY environment variable if your ollama host requires one
  - (Optional) Set the NO_COLOR environment variable to disable ansi color output

Usage: mai [flags] <command>

Flags:
  -cm, -chat-model string      Set the chat model to use. (default is found in mailConfig.json)
  -pol, -policy string         Set the path to a policy toml file. (default is policy.toml in the mai config dir)
  -tid, -thread string         Set the thread ID to triage under, or to resume.
  -mtc, -max-tool-calls int    Set the max amount of tool calls before a run is aborted. (default is found in mailConfig.json)
  -r, -raw bool                Set to true to print transcripts without role colors. (default false)

Commands:
  h|help                        Display this help message
  setup                         Create the configuration files and print where they live
  t|triage <file>               Classify the email in <file> and act on the verdict. Use '-' or no file for stdin.
  s|sweep <glob>                Triage every email file matching the glob, one verdict line per file
  r|resume <threadID> [answer]  Answer the question a suspended run is waiting on, then let it continue
  v|version                     Print the version of mai

  th|threads  l|list                List all stored runs.
  th|threads  s|show    [threadID]  Show the transcript of a run, the most recent one when omitted.
  th|threads  d|delete  <threadID>  Delete the run with the given thread ID.
  th|threads  h|help                Display detailed help for threads subcommands.

Examples:
  - mai t invoice.eml
  - cat invoice.eml | mai triage -
  - mai -cm gpt-4o sweep 'inbox/*.eml'
  - mai -cm ollama:llama3.2 t invoice.eml
  - mai r a1b2c3d4 yes, thursday at 9 works
  - mai th l
  - mai threads show a1b2c3d4
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ancli.SetupSlog()
	if misc.Truthy(os.Getenv("DEBUG_CPU")) {
		f, err := os.Create("cpu_profile.prof")
		ok := true
		if err != nil {
			ancli.PrintErr(fmt.Sprintf("failed to create profiler file: %v", err))
		}
		if ok {
			defer f.Close()
			// Start the CPU profile
			err = pprof.StartCPUProfile(f)
			if err != nil {
				ancli.PrintErr(fmt.Sprintf("failed to start profiler : %v", err))
			}
			defer pprof.StopCPUProfile()
		}
	}

	// The API key may live in a .env next to the inbox being triaged
	err := godotenv.Load()
	if err != nil && misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintWarn(fmt.Sprintf("failed to load .env: %v\n", err))
	}

	err = handleOopsies()
	if err != nil {
		ancli.PrintWarn(fmt.Sprintf("failed to handle oopsies, but as we didn't panic, it should be benign. Error: %v\n", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	ctx = context.WithValue(ctx, utils.ContextCancelKey, cancel)
	command, err := internal.Setup(usage, args)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			ancli.Okf("Seems like you wanted out. Byebye!\n")
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to setup: %v\n", err))
		return 1
	}
	go func() { shutdown.Monitor(cancel) }()
	err = command.Run(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrUserInitiatedExit) {
			ancli.Okf("Seems like you wanted out. Byebye!\n")
			return 0
		}
		ancli.PrintErr(fmt.Sprintf("failed to run: %v\n", err))
		return 1
	}
	cancel()
	if misc.Truthy(os.Getenv("DEBUG")) {
		ancli.PrintOK("things seems to have worked out. Bye bye! 🚀\n")
	}
	return 0
}
