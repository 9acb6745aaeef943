package models

import (
	"context"

	pub_models "github.com/baalimago/mai/pkg/models"
)

// Command is a fully configured unit of work, ready to be ran by main.
// Triage, sweep, resume and the thread subcommands all end up as one
// of these.
type Command interface {
	Run(ctx context.Context) error
}

// ToolCompleter produces the next assistant message for a chat where
// tool use is mandatory. Implementations must return the tool calls
// exactly in the order the vendor emitted them.
type ToolCompleter interface {
	Setup() error
	Complete(ctx context.Context, chat pub_models.Chat) (pub_models.Message, error)
}

// JSONCompleter produces a single JSON object answer, used by triage
// to force the categorical verdict.
type JSONCompleter interface {
	Setup() error
	CompleteJSON(ctx context.Context, chat pub_models.Chat) (string, error)
}

// Completer is the full vendor boundary.
type Completer interface {
	ToolCompleter
	JSONCompleter
}

// ToolRegistrant is implemented by vendors which need the tool
// specifications ahead of time to build their wire format.
type ToolRegistrant interface {
	RegisterTool(spec pub_models.Specification)
}
