package internal

import (
	"github.com/baalimago/mai/internal/respond"
)

// Config holds the persisted assistant settings, stored as
// mailConfig.json in the config dir
type Config struct {
	Model        string `json:"model"`
	MaxToolCalls int    `json:"max-tool-calls"`
	// ToolOutputRuneLimit limits the amount of runes a tool result may
	// occupy in the conversation before it's truncated. Zero means no
	// limit.
	ToolOutputRuneLimit int    `json:"tool-output-rune-limit"`
	Raw                 bool   `json:"raw"`
	ConfigDir           string `json:"-"`
	PolicyPath          string `json:"-"`
	ThreadID            string `json:"-"`
}

var Default = Config{
	Model:               "gpt-4.1-mini",
	MaxToolCalls:        respond.DefaultMaxToolCalls,
	ToolOutputRuneLimit: 2500,
	Raw:                 false,
}

// applyFlagOverrides onto the file-loaded config. Only flags which
// deviate from their defaults may override, anything else would break
// the flags > file > default convention.
func applyFlagOverrides(conf *Config, flagSet, defaults Configurations) {
	if flagSet.ChatModel != defaults.ChatModel {
		conf.Model = flagSet.ChatModel
	}
	if flagSet.MaxToolCalls != defaults.MaxToolCalls {
		conf.MaxToolCalls = flagSet.MaxToolCalls
	}
	if flagSet.PrintRaw != defaults.PrintRaw {
		conf.Raw = flagSet.PrintRaw
	}
	if flagSet.PolicyPath != defaults.PolicyPath {
		conf.PolicyPath = flagSet.PolicyPath
	}
	if flagSet.ThreadID != defaults.ThreadID {
		conf.ThreadID = flagSet.ThreadID
	}
}
