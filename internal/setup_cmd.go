package internal

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/utils"
)

// setupCommand materializes the config dir with default files so that
// the user has something to edit.
type setupCommand struct {
	conf Config
}

func (s setupCommand) Run(ctx context.Context) error {
	// Loading with defaults creates anything missing
	if _, err := utils.LoadConfigFromFile(s.conf.ConfigDir, "mailConfig.json", nil, &Default); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	if _, err := policy.Load(s.conf.ConfigDir); err != nil {
		return fmt.Errorf("failed to create policy: %w", err)
	}
	if err := utils.LoadTheme(s.conf.ConfigDir); err != nil {
		return fmt.Errorf("failed to create theme: %w", err)
	}
	ancli.Okf("config: %v\n", filepath.Join(s.conf.ConfigDir, "mailConfig.json"))
	ancli.Okf("policy: %v\n", policy.Path(s.conf.ConfigDir))
	ancli.Okf("theme: %v\n", utils.ThemeConfigPath(s.conf.ConfigDir))
	ancli.Okf("threads: %v\n", thread.Path(s.conf.ConfigDir))
	fmt.Println("edit the policy to teach the assistant your triage habits")
	return nil
}
