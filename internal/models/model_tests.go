// This package contains tests intended to be used by the implementations
// of the ToolCompleter and JSONCompleter interfaces
package models

import (
	"context"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// These tests are used in other places of code, an attempt at generic testing
// to ensure implementation standards are kept
func ToolCompleter_Context_Test(t *testing.T, c ToolCompleter) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		c.Complete(ctx, pub_models.Chat{})
	}, time.Second)
}

func JSONCompleter_Context_Test(t *testing.T, c JSONCompleter) {
	testboil.ReturnsOnContextCancel(t, func(ctx context.Context) {
		c.CompleteJSON(ctx, pub_models.Chat{})
	}, time.Second)
}
