package assistant

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/baalimago/mai/internal"
	"github.com/baalimago/mai/internal/policy"
	"github.com/baalimago/mai/internal/respond"
	"github.com/baalimago/mai/internal/thread"
	"github.com/baalimago/mai/internal/tools"
	"github.com/baalimago/mai/internal/utils"
	"github.com/baalimago/mai/pkg/models"
)

// Completer is the vendor boundary the assistant needs: one method for
// the forced-tool response turns, one for the JSON triage verdict.
type Completer interface {
	Setup() error
	Complete(ctx context.Context, chat models.Chat) (models.Message, error)
	CompleteJSON(ctx context.Context, chat models.Chat) (string, error)
}

type Assistant struct {
	model        string
	cfgDir       string
	storeDir     string
	pol          *policy.Policy
	maxToolCalls *int
	completer    Completer
	out          io.Writer

	store     *thread.Store
	responder *respond.Responder
}

var defaultConf = Assistant{
	model: "gpt-4.1-mini",
	out:   os.Stdout,
}

type Option func(*Assistant)

func New(options ...Option) Assistant {
	conf := defaultConf
	cfgDir, err := utils.GetMaiConfigDir()
	if err != nil {
		cfgDir = "."
	}
	conf.cfgDir = cfgDir

	for _, o := range options {
		o(&conf)
	}
	if conf.storeDir == "" {
		conf.storeDir = conf.cfgDir
	}
	return conf
}

func WithModel(model string) Option {
	return func(a *Assistant) {
		a.model = model
	}
}

func WithConfigDir(cfgDir string) Option {
	return func(a *Assistant) {
		if !strings.HasSuffix(cfgDir, "mai") {
			cfgDir = path.Join(cfgDir, "mai")
		}
		a.cfgDir = cfgDir
	}
}

// WithStore sets the directory holding the checkpoint store, when it
// should live apart from the config dir.
func WithStore(dir string) Option {
	return func(a *Assistant) {
		a.storeDir = dir
	}
}

func WithPolicy(pol *policy.Policy) Option {
	return func(a *Assistant) {
		a.pol = pol
	}
}

func WithMaxToolCalls(am int) Option {
	return func(a *Assistant) {
		a.maxToolCalls = &am
	}
}

// WithCompleter swaps the vendor for a custom implementation, most
// often a scripted one under test.
func WithCompleter(c Completer) Option {
	return func(a *Assistant) {
		a.completer = c
	}
}

func WithOutputTo(out io.Writer) Option {
	return func(a *Assistant) {
		a.out = out
	}
}

// Setup resolves everything left unconfigured: vendor from the model
// selector, policy and checkpoint store from the config dir. It must
// run before Process or Resume.
func (a *Assistant) Setup(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if a.completer == nil {
		completer, err := internal.CreateCompleter(a.model)
		if err != nil {
			return fmt.Errorf("failed to create completer: %w", err)
		}
		a.completer = completer
	} else if err := a.completer.Setup(); err != nil {
		return fmt.Errorf("failed to setup completer: %w", err)
	}
	if a.pol == nil {
		pol, err := policy.Load(a.cfgDir)
		if err != nil {
			return fmt.Errorf("failed to load policy: %w", err)
		}
		a.pol = pol
	}
	store, err := thread.Open(a.storeDir)
	if err != nil {
		return fmt.Errorf("failed to open thread store: %w", err)
	}
	a.store = store

	reg := tools.Defaults()
	internal.RegisterTools(a.completer, reg)
	responder := respond.New(a.completer, reg, a.store, a.pol)
	if a.maxToolCalls != nil {
		responder.MaxToolCalls = *a.maxToolCalls
	}
	responder.Out = a.out
	a.responder = responder
	return nil
}

// Close releases the checkpoint store.
func (a *Assistant) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}
