package tools

import (
	"errors"
	"os"

	"github.com/baalimago/go_away_boilerplate/pkg/ancli"
	"github.com/baalimago/go_away_boilerplate/pkg/debug"
	"github.com/baalimago/go_away_boilerplate/pkg/misc"
	pub_models "github.com/baalimago/mai/pkg/models"
)

// Invoke the call: look up the tool, validate the inputs against its
// schema, then execute. The returned error is one of the typed run-fatal
// violations from pkg/models, so callers can branch on failure kind with
// errors.As. ErrAwaitUser passes through untouched since suspension is
// not a failure.
func (r *Registry) Invoke(call pub_models.Call) (string, error) {
	t, exists := r.Get(call.Name)
	if !exists {
		return "", &pub_models.UnknownToolError{Tool: call.Name, CallID: call.ID}
	}
	if misc.Truthy(os.Getenv("DEBUG_CALL")) {
		ancli.Noticef("Invoke call: %v", debug.IndentedJsonFmt(call))
	}
	inp := pub_models.Input{}
	if call.Inputs != nil {
		inp = *call.Inputs
	}
	if err := validateInputs(t.Specification(), inp); err != nil {
		return "", &pub_models.ToolExecutionError{Tool: call.Name, CallID: call.ID, Err: err}
	}
	out, err := t.Call(inp)
	if err != nil {
		if errors.Is(err, ErrAwaitUser) {
			return "", err
		}
		return "", &pub_models.ToolExecutionError{Tool: call.Name, CallID: call.ID, Err: err}
	}
	return out, nil
}

// Specifications returns the registered tools' schemas, sorted by name
// so that the vendor wire order stays deterministic between runs.
func (r *Registry) Specifications() []pub_models.Specification {
	specs := make([]pub_models.Specification, 0)
	for _, name := range r.Names() {
		t, ok := r.Get(name)
		if !ok {
			continue
		}
		specs = append(specs, t.Specification())
	}
	return specs
}
