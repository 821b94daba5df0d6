package reduce

import (
	"fmt"

	"github.com/matzehuels/fsa/pkg/automaton"
	fsaerrors "github.com/matzehuels/fsa/pkg/errors"
)

// Result counts what [Minimize] changed.
type Result struct {
	UnreachableRemoved int `json:"unreachable_removed"` // states dropped by RemoveUnreachable
	UselessRemoved     int `json:"useless_removed"`     // states dropped by RemoveUseless
	StatesMerged       int `json:"states_merged"`       // states folded into another by refinement
	States             int `json:"states"`              // states left afterwards
}

// Changed reports whether minimization modified the automaton.
func (r Result) Changed() bool {
	return r.UnreachableRemoved+r.UselessRemoved+r.StatesMerged > 0
}

func (r Result) String() string {
	return fmt.Sprintf("%d unreachable, %d useless, %d merged, %d states",
		r.UnreachableRemoved, r.UselessRemoved, r.StatesMerged, r.States)
}

func noInitial(op string) error {
	return fsaerrors.Wrap(fsaerrors.ErrCodeConfiguration, automaton.ErrNoInitialState, "%s", op)
}
