package chainstate

import (
	"fmt"

	"github.com/bitfsorg/libtrx-go/trx"
)

// Resolve finds the unspent output an input claims. Both addressing modes
// resolve to the same entry for the same output.
func Resolve(state ChainState, in trx.TransactionInput) (*Entry, error) {
	if state == nil {
		return nil, fmt.Errorf("%w: chain state", ErrNilParam)
	}
	e, err := state.FindOutput(in.Source)
	if err != nil {
		return nil, err
	}
	spent, err := state.IsSpent(e.Ref)
	if err != nil {
		return nil, err
	}
	if spent {
		return nil, fmt.Errorf("%w: %s", ErrOutputAlreadySpent, e.Ref)
	}
	return e, nil
}
