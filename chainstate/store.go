package chainstate

import (
	"fmt"

	"github.com/bitfsorg/libtrx-go/trx"
)

// commitPlan is a transaction decoded for commit.
type commitPlan struct {
	txid    trx.Digest
	raw     []byte
	sources []trx.OutputSource
	outputs []trx.TransactionOutput
}

func planCommit(stx *trx.SignedTransaction) (*commitPlan, error) {
	if stx == nil {
		return nil, fmt.Errorf("%w: signed transaction", ErrNilParam)
	}
	inputs, err := stx.Envelope.DecodeInputs()
	if err != nil {
		return nil, err
	}
	outputs, err := stx.Envelope.DecodeOutputs()
	if err != nil {
		return nil, err
	}
	sources := make([]trx.OutputSource, len(inputs))
	for i, in := range inputs {
		sources[i] = in.Source
	}
	return &commitPlan{
		txid:    stx.TxID(),
		raw:     stx.Bytes(),
		sources: sources,
		outputs: outputs,
	}, nil
}

// isMature reports whether an output committed at entryHeight has left the
// maturity window at height.
func isMature(entryHeight, maturity, height uint32) bool {
	return uint64(entryHeight)+uint64(maturity) <= uint64(height)
}

// checkSpendable rejects a spent entry or one already claimed earlier in
// the same transaction. seen is updated.
func checkSpendable(e *Entry, seen map[uint64]struct{}) error {
	if e.Spent {
		return fmt.Errorf("%w: %s", ErrOutputAlreadySpent, e.Ref)
	}
	if _, dup := seen[e.TableIndex]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateInput, e.Ref)
	}
	seen[e.TableIndex] = struct{}{}
	return nil
}
