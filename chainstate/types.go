package chainstate

import (
	"time"

	"github.com/bitfsorg/libtrx-go/trx"
)

// Entry is one slot of the unspent-output table.
type Entry struct {
	TableIndex uint64
	Ref        trx.OutputReference
	Height     uint32 // block height the output was committed at
	Spent      bool
	Output     trx.TransactionOutput
}

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ChainState answers the lookups transaction validation needs.
	ChainState interface {
		// FindOutput returns the entry an input's addressing names.
		FindOutput(src trx.OutputSource) (*Entry, error)

		// IsSpent reports whether the output named by ref has been consumed.
		IsSpent(ref trx.OutputReference) (bool, error)

		// TableIndexIsMature reports whether table slot idx may be named
		// by index at block height.
		TableIndexIsMature(idx uint64, height uint32) (bool, error)
	}

	// Store is a ChainState that transactions can be committed to.
	Store interface {
		ChainState

		// Commit spends the transaction's inputs and appends its outputs
		// to the table. Either all of it applies or none of it does.
		Commit(stx *trx.SignedTransaction, height uint32) error

		// GetTx returns a committed transaction by canonical hash.
		GetTx(hash trx.Digest) (*trx.SignedTransaction, error)

		// TableSize returns the number of table slots allocated so far.
		TableSize() (uint64, error)

		// ListUnspent returns every unspent entry in table order.
		ListUnspent() ([]Entry, error)
	}

	// ValidatorMetrics receives the outcome and duration of every
	// validation and commit a Validator performs.
	ValidatorMetrics interface {
		ObserveValidate(err error, started time.Time)
		ObserveCommit(err error, outputs int, started time.Time)
	}
)
