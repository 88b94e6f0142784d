package chainstate

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("chainstate: required parameter is nil")

	// ErrOutputNotFound indicates no committed output matches the input's addressing.
	ErrOutputNotFound = errors.New("chainstate: output not found")

	// ErrOutputAlreadySpent indicates the referenced output was consumed by an earlier transaction.
	ErrOutputAlreadySpent = errors.New("chainstate: output already spent")

	// ErrImmatureTableIndex indicates a table index that is still inside the maturity window.
	ErrImmatureTableIndex = errors.New("chainstate: table index not yet mature")

	// ErrDuplicateInput indicates a transaction spends the same output twice.
	ErrDuplicateInput = errors.New("chainstate: duplicate input")

	// ErrDuplicateTx indicates the transaction is already committed.
	ErrDuplicateTx = errors.New("chainstate: duplicate transaction")

	// ErrTxNotFound indicates the transaction was not found in the store.
	ErrTxNotFound = errors.New("chainstate: transaction not found")

	// ErrZeroAmount indicates an output with amount zero.
	ErrZeroAmount = errors.New("chainstate: output amount is zero")

	// ErrUnknownUnit indicates an output denominated in an unknown unit.
	ErrUnknownUnit = errors.New("chainstate: unknown unit")

	// ErrInsufficientFunds indicates outputs of a unit exceed the inputs of that unit.
	ErrInsufficientFunds = errors.New("chainstate: insufficient funds")

	// ErrValueOverflow indicates a per-unit sum overflowed uint64.
	ErrValueOverflow = errors.New("chainstate: value overflow")

	// ErrCorruptEntry indicates a stored entry that no longer decodes.
	ErrCorruptEntry = errors.New("chainstate: corrupt stored entry")
)
