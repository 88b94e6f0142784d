package trx

import "errors"

var (
	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("trx: required parameter is nil")

	// ErrInvalidAddressing indicates an input names both or neither of a
	// table index and an output reference.
	ErrInvalidAddressing = errors.New("trx: input must set exactly one of table index or output reference")

	// ErrUnknownClaimKind indicates a claim kind tag with no registered codec.
	ErrUnknownClaimKind = errors.New("trx: unknown claim kind")

	// ErrDuplicateClaimKind indicates a codec is already registered for the tag.
	ErrDuplicateClaimKind = errors.New("trx: claim kind already registered")

	// ErrMalformedEncoding indicates truncated, over-length or non-canonical wire data.
	ErrMalformedEncoding = errors.New("trx: malformed encoding")

	// ErrInvalidSignature indicates a compact signature could not be recovered.
	ErrInvalidSignature = errors.New("trx: invalid signature")

	// ErrClaimMismatch indicates an unlock proof does not satisfy the lock predicate.
	ErrClaimMismatch = errors.New("trx: claim mismatch")

	// ErrSignatureCountMismatch indicates the number of signatures differs from the number of inputs.
	ErrSignatureCountMismatch = errors.New("trx: signature count does not match input count")

	// ErrTransactionExpired indicates the chain height is past the envelope's expire block.
	ErrTransactionExpired = errors.New("trx: transaction expired")

	// ErrIndexOutOfRange indicates an input or output position past the end of the envelope.
	ErrIndexOutOfRange = errors.New("trx: index out of range")

	// ErrNoOutputs indicates a transaction was built without any outputs.
	ErrNoOutputs = errors.New("trx: transaction has no outputs")

	// ErrSigningFailed indicates transaction signing failed.
	ErrSigningFailed = errors.New("trx: signing failed")
)
