package trx

import (
	"fmt"
	"sort"
	"sync"
)

// ClaimKind tags how an output is locked and how the input spending it
// must be unlocked. The tag on an input must equal the tag on the output
// it claims.
type ClaimKind uint8

const (
	// ClaimByAddress locks an output to an address; the spender proves
	// control of the address with a recoverable signature.
	ClaimByAddress ClaimKind = 0
)

// String returns the registered name of the kind, or claim(N).
func (k ClaimKind) String() string {
	if c, err := LookupClaim(k); err == nil {
		return c.Name()
	}
	return fmt.Sprintf("claim(%d)", uint8(k))
}

// OutputClaim is the kind-specific lock predicate carried by an output.
// Both claim interfaces share a method set, so constructors pass values
// through the kind's codec to reject an unlock used as a lock.
type OutputClaim interface {
	ClaimKind() ClaimKind
}

// InputClaim is the kind-specific unlock proof that satisfies an OutputClaim.
type InputClaim interface {
	ClaimKind() ClaimKind
}

// checkLock fails unless lock belongs to a registered kind and its codec
// accepts it as a lock predicate.
func checkLock(lock OutputClaim) error {
	codec, err := LookupClaim(lock.ClaimKind())
	if err != nil {
		return err
	}
	return codec.EncodeLock(NewWriter(), lock)
}

// checkUnlock is checkLock for unlock proofs.
func checkUnlock(unlock InputClaim) error {
	codec, err := LookupClaim(unlock.ClaimKind())
	if err != nil {
		return err
	}
	return codec.EncodeUnlock(NewWriter(), unlock)
}

// SizeClass gives the fixed payload widths of a claim kind. Outputs of one
// kind all share a stride, so a chain-state engine can keep one pool per kind.
type SizeClass struct {
	Lock   int // bytes of lock predicate after the output header
	Unlock int // bytes of detached unlock proof
}

// ClaimCodec encodes, decodes and checks the payloads of one claim kind.
type ClaimCodec interface {
	Kind() ClaimKind
	Name() string
	SizeClass() SizeClass

	EncodeLock(w *Writer, lock OutputClaim) error
	DecodeLock(r *Reader) (OutputClaim, error)

	EncodeUnlock(w *Writer, unlock InputClaim) error
	DecodeUnlock(r *Reader) (InputClaim, error)

	// Verify reports whether unlock satisfies lock for a transaction with digest d.
	Verify(unlock InputClaim, lock OutputClaim, d Digest) error
}

// OutputHeaderSize is the fixed prefix of every output payload:
// amount(8) | unit(1) | kind(1).
const OutputHeaderSize = 8 + 1 + 1

var registry = struct {
	sync.RWMutex
	codecs map[ClaimKind]ClaimCodec
}{codecs: make(map[ClaimKind]ClaimCodec)}

func init() {
	if err := RegisterClaim(byAddressCodec{}); err != nil {
		panic(err)
	}
}

// RegisterClaim adds a codec for a new claim kind. Existing kinds cannot be
// replaced, so their encodings never change.
func RegisterClaim(c ClaimCodec) error {
	if c == nil {
		return fmt.Errorf("%w: claim codec", ErrNilParam)
	}
	registry.Lock()
	defer registry.Unlock()
	if _, exists := registry.codecs[c.Kind()]; exists {
		return fmt.Errorf("%w: %d", ErrDuplicateClaimKind, c.Kind())
	}
	registry.codecs[c.Kind()] = c
	return nil
}

// LookupClaim returns the codec registered for k.
func LookupClaim(k ClaimKind) (ClaimCodec, error) {
	registry.RLock()
	defer registry.RUnlock()
	c, ok := registry.codecs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClaimKind, uint8(k))
	}
	return c, nil
}

// ClaimKinds lists the registered kinds in ascending order.
func ClaimKinds() []ClaimKind {
	registry.RLock()
	defer registry.RUnlock()
	kinds := make([]ClaimKind, 0, len(registry.codecs))
	for k := range registry.codecs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// OutputStride returns the encoded size of every output of kind k.
func OutputStride(k ClaimKind) (int, error) {
	c, err := LookupClaim(k)
	if err != nil {
		return 0, err
	}
	return OutputHeaderSize + c.SizeClass().Lock, nil
}
