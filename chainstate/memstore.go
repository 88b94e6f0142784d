package chainstate

import (
	"fmt"
	"sync"

	"github.com/bitfsorg/libtrx-go/trx"
)

// MemStore is an in-memory Store, used by tests and short-lived tools.
type MemStore struct {
	mu       sync.RWMutex
	maturity uint32
	entries  []*Entry
	byRef    map[trx.OutputReference]uint64
	txs      map[trx.Digest][]byte
}

// Compile-time interface check.
var _ Store = (*MemStore)(nil)

// NewMemStore creates an empty store whose table indices mature after
// maturityBlocks blocks.
func NewMemStore(maturityBlocks uint32) *MemStore {
	return &MemStore{
		maturity: maturityBlocks,
		byRef:    make(map[trx.OutputReference]uint64),
		txs:      make(map[trx.Digest][]byte),
	}
}

func (s *MemStore) find(src trx.OutputSource) (*Entry, error) {
	if idx, ok := src.TableIndex(); ok {
		if idx >= uint64(len(s.entries)) {
			return nil, fmt.Errorf("%w: table index %d", ErrOutputNotFound, idx)
		}
		return s.entries[idx], nil
	}
	if ref, ok := src.Reference(); ok {
		idx, found := s.byRef[ref]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrOutputNotFound, ref)
		}
		return s.entries[idx], nil
	}
	return nil, fmt.Errorf("%w: source unset", trx.ErrInvalidAddressing)
}

// FindOutput returns a copy of the entry src names.
func (s *MemStore) FindOutput(src trx.OutputSource) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.find(src)
	if err != nil {
		return nil, err
	}
	cp := *e
	return &cp, nil
}

// IsSpent reports whether the output named by ref has been consumed.
func (s *MemStore) IsSpent(ref trx.OutputReference) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byRef[ref]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrOutputNotFound, ref)
	}
	return s.entries[idx].Spent, nil
}

// TableIndexIsMature reports whether slot idx is past the maturity window.
func (s *MemStore) TableIndexIsMature(idx uint64, height uint32) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if idx >= uint64(len(s.entries)) {
		return false, fmt.Errorf("%w: table index %d", ErrOutputNotFound, idx)
	}
	return isMature(s.entries[idx].Height, s.maturity, height), nil
}

// Commit spends the inputs of stx and appends its outputs.
func (s *MemStore) Commit(stx *trx.SignedTransaction, height uint32) error {
	plan, err := planCommit(stx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.txs[plan.txid]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTx, plan.txid)
	}

	spend := make([]*Entry, 0, len(plan.sources))
	seen := make(map[uint64]struct{}, len(plan.sources))
	for i, src := range plan.sources {
		e, err := s.find(src)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		if err := checkSpendable(e, seen); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		spend = append(spend, e)
	}

	for _, e := range spend {
		e.Spent = true
	}
	for i, out := range plan.outputs {
		ref := trx.OutputReference{TxHash: plan.txid, OutputIndex: uint32(i)}
		idx := uint64(len(s.entries))
		s.entries = append(s.entries, &Entry{
			TableIndex: idx,
			Ref:        ref,
			Height:     height,
			Output:     out,
		})
		s.byRef[ref] = idx
	}
	s.txs[plan.txid] = plan.raw
	return nil
}

// GetTx returns a committed transaction by canonical hash.
func (s *MemStore) GetTx(hash trx.Digest) (*trx.SignedTransaction, error) {
	s.mu.RLock()
	raw, ok := s.txs[hash]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTxNotFound, hash)
	}
	return trx.ParseSignedTransaction(raw)
}

// TableSize returns the number of allocated table slots.
func (s *MemStore) TableSize() (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return uint64(len(s.entries)), nil
}

// ListUnspent returns every unspent entry in table order.
func (s *MemStore) ListUnspent() ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []Entry
	for _, e := range s.entries {
		if !e.Spent {
			result = append(result, *e)
		}
	}
	return result, nil
}
