package chainstate

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/bitfsorg/libtrx-go/trx"
)

var (
	bucketOutputs = []byte("outputs")
	bucketRefs    = []byte("refs")
	bucketTxs     = []byte("txs")
	bucketMeta    = []byte("meta")

	metaNextIndex = []byte("next_index")
)

// BoltStore persists the unspent-output table in bbolt.
//
// Buckets:
//
//	outputs  table index (8, big-endian) -> gob(storedEntry)
//	refs     tx hash (28) | output index (4, big-endian) -> table index
//	txs      tx hash -> signed transaction wire bytes
//	meta     next_index -> table size
type BoltStore struct {
	db       *bbolt.DB
	maturity uint32
	logger   *zap.Logger
}

// Compile-time interface check.
var _ Store = (*BoltStore)(nil)

// storedEntry is the gob form of an Entry. The output is kept as its wire
// record so new claim kinds need no gob registration.
type storedEntry struct {
	TableIndex  uint64
	TxHash      []byte
	OutputIndex uint32
	Height      uint32
	Spent       bool
	Output      []byte
}

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string, maturityBlocks uint32, logger *zap.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("chainstate: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("chainstate: open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketOutputs, bucketRefs, bucketTxs, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("boltstore: create bucket %q: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("chainstate: create buckets: %w", err)
	}

	s := &BoltStore{
		db:       db,
		maturity: maturityBlocks,
		logger:   logger.With(zap.String("path", dbPath)),
	}
	size, err := s.TableSize()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	s.logger.Info("chain state opened",
		zap.Uint64("table_size", size),
		zap.Uint32("maturity_blocks", maturityBlocks))
	return s, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// indexKey encodes a table index as an 8-byte big-endian key for sorted storage.
func indexKey(idx uint64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, idx)
	return k
}

func refKey(ref trx.OutputReference) []byte {
	k := make([]byte, trx.DigestSize+4)
	copy(k, ref.TxHash[:])
	binary.BigEndian.PutUint32(k[trx.DigestSize:], ref.OutputIndex)
	return k
}

// encodeGob serializes a value using gob encoding.
func encodeGob(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeGob deserializes gob-encoded data into a value.
func decodeGob(data []byte, v interface{}) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

func encodeEntry(e *Entry) ([]byte, error) {
	out, err := e.Output.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return encodeGob(storedEntry{
		TableIndex:  e.TableIndex,
		TxHash:      e.Ref.TxHash[:],
		OutputIndex: e.Ref.OutputIndex,
		Height:      e.Height,
		Spent:       e.Spent,
		Output:      out,
	})
}

func decodeEntry(data []byte) (*Entry, error) {
	var se storedEntry
	if err := decodeGob(data, &se); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptEntry, err)
	}
	if len(se.TxHash) != trx.DigestSize {
		return nil, fmt.Errorf("%w: tx hash is %d bytes", ErrCorruptEntry, len(se.TxHash))
	}
	e := &Entry{
		TableIndex: se.TableIndex,
		Ref:        trx.OutputReference{OutputIndex: se.OutputIndex},
		Height:     se.Height,
		Spent:      se.Spent,
	}
	copy(e.Ref.TxHash[:], se.TxHash)
	if err := e.Output.UnmarshalBinary(se.Output); err != nil {
		return nil, fmt.Errorf("%w: table index %d: %w", ErrCorruptEntry, se.TableIndex, err)
	}
	return e, nil
}

func getEntry(tx *bbolt.Tx, idx uint64) (*Entry, error) {
	data := tx.Bucket(bucketOutputs).Get(indexKey(idx))
	if data == nil {
		return nil, fmt.Errorf("%w: table index %d", ErrOutputNotFound, idx)
	}
	return decodeEntry(data)
}

func findEntry(tx *bbolt.Tx, src trx.OutputSource) (*Entry, error) {
	if idx, ok := src.TableIndex(); ok {
		return getEntry(tx, idx)
	}
	if ref, ok := src.Reference(); ok {
		k := tx.Bucket(bucketRefs).Get(refKey(ref))
		if k == nil {
			return nil, fmt.Errorf("%w: %s", ErrOutputNotFound, ref)
		}
		return getEntry(tx, binary.BigEndian.Uint64(k))
	}
	return nil, fmt.Errorf("%w: source unset", trx.ErrInvalidAddressing)
}

func putEntry(tx *bbolt.Tx, e *Entry) error {
	data, err := encodeEntry(e)
	if err != nil {
		return fmt.Errorf("encode entry: %w", err)
	}
	if err := tx.Bucket(bucketOutputs).Put(indexKey(e.TableIndex), data); err != nil {
		return fmt.Errorf("boltstore: put output: %w", err)
	}
	return nil
}

func nextIndex(tx *bbolt.Tx) uint64 {
	v := tx.Bucket(bucketMeta).Get(metaNextIndex)
	if len(v) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(v)
}

// FindOutput returns the entry src names.
func (s *BoltStore) FindOutput(src trx.OutputSource) (*Entry, error) {
	var e *Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		e, err = findEntry(tx, src)
		return err
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

// IsSpent reports whether the output named by ref has been consumed.
func (s *BoltStore) IsSpent(ref trx.OutputReference) (bool, error) {
	e, err := s.FindOutput(trx.SourceByReference(ref))
	if err != nil {
		return false, err
	}
	return e.Spent, nil
}

// TableIndexIsMature reports whether slot idx is past the maturity window.
func (s *BoltStore) TableIndexIsMature(idx uint64, height uint32) (bool, error) {
	e, err := s.FindOutput(trx.SourceByTableIndex(idx))
	if err != nil {
		return false, err
	}
	return isMature(e.Height, s.maturity, height), nil
}

// Commit spends the inputs of stx and appends its outputs in one bbolt
// transaction.
func (s *BoltStore) Commit(stx *trx.SignedTransaction, height uint32) error {
	plan, err := planCommit(stx)
	if err != nil {
		return err
	}

	var first uint64
	err = s.db.Update(func(tx *bbolt.Tx) error {
		txs := tx.Bucket(bucketTxs)
		if txs.Get(plan.txid[:]) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateTx, plan.txid)
		}

		spend := make([]*Entry, 0, len(plan.sources))
		seen := make(map[uint64]struct{}, len(plan.sources))
		for i, src := range plan.sources {
			e, err := findEntry(tx, src)
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
			if err := putEntry(tx, e); err != nil {
				return err
			}
		}

		first = nextIndex(tx)
		refs := tx.Bucket(bucketRefs)
		for i, out := range plan.outputs {
			e := &Entry{
				TableIndex: first + uint64(i),
				Ref:        trx.OutputReference{TxHash: plan.txid, OutputIndex: uint32(i)},
				Height:     height,
				Output:     out,
			}
			if err := putEntry(tx, e); err != nil {
				return err
			}
			if err := refs.Put(refKey(e.Ref), indexKey(e.TableIndex)); err != nil {
				return fmt.Errorf("boltstore: put ref: %w", err)
			}
		}
		next := first + uint64(len(plan.outputs))
		if err := tx.Bucket(bucketMeta).Put(metaNextIndex, indexKey(next)); err != nil {
			return fmt.Errorf("boltstore: put next index: %w", err)
		}
		if err := txs.Put(plan.txid[:], plan.raw); err != nil {
			return fmt.Errorf("boltstore: put tx: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("transaction committed",
		zap.String("txid", plan.txid.String()),
		zap.Uint32("height", height),
		zap.Int("inputs", len(plan.sources)),
		zap.Uint64("first_index", first),
		zap.Int("outputs", len(plan.outputs)))
	return nil
}

// GetTx returns a committed transaction by canonical hash.
func (s *BoltStore) GetTx(hash trx.Digest) (*trx.SignedTransaction, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketTxs).Get(hash[:])
		if data == nil {
			return fmt.Errorf("%w: %s", ErrTxNotFound, hash)
		}
		raw = append([]byte(nil), data...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return trx.ParseSignedTransaction(raw)
}

// TableSize returns the number of allocated table slots.
func (s *BoltStore) TableSize() (uint64, error) {
	var n uint64
	err := s.db.View(func(tx *bbolt.Tx) error {
		n = nextIndex(tx)
		return nil
	})
	return n, err
}

// ListUnspent returns every unspent entry in table order.
func (s *BoltStore) ListUnspent() ([]Entry, error) {
	var result []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).ForEach(func(_, v []byte) error {
			e, err := decodeEntry(v)
			if err != nil {
				return err
			}
			if !e.Spent {
				result = append(result, *e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("boltstore: list unspent: %w", err)
	}
	return result, nil
}
