package chainstate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/bitfsorg/libtrx-go/trx"
)

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state", "chainstate.db")

	s, err := OpenBoltStore(dbPath, testMaturity, nil)
	require.NoError(t, err)

	priv, addr := generateTestKeyPair(t)
	funding := mint(t, s, 1, payTo(100, addr), payTo(50, addr))
	ref := funding.Envelope.OutputReference(0)
	stx := newSpendTx(t, 100, []spend{byRef(ref, priv)}, payTo(100, addr))
	require.NoError(t, s.Commit(stx, 2))
	require.NoError(t, s.Close())

	s, err = OpenBoltStore(dbPath, testMaturity, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	size, err := s.TableSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), size)

	spent, err := s.IsSpent(ref)
	require.NoError(t, err)
	assert.True(t, spent)

	e, err := s.FindOutput(trx.SourceByTableIndex(2))
	require.NoError(t, err)
	assert.Equal(t, stx.Envelope.OutputReference(0), e.Ref)
	assert.Equal(t, uint32(2), e.Height)

	got, err := s.GetTx(stx.TxID())
	require.NoError(t, err)
	assert.Equal(t, stx.TxID(), got.TxID())

	// New outputs continue the table after reopen.
	mint(t, s, 3, payTo(7, addr))
	size, err = s.TableSize()
	require.NoError(t, err)
	assert.Equal(t, uint64(4), size)
}

func TestBoltStore_CreatesParentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	s, err := OpenBoltStore(filepath.Join(dir, "chainstate.db"), testMaturity, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestBoltStore_CorruptEntry(t *testing.T) {
	s := newTestBoltStore(t)
	_, addr := generateTestKeyPair(t)
	mint(t, s, 1, payTo(1, addr))

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketOutputs).Put(indexKey(0), []byte("not gob"))
	})
	require.NoError(t, err)

	_, err = s.FindOutput(trx.SourceByTableIndex(0))
	assert.ErrorIs(t, err, ErrCorruptEntry)

	_, err = s.ListUnspent()
	assert.ErrorIs(t, err, ErrCorruptEntry)
}

func TestBoltStore_EntryRoundTrip(t *testing.T) {
	_, addr := generateTestKeyPair(t)
	e := &Entry{
		TableIndex: 9,
		Ref:        trx.OutputReference{TxHash: trx.HashBytes([]byte("x")), OutputIndex: 3},
		Height:     77,
		Spent:      true,
		Output:     payTo(12, addr),
	}
	data, err := encodeEntry(e)
	require.NoError(t, err)
	got, err := decodeEntry(data)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestRefKey_Layout(t *testing.T) {
	ref := trx.OutputReference{TxHash: trx.HashBytes([]byte("k")), OutputIndex: 0x01020304}
	k := refKey(ref)
	require.Len(t, k, trx.DigestSize+4)
	assert.Equal(t, ref.TxHash[:], k[:trx.DigestSize])
	assert.Equal(t, []byte{1, 2, 3, 4}, k[trx.DigestSize:])
}
