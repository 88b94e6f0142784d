package chainstate

import (
	"path/filepath"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitfsorg/libtrx-go/address"
	"github.com/bitfsorg/libtrx-go/trx"
	"github.com/bitfsorg/libtrx-go/units"
)

const testMaturity = 10

// generateTestKeyPair creates a random key pair and the address it controls.
func generateTestKeyPair(t *testing.T) (*ec.PrivateKey, address.Address) {
	t.Helper()
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	addr, err := address.FromPublicKey(priv.PubKey())
	require.NoError(t, err)
	return priv, addr
}

func payTo(amount uint64, addr address.Address) trx.TransactionOutput {
	return trx.NewOutputByAddress(amount, units.Share, addr)
}

// newMintTx builds an input-less transaction creating outs. expire keeps
// otherwise identical mints distinct.
func newMintTx(t *testing.T, expire uint32, outs ...trx.TransactionOutput) *trx.SignedTransaction {
	t.Helper()
	b := trx.NewEnvelopeBuilder(expire)
	for _, out := range outs {
		_, err := b.AddOutput(out)
		require.NoError(t, err)
	}
	env, err := b.Build()
	require.NoError(t, err)
	stx, err := trx.Sign(env, nil)
	require.NoError(t, err)
	return stx
}

// mint commits an input-less transaction straight to s.
func mint(t *testing.T, s Store, height uint32, outs ...trx.TransactionOutput) *trx.SignedTransaction {
	t.Helper()
	stx := newMintTx(t, height+1_000_000, outs...)
	require.NoError(t, s.Commit(stx, height))
	return stx
}

type spend struct {
	src trx.OutputSource
	key *ec.PrivateKey
}

func byRef(ref trx.OutputReference, key *ec.PrivateKey) spend {
	return spend{src: trx.SourceByReference(ref), key: key}
}

func byIndex(idx uint64, key *ec.PrivateKey) spend {
	return spend{src: trx.SourceByTableIndex(idx), key: key}
}

// newSpendTx builds and signs a transaction spending ins into outs.
func newSpendTx(t *testing.T, expire uint32, ins []spend, outs ...trx.TransactionOutput) *trx.SignedTransaction {
	t.Helper()
	b := trx.NewEnvelopeBuilder(expire)
	keys := make([]*ec.PrivateKey, 0, len(ins))
	for _, in := range ins {
		require.NoError(t, b.AddInput(trx.TransactionInput{Source: in.src, Kind: trx.ClaimByAddress}))
		keys = append(keys, in.key)
	}
	for _, out := range outs {
		_, err := b.AddOutput(out)
		require.NoError(t, err)
	}
	env, err := b.Build()
	require.NoError(t, err)
	stx, err := trx.Sign(env, keys)
	require.NoError(t, err)
	return stx
}

func newTestBoltStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBoltStore(filepath.Join(t.TempDir(), "chainstate.db"), testMaturity, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// forEachStore runs fn against every Store implementation.
func forEachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	t.Run("mem", func(t *testing.T) { fn(t, NewMemStore(testMaturity)) })
	t.Run("bolt", func(t *testing.T) { fn(t, newTestBoltStore(t)) })
}
