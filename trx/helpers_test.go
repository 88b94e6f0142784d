package trx

import (
	"bytes"
	"testing"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"github.com/stretchr/testify/require"

	"github.com/bitfsorg/libtrx-go/address"
	"github.com/bitfsorg/libtrx-go/units"
)

// generateTestKeyPair creates a random key pair and the address it controls.
func generateTestKeyPair(t *testing.T) (*ec.PrivateKey, address.Address) {
	t.Helper()
	priv, err := ec.NewPrivateKey()
	require.NoError(t, err)
	addr, err := address.FromPublicKey(priv.PubKey())
	require.NoError(t, err)
	return priv, addr
}

func testDigest(seed byte) Digest {
	return HashBytes([]byte{seed})
}

func testRef(seed byte, idx uint32) OutputReference {
	return OutputReference{TxHash: testDigest(seed), OutputIndex: idx}
}

func testAddress(seed byte) address.Address {
	var a address.Address
	copy(a[:], bytes.Repeat([]byte{seed}, address.Size))
	return a
}

// buildTestEnvelope builds an envelope with one reference input and one
// table-index input paying amount to addr.
func buildTestEnvelope(t *testing.T, addr address.Address, amount uint64) *TransactionEnvelope {
	t.Helper()
	b := NewEnvelopeBuilder(1000)

	in1, err := NewInputByReference(testRef(0x01, 0), ClaimByAddress)
	require.NoError(t, err)
	in2, err := NewInputByTableIndex(42, ClaimByAddress)
	require.NoError(t, err)
	require.NoError(t, b.AddInput(in1))
	require.NoError(t, b.AddInput(in2))

	_, err = b.AddOutput(NewOutputByAddress(amount, units.Share, addr))
	require.NoError(t, err)

	env, err := b.Build()
	require.NoError(t, err)
	return env
}
