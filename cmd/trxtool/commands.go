package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	ec "github.com/bsv-blockchain/go-sdk/primitives/ec"
	"go.uber.org/zap"

	"github.com/bitfsorg/libtrx-go/address"
	"github.com/bitfsorg/libtrx-go/chainstate"
	"github.com/bitfsorg/libtrx-go/config"
	"github.com/bitfsorg/libtrx-go/metrics"
	"github.com/bitfsorg/libtrx-go/trx"
	"github.com/bitfsorg/libtrx-go/units"
)

const defaultExpiryBlocks = 1000

func openStore(cfg config.Config, logger *zap.Logger) (*chainstate.BoltStore, error) {
	store, err := chainstate.OpenBoltStore(cfg.ChainStatePath(), cfg.MaturityBlocks(), logger)
	if err != nil {
		return nil, fmt.Errorf("open chain state: %w", err)
	}
	return store, nil
}

func newValidator(cfg config.Config, store chainstate.Store, logger *zap.Logger) (*chainstate.Validator, error) {
	return chainstate.NewValidator(store, metrics.NewValidator(cfg.Network), logger)
}

func keygen(out io.Writer) error {
	priv, err := ec.NewPrivateKey()
	if err != nil {
		return fmt.Errorf("generate key: %w", err)
	}
	addr, err := address.FromPublicKey(priv.PubKey())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "key     %s\n", hex.EncodeToString(priv.Serialize()))
	fmt.Fprintf(out, "address %s\n", addr)
	return nil
}

// parseKey decodes a hex private key. The scalar must lie in [1, N-1].
func parseKey(s string) (*ec.PrivateKey, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil || len(raw) != 32 {
		return nil, fmt.Errorf("private key must be 32 hex-encoded bytes")
	}
	d := new(big.Int).SetBytes(raw)
	if d.Sign() == 0 || d.Cmp(ec.S256().Params().N) >= 0 {
		return nil, fmt.Errorf("private key is out of range")
	}
	priv, _ := ec.PrivateKeyFromBytes(raw)
	return priv, nil
}

// parseOutput reads address:amount[:unit]. The unit defaults to share.
func parseOutput(s string) (trx.TransactionOutput, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return trx.TransactionOutput{}, fmt.Errorf("output %q: want address:amount[:unit]", s)
	}
	addr, err := address.Parse(parts[0])
	if err != nil {
		return trx.TransactionOutput{}, fmt.Errorf("output %q: %w", s, err)
	}
	amount, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return trx.TransactionOutput{}, fmt.Errorf("output %q: amount: %w", s, err)
	}
	unit := units.Share
	if len(parts) == 3 {
		if unit, err = units.Parse(parts[2]); err != nil {
			return trx.TransactionOutput{}, fmt.Errorf("output %q: %w", s, err)
		}
	}
	return trx.NewOutputByAddress(amount, unit, addr), nil
}

func buildEnvelope(opts options, withInputs bool) (*trx.TransactionEnvelope, error) {
	expire := opts.Expire
	if expire == 0 {
		expire = opts.Height + defaultExpiryBlocks
	}
	b := trx.NewEnvelopeBuilder(expire)
	if withInputs {
		for _, s := range opts.Inputs {
			src, err := trx.ParseOutputSource(s)
			if err != nil {
				return nil, err
			}
			if err := b.AddInput(trx.TransactionInput{Source: src, Kind: trx.ClaimByAddress}); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range opts.Outputs {
		out, err := parseOutput(s)
		if err != nil {
			return nil, err
		}
		if _, err := b.AddOutput(out); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// pay builds and signs a transaction and prints it as hex. A single --key
// signs every input.
func pay(opts options, out io.Writer) error {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("pay: at least one --input is required")
	}
	keyArgs := opts.Keys
	if len(keyArgs) == 1 && len(opts.Inputs) > 1 {
		for len(keyArgs) < len(opts.Inputs) {
			keyArgs = append(keyArgs, opts.Keys[0])
		}
	}
	if len(keyArgs) != len(opts.Inputs) {
		return fmt.Errorf("pay: %d keys for %d inputs", len(keyArgs), len(opts.Inputs))
	}
	keys := make([]*ec.PrivateKey, len(keyArgs))
	for i, s := range keyArgs {
		k, err := parseKey(s)
		if err != nil {
			return fmt.Errorf("pay: key %d: %w", i, err)
		}
		keys[i] = k
	}

	env, err := buildEnvelope(opts, true)
	if err != nil {
		return fmt.Errorf("pay: %w", err)
	}
	stx, err := trx.Sign(env, keys)
	if err != nil {
		return fmt.Errorf("pay: %w", err)
	}
	fmt.Fprintln(out, hex.EncodeToString(stx.Bytes()))
	return nil
}

// mint commits an input-less transaction straight to the store, bypassing
// the validator. It is how a fresh chain state gets its first outputs.
func mint(store chainstate.Store, opts options, logger *zap.Logger, out io.Writer) error {
	if len(opts.Inputs) > 0 || len(opts.Keys) > 0 {
		return fmt.Errorf("mint: transactions spend nothing, drop --input and --key")
	}
	env, err := buildEnvelope(opts, false)
	if err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	stx, err := trx.Sign(env, nil)
	if err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	before, err := store.TableSize()
	if err != nil {
		return err
	}
	if err := store.Commit(stx, opts.Height); err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	logger.Info("minted", zap.Stringer("txid", stx.TxID()), zap.Int("outputs", env.OutputCount()))

	fmt.Fprintf(out, "txid %s\n", stx.TxID())
	for i := 0; i < env.OutputCount(); i++ {
		fmt.Fprintf(out, "  #%d %s\n", before+uint64(i), env.OutputReference(uint32(i)))
	}
	return nil
}

// readTx loads a hex-encoded signed transaction from path, or stdin for "-".
func readTx(path string) (*trx.SignedTransaction, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return trx.ParseSignedTransaction(raw)
}

func inspect(path string, out io.Writer) error {
	stx, err := readTx(path)
	if err != nil {
		return err
	}
	printTx(out, stx)
	return nil
}

func printTx(out io.Writer, stx *trx.SignedTransaction) {
	env := &stx.Envelope
	fmt.Fprintf(out, "txid    %s\n", stx.TxID())
	fmt.Fprintf(out, "version %d\n", env.Version)
	fmt.Fprintf(out, "expire  %d\n", env.ExpireBlock)
	for i := 0; i < env.InputCount(); i++ {
		in, err := env.Input(i)
		if err != nil {
			fmt.Fprintf(out, "  in  %d: %v\n", i, err)
			continue
		}
		fmt.Fprintf(out, "  in  %d: %s kind=%d\n", i, in.Source, in.Kind)
	}
	for i := 0; i < env.OutputCount(); i++ {
		o, err := env.Output(i)
		if err != nil {
			fmt.Fprintf(out, "  out %d: %v\n", i, err)
			continue
		}
		fmt.Fprintf(out, "  out %d: %d %s to %s\n", i, o.Amount, o.Unit, describeLock(o.Lock))
	}
	fmt.Fprintf(out, "sigs    %d\n", stx.SignatureCount())
}

func describeLock(lock trx.OutputClaim) string {
	if l, ok := lock.(trx.ByAddressLock); ok {
		return l.Address.String()
	}
	return fmt.Sprintf("kind %d", lock.ClaimKind())
}

func validate(v *chainstate.Validator, path string, height uint32, out io.Writer) error {
	stx, err := readTx(path)
	if err != nil {
		return err
	}
	if err := v.Validate(stx, height); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s valid at height %d\n", stx.TxID(), height)
	return nil
}

func apply(v *chainstate.Validator, path string, height uint32, out io.Writer) error {
	stx, err := readTx(path)
	if err != nil {
		return err
	}
	if err := v.Apply(stx, height); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s applied at height %d\n", stx.TxID(), height)
	return nil
}

func show(store chainstate.Store, txid string, out io.Writer) error {
	hash, err := trx.DigestFromHex(txid)
	if err != nil {
		return err
	}
	stx, err := store.GetTx(hash)
	if err != nil {
		return err
	}
	printTx(out, stx)
	return nil
}

func unspent(store chainstate.Store, out io.Writer) error {
	entries, err := store.ListUnspent()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "#%d %s height=%d %d %s to %s\n",
			e.TableIndex, e.Ref, e.Height, e.Output.Amount, e.Output.Unit, describeLock(e.Output.Lock))
	}
	return nil
}
