package chainstate

import (
	"fmt"
	"math/bits"
	"time"

	"go.uber.org/zap"

	"github.com/bitfsorg/libtrx-go/trx"
	"github.com/bitfsorg/libtrx-go/units"
)

// Validator checks signed transactions against a Store and applies the
// ones that pass.
type Validator struct {
	store   Store
	metrics ValidatorMetrics
	logger  *zap.Logger
}

// NewValidator builds a Validator over store.
func NewValidator(store Store, metrics ValidatorMetrics, logger *zap.Logger) (*Validator, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store", ErrNilParam)
	}
	if metrics == nil {
		return nil, fmt.Errorf("%w: validator metrics", ErrNilParam)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Validator{
		store:   store,
		metrics: metrics,
		logger:  logger.Named("validator"),
	}, nil
}

// Validate reports whether stx may be included at height. It checks, in
// order: expiry, signature count, outputs, each input (duplicates,
// maturity, resolution, claim kind, unlock proof) and finally that no unit
// is created from nothing.
func (v *Validator) Validate(stx *trx.SignedTransaction, height uint32) error {
	started := time.Now()
	err := v.validate(stx, height)
	v.metrics.ObserveValidate(err, started)
	if err != nil {
		v.logRejected(stx, height, err)
	}
	return err
}

// Apply validates stx and commits it to the store.
func (v *Validator) Apply(stx *trx.SignedTransaction, height uint32) error {
	if err := v.Validate(stx, height); err != nil {
		return err
	}

	started := time.Now()
	err := v.store.Commit(stx, height)
	v.metrics.ObserveCommit(err, stx.Envelope.OutputCount(), started)
	if err != nil {
		v.logger.Warn("commit failed",
			zap.String("txid", stx.TxID().String()),
			zap.Uint32("height", height),
			zap.Error(err))
		return fmt.Errorf("commit: %w", err)
	}

	v.logger.Debug("transaction applied",
		zap.String("txid", stx.TxID().String()),
		zap.Uint32("height", height),
		zap.Int("inputs", stx.InputCount()),
		zap.Int("outputs", stx.Envelope.OutputCount()))
	return nil
}

func (v *Validator) logRejected(stx *trx.SignedTransaction, height uint32, err error) {
	fields := []zap.Field{zap.Uint32("height", height), zap.Error(err)}
	if stx != nil {
		fields = append(fields, zap.String("txid", stx.TxID().String()))
	}
	v.logger.Warn("transaction rejected", fields...)
}

func (v *Validator) validate(stx *trx.SignedTransaction, height uint32) error {
	if stx == nil {
		return fmt.Errorf("%w: signed transaction", ErrNilParam)
	}
	if err := stx.Envelope.CheckExpiry(height); err != nil {
		return err
	}
	if err := stx.CheckSignatureCount(); err != nil {
		return err
	}

	outputs, err := stx.Envelope.DecodeOutputs()
	if err != nil {
		return err
	}
	produced := make(map[units.Unit]uint64)
	for i, out := range outputs {
		if out.Amount == 0 {
			return fmt.Errorf("%w: output %d", ErrZeroAmount, i)
		}
		if !out.Unit.Known() {
			return fmt.Errorf("%w: output %d: %s", ErrUnknownUnit, i, out.Unit)
		}
		if err := addValue(produced, out.Unit, out.Amount); err != nil {
			return fmt.Errorf("outputs: %w", err)
		}
	}

	inputs, err := stx.Inputs()
	if err != nil {
		return err
	}
	txid := stx.TxID()
	consumed := make(map[units.Unit]uint64)
	sources := make(map[trx.OutputSource]struct{}, len(inputs))
	resolved := make(map[uint64]struct{}, len(inputs))
	for i, in := range inputs {
		if _, dup := sources[in.Source]; dup {
			return fmt.Errorf("%w: input %d repeats %s", ErrDuplicateInput, i, in.Source)
		}
		sources[in.Source] = struct{}{}

		if idx, ok := in.Source.TableIndex(); ok {
			mature, err := v.store.TableIndexIsMature(idx, height)
			if err != nil {
				return fmt.Errorf("input %d: %w", i, err)
			}
			if !mature {
				return fmt.Errorf("%w: input %d names #%d at height %d", ErrImmatureTableIndex, i, idx, height)
			}
		}

		e, err := Resolve(v.store, in)
		if err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		if _, dup := resolved[e.TableIndex]; dup {
			return fmt.Errorf("%w: input %d spends %s again", ErrDuplicateInput, i, e.Ref)
		}
		resolved[e.TableIndex] = struct{}{}

		if e.Output.Kind() != in.Kind {
			return fmt.Errorf("%w: input %d is %s, output %s is %s",
				trx.ErrClaimMismatch, i, in.Kind, e.Ref, e.Output.Kind())
		}
		if err := in.VerifyUnlock(txid, e.Output.Lock); err != nil {
			return fmt.Errorf("input %d: %w", i, err)
		}
		if err := addValue(consumed, e.Output.Unit, e.Output.Amount); err != nil {
			return fmt.Errorf("inputs: %w", err)
		}
	}

	for unit, out := range produced {
		if consumed[unit] < out {
			return fmt.Errorf("%w: %s in %d, out %d", ErrInsufficientFunds, unit, consumed[unit], out)
		}
	}
	return nil
}

func addValue(sums map[units.Unit]uint64, unit units.Unit, amount uint64) error {
	sum, carry := bits.Add64(sums[unit], amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: %s", ErrValueOverflow, unit)
	}
	sums[unit] = sum
	return nil
}
