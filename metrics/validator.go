package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/bitfsorg/libtrx-go/chainstate"
	"github.com/bitfsorg/libtrx-go/trx"
)

var (
	validateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "validate_total",
		Help:      "Count of transaction validations.",
	}, []string{"network", "status"})

	validateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "validate_duration_seconds",
		Help:      "Duration of validating a transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	rejectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "reject_total",
		Help:      "Count of rejected transactions by reason.",
	}, []string{"network", "reason"})

	commitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "commit_total",
		Help:      "Count of chain-state commits.",
	}, []string{"network", "status"})

	commitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "commit_duration_seconds",
		Help:      "Duration of committing a transaction.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	commitOutputs = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "libtrx",
		Subsystem: "validator",
		Name:      "commit_outputs",
		Help:      "Number of outputs appended per committed transaction.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"network"})
)

// reasons maps sentinel errors to reject_total reason labels, checked in order.
var reasons = []struct {
	err    error
	reason string
}{
	{trx.ErrTransactionExpired, "expired"},
	{trx.ErrSignatureCountMismatch, "signature_count"},
	{trx.ErrMalformedEncoding, "malformed"},
	{trx.ErrUnknownClaimKind, "unknown_claim_kind"},
	{trx.ErrInvalidSignature, "invalid_signature"},
	{trx.ErrClaimMismatch, "claim_mismatch"},
	{chainstate.ErrZeroAmount, "zero_amount"},
	{chainstate.ErrUnknownUnit, "unknown_unit"},
	{chainstate.ErrDuplicateInput, "duplicate_input"},
	{chainstate.ErrImmatureTableIndex, "immature"},
	{chainstate.ErrOutputNotFound, "not_found"},
	{chainstate.ErrOutputAlreadySpent, "spent"},
	{chainstate.ErrInsufficientFunds, "insufficient_funds"},
	{chainstate.ErrValueOverflow, "overflow"},
	{chainstate.ErrNilParam, "nil"},
}

// RejectReason returns the reject_total label for a validation error.
func RejectReason(err error) string {
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return "other"
}

// Validator tracks metrics for chainstate.Validator.
type Validator struct {
	network string
}

var _ chainstate.ValidatorMetrics = Validator{}

// NewValidator constructs a Validator with defaults.
func NewValidator(network string) *Validator {
	if network == "" {
		network = "unknown"
	}
	return &Validator{network: network}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// ObserveValidate records a validation outcome and duration.
func (m Validator) ObserveValidate(err error, started time.Time) {
	st := status(err)
	validateTotal.WithLabelValues(m.network, st).Inc()
	validateDuration.WithLabelValues(m.network, st).Observe(time.Since(started).Seconds())
	if err != nil {
		rejectTotal.WithLabelValues(m.network, RejectReason(err)).Inc()
	}
}

// ObserveCommit records a commit outcome, duration and output count.
func (m Validator) ObserveCommit(err error, outputs int, started time.Time) {
	st := status(err)
	commitTotal.WithLabelValues(m.network, st).Inc()
	commitDuration.WithLabelValues(m.network, st).Observe(time.Since(started).Seconds())
	if err == nil {
		commitOutputs.WithLabelValues(m.network).Observe(float64(outputs))
	}
}
