// Package units defines the denominations an output amount can be held in.
package units

import "fmt"

// Unit is the denomination of an output amount. The core treats it as
// opaque: it is compared for equality and encoded as a single byte.
type Unit uint8

const (
	// Share is the chain's native unit.
	Share Unit = iota
	// USD is a dollar-pegged bond unit.
	USD
	// BTC is a bitcoin-pegged bond unit.
	BTC
	// Gold is a gold-pegged bond unit, one troy ounce.
	Gold
)

var names = map[Unit]string{
	Share: "share",
	USD:   "usd",
	BTC:   "btc",
	Gold:  "gold",
}

// String returns the unit's symbol, or unit(N) for unnamed values.
func (u Unit) String() string {
	if n, ok := names[u]; ok {
		return n
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// Known reports whether u is one of the named units.
func (u Unit) Known() bool {
	_, ok := names[u]
	return ok
}

// Parse maps a symbol back to its Unit.
func Parse(s string) (Unit, error) {
	for u, n := range names {
		if n == s {
			return u, nil
		}
	}
	return 0, fmt.Errorf("units: unknown unit %q", s)
}
