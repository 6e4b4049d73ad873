package memo

import (
	"context"
	"time"

	"github.com/unkn0wn-root/digitize"
	c "github.com/unkn0wn-root/digitize/codec"
	pr "github.com/unkn0wn-root/digitize/provider"
)

type SetCostFunc func(key string, raw []byte, isBulk bool, bulkCount int) int64

// Memo caches decompositions of T in a byte store.
// Cached entries are verified against the value they are stored under before they
// are returned, so a corrupt or foreign entry is never served.
// Store failures are reported through Hooks.ProviderError and never fail a lookup;
// only Forget returns them.
type Memo[T digitize.Integer] interface {
	Enabled() bool
	Close(context.Context) error

	// Digits returns digitize.ToDigits(n), from the store when possible.
	Digits(ctx context.Context, n T) (digitize.Digits, error)
	// DigitsMany returns the digits of every distinct value in ns.
	DigitsMany(ctx context.Context, ns []T) (map[T]digitize.Digits, error)
	// Number recomposes d with digitize.FromDigitsChecked and seeds the entry for
	// the result when d is its canonical decomposition.
	Number(ctx context.Context, d digitize.Digits) (T, error)
	// Forget drops the single entry for n.
	Forget(ctx context.Context, n T) error
}

// Options tune a Memo. Only Namespace and Provider are required.
type Options[T digitize.Integer] struct {
	// Required
	Namespace string // e.g. "invoice-digits"
	Provider  pr.Provider

	Codec          c.Codec[digitize.Digits] // nil => codec.Packed
	Logger         digitize.Logger          // nil => NopLogger
	Hooks          digitize.Hooks           // nil => NopHooks
	TTL            time.Duration            // singles; 0 => 10m
	BulkTTL        time.Duration            // bulks; 0 => 10m
	Disabled       bool                     // compute without touching the store
	DisableBulk    bool                     // DigitsMany writes singles only
	ComputeSetCost SetCostFunc              // default 1
}

func New[T digitize.Integer](opts Options[T]) (Memo[T], error) {
	return newMemo[T](opts)
}
