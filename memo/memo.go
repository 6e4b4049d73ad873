package memo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/unkn0wn-root/digitize"
	c "github.com/unkn0wn-root/digitize/codec"
	"github.com/unkn0wn-root/digitize/internal/util"
	"github.com/unkn0wn-root/digitize/internal/wire"
	pr "github.com/unkn0wn-root/digitize/provider"
)

const defaultTTL = 10 * time.Minute

type memo[T digitize.Integer] struct {
	ns             string
	tag            string // "i64", "u8", ...
	width          byte
	provider       pr.Provider
	codec          c.Codec[digitize.Digits]
	log            digitize.Logger
	hooks          digitize.Hooks
	enabled        bool
	bulk           bool
	ttl            time.Duration
	bulkTTL        time.Duration
	computeSetCost SetCostFunc
}

func newMemo[T digitize.Integer](opts Options[T]) (*memo[T], error) {
	if opts.Provider == nil {
		return nil, fmt.Errorf("memo: provider is required")
	}
	if opts.Namespace == "" {
		return nil, fmt.Errorf("memo: namespace is required")
	}

	bits, signed := digitize.BitSize[T](), digitize.Signed[T]()
	tag := "u"
	if signed {
		tag = "i"
	}

	m := &memo[T]{
		ns:       opts.Namespace,
		tag:      tag + strconv.Itoa(bits),
		width:    wire.Width(bits, signed),
		provider: opts.Provider,
		enabled:  !opts.Disabled,
		bulk:     !opts.DisableBulk,
	}

	// defaults
	m.codec = opts.Codec
	if m.codec == nil {
		m.codec = c.Packed{}
	}
	m.log = coalesce[digitize.Logger](opts.Logger, digitize.NopLogger{})
	m.hooks = coalesce[digitize.Hooks](opts.Hooks, digitize.NopHooks{})
	m.ttl = coalesce[time.Duration](opts.TTL, defaultTTL)
	m.bulkTTL = coalesce[time.Duration](opts.BulkTTL, defaultTTL)

	if opts.ComputeSetCost != nil {
		m.computeSetCost = opts.ComputeSetCost
	} else {
		m.computeSetCost = func(_ string, _ []byte, _ bool, _ int) int64 { return 1 }
	}

	return m, nil
}

func (m *memo[T]) Enabled() bool { return m.enabled }

func (m *memo[T]) Close(ctx context.Context) error {
	return m.provider.Close(ctx)
}

func (m *memo[T]) Digits(ctx context.Context, n T) (digitize.Digits, error) {
	if !m.enabled {
		return digitize.ToDigits(n), nil
	}
	k := m.singleKey(n)
	raw, ok, err := m.provider.Get(ctx, k)
	if err != nil {
		m.providerError("get", k, err)
		return digitize.ToDigits(n), nil
	}
	if ok {
		if d, ok := m.decodeSingle(ctx, k, n, raw); ok {
			return d, nil
		}
	}
	d := digitize.ToDigits(n)
	m.store(ctx, k, d)
	return d, nil
}

func (m *memo[T]) DigitsMany(ctx context.Context, ns []T) (map[T]digitize.Digits, error) {
	out := make(map[T]digitize.Digits, len(ns))
	if len(ns) == 0 {
		return out, nil
	}
	if !m.enabled {
		for _, n := range ns {
			out[n] = digitize.ToDigits(n)
		}
		return out, nil
	}

	byKey := make(map[string]T, len(ns))
	keys := make([]string, 0, len(ns))
	for _, n := range ns {
		k := format(n)
		byKey[k] = n
		keys = append(keys, k)
	}
	sorted := util.UniqSorted(keys)

	var bk string
	if m.bulk {
		bk = m.bulkKey(sorted)
		raw, ok, err := m.provider.Get(ctx, bk)
		switch {
		case err != nil:
			m.providerError("get", bk, err)
		case ok:
			got, reason := m.decodeBulk(raw, byKey)
			if reason == "" {
				return got, nil
			}
			_ = m.provider.Del(ctx, bk)
			m.hooks.BulkRejected(m.ns, len(sorted), reason)
			m.log.Debug("bulk entry rejected; falling back to singles", digitize.Fields{"bulkKey": bk, "reason": reason})
		}
	}

	// Fallback: singles.
	for _, k := range sorted {
		n := byKey[k]
		out[n], _ = m.Digits(ctx, n)
	}

	if m.bulk {
		m.storeBulk(ctx, bk, sorted, byKey, out)
	}
	return out, nil
}

func (m *memo[T]) Number(ctx context.Context, d digitize.Digits) (T, error) {
	n, err := digitize.FromDigitsChecked[T](d)
	if err != nil {
		return 0, err
	}
	if !m.enabled || !canonical(n, d) {
		return n, nil
	}
	m.store(ctx, m.singleKey(n), d)
	return n, nil
}

func (m *memo[T]) Forget(ctx context.Context, n T) error {
	if !m.enabled {
		return nil
	}
	k := m.singleKey(n)
	if err := m.provider.Del(ctx, k); err != nil {
		m.providerError("del", k, err)
		return err
	}
	m.log.Debug("forgot entry", digitize.Fields{"key": k})
	return nil
}

// store is best effort: failures are reported through hooks and the logger only.
func (m *memo[T]) store(ctx context.Context, k string, d digitize.Digits) {
	payload, err := m.codec.Encode(d)
	if err != nil {
		m.log.Warn("value encode failed; skipping write", digitize.Fields{"key": k, "err": err})
		return
	}
	wireb := wire.EncodeSingle(m.width, payload)
	ok, err := m.provider.Set(ctx, k, wireb, m.computeSetCost(k, wireb, false, 1), m.ttl)
	if err != nil {
		m.providerError("set", k, err)
		return
	}
	if !ok {
		m.hooks.ProviderSetRejected(k, false)
		m.log.Debug("single Set rejected by provider (pressure)", digitize.Fields{"key": k})
	}
}

func (m *memo[T]) storeBulk(ctx context.Context, bk string, sorted []string, byKey map[string]T, got map[T]digitize.Digits) {
	items := make([]wire.BulkItem, 0, len(sorted))
	for _, k := range sorted {
		payload, err := m.codec.Encode(got[byKey[k]])
		if err != nil {
			m.log.Warn("value encode failed; skipping bulk write", digitize.Fields{"bulkKey": bk, "err": err})
			return
		}
		items = append(items, wire.BulkItem{Key: k, Payload: payload})
	}
	wireb, err := wire.EncodeBulk(m.width, items)
	if err != nil {
		m.log.Warn("bulk encode failed; skipping bulk write", digitize.Fields{"bulkKey": bk, "err": err})
		return
	}
	ok, err := m.provider.Set(ctx, bk, wireb, m.computeSetCost(bk, wireb, true, len(items)), m.bulkTTL)
	if err != nil {
		m.providerError("set", bk, err)
		return
	}
	if !ok {
		m.hooks.ProviderSetRejected(bk, true)
		m.log.Debug("bulk Set rejected by provider (pressure)", digitize.Fields{"bulkKey": bk})
	}
}

// decodeSingle validates a stored entry; anything unusable is deleted.
func (m *memo[T]) decodeSingle(ctx context.Context, k string, n T, raw []byte) (digitize.Digits, bool) {
	width, payload, err := wire.DecodeSingle(raw)
	if err != nil {
		m.selfHeal(ctx, k, "corrupt")
		return nil, false
	}
	if width != m.width {
		m.selfHeal(ctx, k, "width_mismatch")
		return nil, false
	}
	d, err := m.codec.Decode(payload)
	if err != nil {
		m.selfHeal(ctx, k, "value_decode")
		return nil, false
	}
	if !canonical(n, d) {
		m.selfHeal(ctx, k, "not_canonical")
		return nil, false
	}
	return d, true
}

// decodeBulk returns a non-empty reason when the entry cannot answer exactly the
// requested set.
func (m *memo[T]) decodeBulk(raw []byte, byKey map[string]T) (map[T]digitize.Digits, string) {
	width, items, err := wire.DecodeBulk(raw)
	if err != nil {
		return nil, "corrupt"
	}
	if width != m.width {
		return nil, "width_mismatch"
	}
	if len(items) != len(byKey) {
		return nil, "invalid_member"
	}
	out := make(map[T]digitize.Digits, len(items))
	for _, it := range items {
		n, ok := byKey[it.Key]
		if !ok {
			return nil, "invalid_member"
		}
		d, err := m.codec.Decode(it.Payload)
		if err != nil || !canonical(n, d) {
			return nil, "invalid_member"
		}
		out[n] = d
	}
	if len(out) != len(byKey) {
		return nil, "invalid_member"
	}
	return out, ""
}

func (m *memo[T]) selfHeal(ctx context.Context, k, reason string) {
	if err := m.provider.Del(ctx, k); err != nil {
		m.providerError("del", k, err)
	}
	m.hooks.SelfHeal(k, reason)
	m.log.Debug("dropped unusable entry", digitize.Fields{"key": k, "reason": reason})
}

func (m *memo[T]) providerError(op, k string, err error) {
	m.hooks.ProviderError(op, k, err)
	m.log.Warn("provider error", digitize.Fields{"op": op, "key": k, "err": err})
}

// singleKey is shared by types of equal width and signedness (int and int64 on
// 64-bit platforms); their digits are identical.
func (m *memo[T]) singleKey(n T) string {
	return "digits:" + m.ns + ":" + m.tag + ":" + format(n)
}

func (m *memo[T]) bulkKey(sorted []string) string {
	return util.BulkKey("bulk:"+m.ns+":"+m.tag, sorted)
}

// canonical reports whether d is exactly ToDigits(n): no leading zero, in-range
// digits of one sign, folding back to n without overflow.
func canonical[T digitize.Integer](n T, d digitize.Digits) bool {
	if n == 0 {
		return len(d) == 0
	}
	if len(d) == 0 || d[0] == 0 {
		return false
	}
	got, err := digitize.FromDigitsChecked[T](d)
	return err == nil && got == n
}

func format[T digitize.Integer](n T) string {
	if digitize.Signed[T]() {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatUint(uint64(n), 10)
}
