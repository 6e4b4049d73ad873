package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/digitize"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SelfHealEvery      uint64
	BulkRejectEvery    uint64
	ProviderErrorEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

// Hooks logs memo events through slog.
type Hooks struct {
	l    *slog.Logger
	opts Options

	selfHealCtr      atomic.Uint64
	bulkRejectCtr    atomic.Uint64
	providerErrorCtr atomic.Uint64
}

var _ digitize.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("digitize.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) BulkRejected(ns string, requested int, reason string) {
	if h.l == nil || !sample(h.opts.BulkRejectEvery, &h.bulkRejectCtr) {
		return
	}
	h.l.Info("digitize.bulk_rejected",
		"ns", ns,
		"requested", requested,
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(storageKey string, isBulk bool) {
	if h.l == nil {
		return
	}
	h.l.Warn("digitize.provider_set_rejected",
		"key", h.redact(storageKey),
		"is_bulk", isBulk)
}

func (h *Hooks) ProviderError(op, storageKey string, err error) {
	if h.l == nil || !sample(h.opts.ProviderErrorEvery, &h.providerErrorCtr) {
		return
	}
	h.l.Error("digitize.provider_error",
		"op", op,
		"key", h.redact(storageKey),
		"err", err)
}
