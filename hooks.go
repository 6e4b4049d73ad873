package digitize

// Hooks receives high-signal events from the memo layer.
// Implementations must be cheap and non-blocking; they run on the lookup path.
type Hooks interface {
	// A cached single entry was deleted on read.
	// reason ∈ {"corrupt", "width_mismatch", "value_decode", "not_canonical"}
	SelfHeal(storageKey, reason string)

	// A bulk entry was rejected and the lookup fell back to singles.
	// reason ∈ {"corrupt", "width_mismatch", "invalid_member"}
	BulkRejected(namespace string, requested int, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string, isBulk bool)

	// Provider returned an error. op ∈ {"get", "set", "del"}
	ProviderError(op, storageKey string, err error)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) SelfHeal(string, string)             {}
func (NopHooks) BulkRejected(string, int, string)    {}
func (NopHooks) ProviderSetRejected(string, bool)    {}
func (NopHooks) ProviderError(string, string, error) {}
