package service

// Key family prefixes. The prefix is stored in clear alongside the device so
// listings can show what kind of key a device holds without the key itself.
const (
	// KeyPrefixWeb marks the auto-provisioned browser client key.
	KeyPrefixWeb = "web"
	// KeyPrefixLive marks a user-created device key.
	KeyPrefixLive = "live"
)

// KeyGenerator defines the interface for minting raw device API keys.
// The raw key is returned to the caller exactly once; only its hash is persisted.
type KeyGenerator interface {
	// NewKey mints a fresh key for the given family prefix,
	// e.g. "phm_live_<random>" for KeyPrefixLive.
	NewKey(prefix string) (string, error)
}
