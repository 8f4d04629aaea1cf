package storage

// Store is key-addressed durable storage for configuration values.
// Implemented by the BoltDB-backed store; tests substitute in-memory
// or fault-injecting implementations.
type Store interface {
	// Load returns the value persisted under key, with found=false when no
	// value has ever been stored.
	Load(key string) (value []byte, found bool, err error)

	// Store persists value under key, overwriting any previous value.
	Store(key string, value []byte) error

	// StoreIfAbsent persists value under key only when no value exists, and
	// returns whichever value is now persisted. The check and the write
	// happen in one transaction.
	StoreIfAbsent(key string, value []byte) ([]byte, error)

	// Utility
	Close() error
}
