package hashmap

var (
	_ Map[string, int] = (*HashMap[string, int])(nil)
	_ Map[string, int] = (*Synchronized[string, int])(nil)
)

// Map is the surface shared by HashMap and Synchronized.
type Map[K any, V any] interface {
	// Insert prepends a new entry to the key's bucket, even if the key is already present.
	Insert(K, V) error

	// InsertIfAbsent inserts only if no entry with an equal key exists.
	InsertIfAbsent(K, V) error

	// Get returns the value of the most recently inserted entry with an equal key.
	Get(K) (V, error)

	// Set overwrites the value of the most recently inserted entry with an equal key.
	Set(K, V) error

	// Remove deletes the most recently inserted entry with an equal key and returns its value.
	Remove(K) (V, error)

	// RemoveAll deletes every entry with an equal key and returns how many were deleted.
	RemoveAll(K) int

	Contains(K) bool

	// Range iterates over the map's entries, bucket by bucket. If the callback function returns false, iteration stops.
	Range(func(K, V) (contd bool))

	Len() int
	Empty() bool
	Clear()
	Free()
}
