package index

// Index is the common interface for the key-existence structures.
// Keys carry no payload and duplicates are kept.
type Index interface {
	Insert(key int64)
	Contains(key int64) bool
	Len() int
}
