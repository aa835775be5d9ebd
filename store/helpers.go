package store

/////////////////////////////////////////////////////
// Empty KVStore

// EmptyKVStore never holds any data, used as a base layer to test caching
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

// Get always returns nil
func (e EmptyKVStore) Get(key []byte) ([]byte, error) { return nil, nil }

// Has always returns false
func (e EmptyKVStore) Has(key []byte) (bool, error) { return false, nil }

// Set is a noop
func (e EmptyKVStore) Set(key, value []byte) error { return nil }

// Delete is a noop
func (e EmptyKVStore) Delete(key []byte) error { return nil }

// Iterator is always empty
func (e EmptyKVStore) Iterator(start, end []byte) (Iterator, error) {
	return (*emptyIterator)(nil), nil
}

// ReverseIterator is always empty
func (e EmptyKVStore) ReverseIterator(start, end []byte) (Iterator, error) {
	return (*emptyIterator)(nil), nil
}

// NewBatch returns a batch that can write to this store (no-op)
func (e EmptyKVStore) NewBatch() Batch { return NewNonAtomicBatch(e) }

type emptyIterator struct{}

var _ Iterator = (*emptyIterator)(nil)

func (e *emptyIterator) Valid() bool { return false }

func (e *emptyIterator) Next() error {
	panic("Advanced past the end!")
}

func (e *emptyIterator) Key() []byte {
	panic("Advanced past the end!")
}

func (e *emptyIterator) Value() []byte {
	panic("Advanced past the end!")
}

func (e *emptyIterator) Close() {}

///////////////////////////////////////////////
// Batch

// op is one pending operation inside a NonAtomicBatch
type op struct {
	key   []byte
	value []byte // nil means delete
}

func (o op) apply(out SetDeleter) error {
	if o.value == nil {
		return out.Delete(o.key)
	}
	return out.Set(o.key, o.value)
}

// NonAtomicBatch just piles up ops and executes them later
// on the underlying store. Can be used when there is no better
// option (for in-memory stores).
type NonAtomicBatch struct {
	out SetDeleter
	ops []op
}

var _ Batch = (*NonAtomicBatch)(nil)

// NewNonAtomicBatch creates an empty batch to be later written
// to the KVStore
func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{
		out: out,
	}
}

// Set adds a set operation to the batch
func (b *NonAtomicBatch) Set(key, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	b.ops = append(b.ops, op{key: key, value: value})
	return nil
}

// Delete adds a delete operation to the batch
func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, op{key: key})
	return nil
}

// Write performs all the ops on the underlying store
func (b *NonAtomicBatch) Write() error {
	for _, o := range b.ops {
		if err := o.apply(b.out); err != nil {
			return err
		}
	}
	b.ops = nil
	return nil
}
