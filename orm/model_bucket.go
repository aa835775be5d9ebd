package orm

import (
	"reflect"

	swap "github.com/AlphaPrime8/fixed-rate-swap"
	"github.com/AlphaPrime8/fixed-rate-swap/errors"
)

// ModelBucket is implemented by buckets that operate on Models rather than
// Objects.
type ModelBucket interface {
	// One queries the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db swap.ReadOnlyKVStore, key []byte, dest Model) error

	// Put saves given model in the database under provided key.
	Put(db swap.KVStore, key []byte, m Model) error

	// Has returns true if an entity with given primary key exists.
	Has(db swap.ReadOnlyKVStore, key []byte) (bool, error)

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db swap.KVStore, key []byte) error
}

// NewModelBucket returns a ModelBucket instance. Given model is used as
// the type for the data kept in this bucket.
func NewModelBucket(name string, m Model) ModelBucket {
	b := NewBucket(name, NewSimpleObj(nil, m))
	return &modelBucket{
		b:     b,
		model: reflect.TypeOf(m),
	}
}

type modelBucket struct {
	b     Bucket
	model reflect.Type
}

var _ ModelBucket = (*modelBucket)(nil)

func (mb *modelBucket) One(db swap.ReadOnlyKVStore, key []byte, dest Model) error {
	obj, err := mb.b.Get(db, key)
	if err != nil {
		return err
	}
	if obj == nil || obj.Value() == nil {
		return errors.Wrapf(errors.ErrNotFound, "%T not in the store", dest)
	}
	res := obj.Value()

	if !reflect.TypeOf(res).AssignableTo(reflect.TypeOf(dest)) {
		return errors.Wrapf(errors.ErrType, "%T cannot be represented as %T", res, dest)
	}

	reflect.ValueOf(dest).Elem().Set(reflect.ValueOf(res).Elem())
	return nil
}

func (mb *modelBucket) Put(db swap.KVStore, key []byte, m Model) error {
	mTp := reflect.TypeOf(m)
	if !mTp.AssignableTo(mb.model) {
		return errors.Wrapf(errors.ErrType, "cannot store %T type in this bucket", m)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	obj := NewSimpleObj(key, m)
	if err := mb.b.Save(db, obj); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Has(db swap.ReadOnlyKVStore, key []byte) (bool, error) {
	return mb.b.Has(db, key)
}

func (mb *modelBucket) Delete(db swap.KVStore, key []byte) error {
	has, err := mb.b.Has(db, key)
	if err != nil {
		return err
	}
	if !has {
		return errors.ErrNotFound
	}
	return mb.b.Delete(db, key)
}
