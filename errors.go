package astibimap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplication            = errors.New("astibimap: duplication")
	ErrKeyDuplication         = errors.New("astibimap: key duplication")
	ErrValueDuplication       = errors.New("astibimap: value duplication")
	ErrKeyAndValueDuplication = errors.New("astibimap: key and value duplication")
	ErrKeyNotFound            = errors.New("astibimap: key not found")
	ErrValueNotFound          = errors.New("astibimap: value not found")
	ErrFrozen                 = errors.New("astibimap: map is frozen")
	ErrEmpty                  = errors.New("astibimap: map is empty")
	ErrNotOrdered             = errors.New("astibimap: map is not ordered")
)

// DuplicationError is returned when an insert collides with existing associations and the
// matching action is OnDupActionRaise. The map is left untouched.
type DuplicationError struct {
	Collision Collision
	Key       any
	Value     any
}

func newDuplicationError[K, V comparable](c Collision, k K, v V) *DuplicationError {
	return &DuplicationError{
		Collision: c,
		Key:       k,
		Value:     v,
	}
}

func (e *DuplicationError) Error() string {
	switch e.Collision {
	case CollisionKey:
		return fmt.Sprintf("astibimap: key %+v is already bound", e.Key)
	case CollisionValue:
		return fmt.Sprintf("astibimap: value %+v is already bound", e.Value)
	default:
		return fmt.Sprintf("astibimap: key %+v and value %+v are already bound to different associations", e.Key, e.Value)
	}
}

func (e *DuplicationError) Is(target error) bool {
	switch target {
	case ErrDuplication:
		return true
	case ErrKeyDuplication:
		return e.Collision == CollisionKey
	case ErrValueDuplication:
		return e.Collision == CollisionValue
	case ErrKeyAndValueDuplication:
		return e.Collision == CollisionKeyAndValue
	}
	return false
}

func (e *DuplicationError) swap() *DuplicationError {
	return &DuplicationError{
		Collision: e.Collision.Swap(),
		Key:       e.Value,
		Value:     e.Key,
	}
}

// swapError translates an error produced on the forward side into the inverse side's frame
func swapError(err error) error {
	var e *DuplicationError
	if errors.As(err, &e) {
		return e.swap()
	}
	return err
}

func keyNotFoundError(k any) error {
	return fmt.Errorf("astibimap: key %+v: %w", k, ErrKeyNotFound)
}

func valueNotFoundError(v any) error {
	return fmt.Errorf("astibimap: value %+v: %w", v, ErrValueNotFound)
}
