package astibimap

import (
	"fmt"
	"strings"
)

// OnDupAction is the action taken when an insert collides with existing associations
type OnDupAction int

// On dup actions
const (
	// Reject the insert with a *DuplicationError
	OnDupActionRaise OnDupAction = iota
	// Drop the colliding associations and insert the new one
	OnDupActionOverwrite
	// Keep the existing associations and drop the new one
	OnDupActionIgnore
)

// OnDupActionFromString returns the action matching s. It defaults to OnDupActionRaise.
func OnDupActionFromString(s string) OnDupAction {
	switch strings.ToLower(s) {
	case "overwrite":
		return OnDupActionOverwrite
	case "ignore":
		return OnDupActionIgnore
	default:
		return OnDupActionRaise
	}
}

func (a OnDupAction) String() string {
	switch a {
	case OnDupActionOverwrite:
		return "overwrite"
	case OnDupActionIgnore:
		return "ignore"
	default:
		return "raise"
	}
}

func (a OnDupAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *OnDupAction) UnmarshalText(b []byte) error {
	switch s := strings.ToLower(string(b)); s {
	case "raise", "overwrite", "ignore":
		*a = OnDupActionFromString(s)
		return nil
	default:
		return fmt.Errorf("astibimap: unknown on dup action %q", s)
	}
}

// OnDup holds one action per collision class
type OnDup struct {
	Key         OnDupAction
	Value       OnDupAction
	KeyAndValue OnDupAction
}

// On dup presets
var (
	// Raise on every collision. This is OnDup's zero value.
	OnDupRaise = OnDup{}
	// Overwrite on every collision
	OnDupOverwrite = OnDup{
		Key:         OnDupActionOverwrite,
		Value:       OnDupActionOverwrite,
		KeyAndValue: OnDupActionOverwrite,
	}
	// Behaves like assigning to a regular map: a key may be rebound but a value
	// can't be stolen from another key
	OnDupUpdate = OnDup{
		Key:         OnDupActionOverwrite,
		Value:       OnDupActionRaise,
		KeyAndValue: OnDupActionRaise,
	}
)

// Swap returns the policy as seen from the inverse side
func (d OnDup) Swap() OnDup {
	return OnDup{
		Key:         d.Value,
		Value:       d.Key,
		KeyAndValue: d.KeyAndValue,
	}
}

func (d OnDup) action(c Collision) OnDupAction {
	switch c {
	case CollisionKey:
		return d.Key
	case CollisionValue:
		return d.Value
	default:
		return d.KeyAndValue
	}
}

func (d OnDup) hasRaise() bool {
	return d.Key == OnDupActionRaise || d.Value == OnDupActionRaise || d.KeyAndValue == OnDupActionRaise
}

// Collision classifies how a proposed association relates to the existing ones
type Collision int

// Collisions
const (
	// Neither the key nor the value is present
	CollisionNone Collision = iota
	// The key already maps to the value
	CollisionSameAssociation
	// The key is present and maps to another value
	CollisionKey
	// The value is present and maps to another key
	CollisionValue
	// The key and the value are both present in two different associations
	CollisionKeyAndValue
)

func (c Collision) String() string {
	switch c {
	case CollisionSameAssociation:
		return "same association"
	case CollisionKey:
		return "key"
	case CollisionValue:
		return "value"
	case CollisionKeyAndValue:
		return "key and value"
	default:
		return "none"
	}
}

// Swap returns the collision as seen from the inverse side
func (c Collision) Swap() Collision {
	switch c {
	case CollisionKey:
		return CollisionValue
	case CollisionValue:
		return CollisionKey
	default:
		return c
	}
}

type dedup[K, V comparable] struct {
	collision Collision
	// Key formerly bound to the new value
	oldKey K
	// Value formerly bound to the new key
	oldValue V
}

func (d dedup[K, V]) dupKey() bool {
	return d.collision == CollisionKey || d.collision == CollisionKeyAndValue
}

func (d dedup[K, V]) dupValue() bool {
	return d.collision == CollisionValue || d.collision == CollisionKeyAndValue
}

func classify[K, V comparable](fwd map[K]V, inv map[V]K, k K, v V) (d dedup[K, V]) {
	oldValue, dupKey := fwd[k]
	oldKey, dupValue := inv[v]
	d.oldKey = oldKey
	d.oldValue = oldValue
	switch {
	case dupKey && dupValue:
		if oldKey == k {
			d.collision = CollisionSameAssociation
		} else {
			d.collision = CollisionKeyAndValue
		}
	case dupKey:
		d.collision = CollisionKey
	case dupValue:
		d.collision = CollisionValue
	}
	return
}
