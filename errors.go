package archecs

import (
	"errors"
	"fmt"
)

// errOverflow is returned internally when a component set's aligned
// single-entity footprint exceeds one 16 KiB memory block. The archetype
// registry wraps it with the offending component set before it reaches
// the public, panicking API.
var errOverflow = errors.New("aligned single-entity footprint exceeds the 16 KiB memory block")

func panicDeadEntity(op string, e Entity) {
	panic(fmt.Sprintf("archecs: %s called on dead entity %s", op, e))
}

func panicMissingComponent(e Entity, id ComponentID) {
	panic(fmt.Sprintf("archecs: entity %s does not carry component %s", e, nameOf(id)))
}

func panicDuplicateType(op string, name string) {
	panic(fmt.Sprintf("archecs: %s received duplicate component type %s", op, name))
}
