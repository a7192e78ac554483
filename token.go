package rrb

import "github.com/google/uuid"

// editToken is the capability authorizing in-place mutation of a node. It
// is an identity value: comparison is always by pointer, never by the
// debug label it carries.
type editToken struct {
	label uuid.UUID
}

func newEditToken() *editToken {
	return &editToken{label: uuid.New()}
}

func (e *editToken) String() string {
	if e == nil {
		return "<nil edit token>"
	}
	return e.label.String()
}

// canMutate reports whether this node may be mutated in place under e: its
// refcount must be 1 and its ownee must be e.
func canMutate[T any](n *node[T], e *editToken) bool {
	return e != nil && n != nil && n.owner == e && n.refs.count() == 1
}
