// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package terrain

// Store is a fixed-capacity arena of nodes.
// Nodes are allocated in sequence and released all at
// once, by Clear, or from a given point on, by Truncate.
type Store struct {
	nodes []Node
}

// NewStore creates a new Store that holds at most
// n nodes.
func NewStore(n int) *Store {
	return &Store{nodes: make([]Node, 0, n)}
}

// Alloc allocates a new node.
// It fails with ErrCapacityExceeded if the store is
// full. The node's fields are not initialized.
func (s *Store) Alloc() (NodeID, error) {
	n := len(s.nodes)
	if n == cap(s.nodes) {
		return Nil, ErrCapacityExceeded
	}
	s.nodes = s.nodes[:n+1]
	return NodeID(n), nil
}

// Truncate releases every node whose NodeID is greater
// than or equal to n.
// It is used to roll back a partial allocation.
func (s *Store) Truncate(n int) {
	if n < len(s.nodes) {
		clear(s.nodes[n:])
		s.nodes = s.nodes[:n]
	}
}

// Clear releases every node.
// NodeIDs allocated before the call become invalid.
func (s *Store) Clear() { s.Truncate(0) }

// Node returns the node identified by id.
// The pointer remains valid until the node is released.
func (s *Store) Node(id NodeID) *Node { return &s.nodes[id] }

// Len returns the number of allocated nodes.
func (s *Store) Len() int { return len(s.nodes) }

// Cap returns the capacity of the store.
func (s *Store) Cap() int { return cap(s.nodes) }
