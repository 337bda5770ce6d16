package search

import (
	"github.com/donessie94/terminalChessAI/internal/chess"
	"github.com/donessie94/terminalChessAI/internal/engine"
)

// NodeID indexes a node in its Tree. Parents are referenced by ID rather than
// pointer, so a node never outlives the arena that holds it.
type NodeID int32

// nilNode is the parent of the root.
const nilNode NodeID = -1

// NodeStatus tracks a node through the search.
type NodeStatus uint8

const (
	// Unexpanded nodes have been created but not scored.
	Unexpanded NodeStatus = iota
	// Evaluated nodes carry a final score, either static or from their children.
	Evaluated
	// BackedUp nodes have had their score folded into their parent.
	BackedUp
)

// String returns the string representation of a status.
func (s NodeStatus) String() string {
	switch s {
	case Evaluated:
		return "evaluated"
	case BackedUp:
		return "backed-up"
	}
	return "unexpanded"
}

// Node is one position in the search tree.
type Node struct {
	Pos    chess.Position
	Parent NodeID
	// Move is the move that led here from the parent.
	Move chess.Move
	Ply  int

	Eval    float64
	Best    chess.Move
	HasBest bool
	// Cutoff is set when some children were skipped by pruning.
	Cutoff bool
	Status NodeStatus
}

// Tree is the arena holding the nodes of one search. Without retention a
// node's subtree is released as soon as its value has been backed up, so the
// arena never holds more than one path plus the current siblings' parents.
type Tree struct {
	nodes  []Node
	retain bool
}

func newTree(retain bool) *Tree {
	return &Tree{nodes: make([]Node, 0, 64), retain: retain}
}

// addRoot stores the root position and returns its ID.
func (t *Tree) addRoot(pos chess.Position) NodeID {
	t.nodes = append(t.nodes[:0], Node{Pos: pos, Parent: nilNode})
	return 0
}

// expand creates the child reached by playing m from parent.
func (t *Tree) expand(parent NodeID, m chess.Move) NodeID {
	p := &t.nodes[parent]
	child := Node{Pos: p.Pos, Parent: parent, Move: m, Ply: p.Ply + 1}
	engine.Apply(&child.Pos, m)
	t.nodes = append(t.nodes, child)
	return NodeID(len(t.nodes) - 1)
}

// release frees every node allocated after mark unless the tree retains nodes.
func (t *Tree) release(mark int) {
	if !t.retain {
		t.nodes = t.nodes[:mark]
	}
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node with the given ID. The pointer is only valid until
// the tree grows again.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[0]
}
