package search

import (
	"fmt"
	"io"
	"strconv"

	"github.com/awalterschulze/gographviz"

	chesserrors "github.com/donessie94/terminalChessAI/internal/errors"
)

const graphName = "search"

// WriteDOT writes the tree as a Graphviz digraph. Edges carry the move
// played; the edge to each node's chosen child is drawn in red and nodes
// whose children were pruned are shaded.
func (t *Tree) WriteDOT(w io.Writer) error {
	g := gographviz.NewGraph()
	if err := g.SetName(graphName); err != nil {
		return chesserrors.Wrap(err, "naming graph")
	}
	if err := g.SetDir(true); err != nil {
		return chesserrors.Wrap(err, "setting graph direction")
	}

	for i := range t.nodes {
		n := &t.nodes[i]
		attrs := map[string]string{
			"label": strconv.Quote(nodeLabel(n)),
			"shape": "box",
		}
		if n.Cutoff {
			attrs["style"] = "filled"
			attrs["fillcolor"] = "lightgrey"
		}
		if err := g.AddNode(graphName, nodeName(i), attrs); err != nil {
			return chesserrors.Wrapf(err, "adding node %d", i)
		}

		if n.Parent == nilNode {
			continue
		}
		edge := map[string]string{"label": strconv.Quote(n.Move.String())}
		if p := &t.nodes[n.Parent]; p.HasBest && p.Best == n.Move {
			edge["color"] = "red"
		}
		if err := g.AddEdge(nodeName(int(n.Parent)), nodeName(i), true, edge); err != nil {
			return chesserrors.Wrapf(err, "adding edge to node %d", i)
		}
	}

	if _, err := io.WriteString(w, g.String()); err != nil {
		return chesserrors.Wrap(err, "writing DOT")
	}
	return nil
}

func nodeName(i int) string {
	return "n" + strconv.Itoa(i)
}

func nodeLabel(n *Node) string {
	who := n.Pos.Turn().String()
	if n.Parent == nilNode {
		return fmt.Sprintf("root (%s)\n%.2f", who, n.Eval)
	}
	return fmt.Sprintf("%s (%s)\n%.2f", n.Move, who, n.Eval)
}
