package chart

// Node is a weighted tree for hierarchical layouts. Leaf values are
// supplied; interior values are the sum of their children after Sum.
type Node struct {
	Name     string
	Color    string
	Value    float64
	Children []*Node

	Parent *Node
	Depth  int
	// X0/X1 span the node along the angular (or horizontal) axis and Y0/Y1
	// along the radial (or vertical) axis once Partition has run.
	X0, X1, Y0, Y1 float64
}

// Sum links parents and depths and sets every interior node's value to the
// total of its leaves. It returns the root value.
func (n *Node) Sum() float64 {
	return n.sum(nil, 0)
}

func (n *Node) sum(parent *Node, depth int) float64 {
	n.Parent = parent
	n.Depth = depth
	if len(n.Children) == 0 {
		return n.Value
	}
	total := 0.0
	for _, c := range n.Children {
		total += c.sum(n, depth+1)
	}
	n.Value = total
	return total
}

// Height returns the number of levels below n.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.Children {
		if ch := c.Height() + 1; ch > h {
			h = ch
		}
	}
	return h
}

// Descendants lists n and every node below it in pre-order.
func (n *Node) Descendants() []*Node {
	out := []*Node{n}
	for _, c := range n.Children {
		out = append(out, c.Descendants()...)
	}
	return out
}

// Partition lays the tree out as adjacent slices: each level gets an equal
// share of dy, and children divide their parent's [X0, X1] span in
// proportion to value. Sum must have been called.
func Partition(root *Node, dx, dy float64) {
	levels := float64(root.Height() + 1)
	root.X0, root.X1 = 0, dx
	root.Y0, root.Y1 = 0, dy/levels
	partitionChildren(root, dy/levels)
}

func partitionChildren(n *Node, band float64) {
	x := n.X0
	k := 0.0
	if n.Value > 0 {
		k = (n.X1 - n.X0) / n.Value
	}
	for _, c := range n.Children {
		c.X0 = x
		x += c.Value * k
		c.X1 = x
		c.Y0 = float64(c.Depth) * band
		c.Y1 = float64(c.Depth+1) * band
		partitionChildren(c, band)
	}
}
