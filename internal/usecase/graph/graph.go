// Package graph builds the relationship graphs over the meeting collection:
// person-workgroup participation and topic co-occurrence.
package graph

// NodeType labels a graph node.
type NodeType string

const (
	NodeTypePerson    NodeType = "person"
	NodeTypeWorkgroup NodeType = "workgroup"
	NodeTypeTopic     NodeType = "topic"
)

// Node is a labeled graph node.
type Node struct {
	ID   string   `json:"id"`
	Type NodeType `json:"node_type"`
}

// Edge is an undirected edge. Weight is zero for unweighted edges.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight,omitempty"`
}

// Graph is an undirected labeled graph without duplicate edges. Node and edge
// iteration follows insertion order, so repeated builds over the same input
// produce identical output.
type Graph struct {
	nodes     map[string]NodeType
	nodeOrder []string
	edges     map[string]*Edge
	edgeOrder []string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]NodeType),
		edges: make(map[string]*Edge),
	}
}

// AddNode inserts a node if absent. The first label wins.
func (g *Graph) AddNode(id string, t NodeType) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = t
	g.nodeOrder = append(g.nodeOrder, id)
}

// AddEdge inserts an undirected edge between a and b if absent.
func (g *Graph) AddEdge(a, b string) {
	g.ensureEdge(a, b)
}

// IncrementEdge inserts the edge if absent and bumps its weight by one,
// returning the new weight.
func (g *Graph) IncrementEdge(a, b string) int {
	edge := g.ensureEdge(a, b)
	edge.Weight++
	return edge.Weight
}

// HasEdge reports whether an edge exists between a and b in either direction.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.edges[edgeKey(a, b)]
	return ok
}

// EdgeWeight returns the weight of the edge between a and b, or zero when the
// edge is absent or unweighted.
func (g *Graph) EdgeWeight(a, b string) int {
	if edge, ok := g.edges[edgeKey(a, b)]; ok {
		return edge.Weight
	}
	return 0
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, Node{ID: id, Type: g.nodes[id]})
	}
	return out
}

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, len(g.edgeOrder))
	for _, key := range g.edgeOrder {
		out = append(out, *g.edges[key])
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HasNodeType reports whether any node carries the given label.
func (g *Graph) HasNodeType(t NodeType) bool {
	for _, nodeType := range g.nodes {
		if nodeType == t {
			return true
		}
	}
	return false
}

func (g *Graph) ensureEdge(a, b string) *Edge {
	key := edgeKey(a, b)
	if edge, ok := g.edges[key]; ok {
		return edge
	}
	edge := &Edge{Source: a, Target: b}
	g.edges[key] = edge
	g.edgeOrder = append(g.edgeOrder, key)
	return edge
}

// edgeKey is order-independent so (a,b) and (b,a) hit the same edge.
func edgeKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}
