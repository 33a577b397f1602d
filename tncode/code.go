package tncode

import (
	"fmt"
	"hash/fnv"
	"io"
	"math"
	"sort"

	"github.com/katalvlaran/tncodes/code"
)

// Code is a stabilizer code together with the tensor network it was
// assembled from: the graph records where every qubit and seed node
// sits, the registry keeps the seed codes behind the virtual nodes.
type Code struct {
	simple code.Simple
	graph  *Graph
	seeds  map[string]code.Simple
}

// codeConfig carries the FromSimple tunables.
type codeConfig struct {
	name   string
	coords [][2]float64
}

// CodeOption adjusts FromSimple.
type CodeOption func(*codeConfig)

// WithName overrides the content-derived seed name of the virtual node.
func WithName(name string) CodeOption {
	return func(cfg *codeConfig) { cfg.name = name }
}

// WithCoords places the physical qubits at explicit 2-D coordinates
// instead of the default unit circle. The list length must equal the
// qubit count.
func WithCoords(coords [][2]float64) CodeOption {
	return func(cfg *codeConfig) { cfg.coords = coords }
}

// FromSimple wraps a code.Simple as a single-node tensor network: one
// virtual node -1 holding the code as its seed, one physical node and
// one physical edge per qubit. Qubits default to the unit circle around
// the virtual node at the origin.
//
// Returns ErrBadCoords when WithCoords supplies the wrong count.
func FromSimple(s code.Simple, opts ...CodeOption) (*Code, error) {
	cfg := codeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := s.NumQubits()
	if cfg.coords != nil && len(cfg.coords) != n {
		return nil, ErrBadCoords
	}
	name := cfg.name
	if name == "" {
		name = hashName(s)
	}

	g := newGraph()
	virtual := nodeData{typ: name, indices: make([]int, n)}
	for q := 0; q < n; q++ {
		id := g.freshIndex()
		virtual.indices[q] = id

		var coords [2]float64
		if cfg.coords != nil {
			coords = cfg.coords[q]
		} else {
			angle := 2 * math.Pi * float64(q) / float64(n)
			coords = [2]float64{math.Cos(angle), math.Sin(angle)}
		}
		g.nodes[q] = nodeData{coords: coords, typ: TypePhysical, indices: []int{id}}
		g.edges[newEdge(-1, q)] = edgeData{typ: TypePhysical, indices: []int{id}}
	}
	g.nodes[-1] = virtual

	return &Code{
		simple: s.Clone(),
		graph:  g,
		seeds:  map[string]code.Simple{name: s.Clone()},
	}, nil
}

// hashName derives a stable seed name from the code content, so equal
// codes share registry entries and distinct codes never collide after a
// Combine.
func hashName(s code.Simple) string {
	h := fnv.New32a()
	for _, op := range s.Stabilizers() {
		io.WriteString(h, op.String())
		io.WriteString(h, ";")
	}
	io.WriteString(h, "|")
	for _, op := range s.Logicals() {
		io.WriteString(h, op.String())
		io.WriteString(h, ";")
	}
	io.WriteString(h, "|")
	for _, op := range s.PureErrors() {
		io.WriteString(h, op.String())
		io.WriteString(h, ";")
	}
	return fmt.Sprintf("code-%08x", h.Sum32())
}

// Simple returns a deep copy of the underlying stabilizer code.
func (c *Code) Simple() code.Simple { return c.simple.Clone() }

// NumQubits returns the number of physical qubits.
func (c *Code) NumQubits() int { return c.simple.NumQubits() }

// NumLogicalQubits returns the number of encoded qubits.
func (c *Code) NumLogicalQubits() int { return c.simple.NumLogicalQubits() }

// Graph returns the live tensor-network skeleton. Structure is
// read-only through it; only coordinates can be changed.
func (c *Code) Graph() *Graph { return c.graph }

// Seeds returns a deep copy of the seed registry.
func (c *Code) Seeds() map[string]code.Simple {
	out := make(map[string]code.Simple, len(c.seeds))
	for name, s := range c.seeds {
		out[name] = s.Clone()
	}
	return out
}

// Seed looks up one seed code by name.
func (c *Code) Seed(name string) (code.Simple, error) {
	s, ok := c.seeds[name]
	if !ok {
		return code.Simple{}, ErrUnknownSeed
	}
	return s.Clone(), nil
}

// SeedNames returns the registry keys in sorted order.
func (c *Code) SeedNames() []string {
	out := make([]string, 0, len(c.seeds))
	for name := range c.seeds {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Verify checks the stabilizer-code invariants and the graph structure:
// physical labels 0..n-1, virtual labels -1..-m, seed registry entries
// behind every virtual node with matching slot counts, and edge indices
// present in both endpoint index lists.
//
// Returns ErrDegenerateGraph for a graph flagged by a degenerate
// self-contraction, ErrGraphStructure for any other violation, or the
// underlying code.Simple verification error.
func (c *Code) Verify() error {
	if err := c.simple.Verify(); err != nil {
		return err
	}
	if c.graph.degenerate {
		return ErrDegenerateGraph
	}

	n := c.simple.NumQubits()
	physical := c.graph.PhysicalNodes()
	if len(physical) != n {
		return ErrGraphStructure
	}
	for q, label := range physical {
		if label != q {
			return ErrGraphStructure
		}
	}
	virtual := c.graph.VirtualNodes()
	for v, label := range virtual {
		if label != -v-1 {
			return ErrGraphStructure
		}
		nd := c.graph.nodes[label]
		seed, ok := c.seeds[nd.typ]
		if !ok {
			return ErrUnknownSeed
		}
		if len(nd.indices) != seed.NumQubits() {
			return ErrGraphStructure
		}
	}
	for e, ed := range c.graph.edges {
		for _, id := range ed.indices {
			if !containsInt(c.graph.nodes[e.U].indices, id) ||
				!containsInt(c.graph.nodes[e.V].indices, id) {
				return ErrGraphStructure
			}
		}
	}
	return nil
}

// clone deep-copies the whole code.
func (c *Code) clone() *Code {
	return &Code{
		simple: c.simple.Clone(),
		graph:  c.graph.clone(),
		seeds:  c.Seeds(),
	}
}

func containsInt(haystack []int, needle int) bool {
	for _, have := range haystack {
		if have == needle {
			return true
		}
	}
	return false
}
