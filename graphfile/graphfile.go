// Package graphfile loads location networks from YAML documents.
//
// A document lists nodes in order, each with an optional 2D coordinate and an
// ordered list of outgoing edges:
//
//	name: medellin
//	units: km
//	nodes:
//	  - id: Robledo
//	    coord: [2.0, 5.0]
//	    edges:
//	      - {to: Laureles, weight: 3.0}
//
// Decoding is strict: unknown keys, duplicate nodes and edges to undeclared
// nodes are rejected.
package graphfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdrpinto/routesearch"
	"gonum.org/v1/gonum/spatial/r2"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyNodeID   = errors.New("node id is empty")
	ErrDuplicateNode = errors.New("duplicate node")
	ErrUnknownNode   = errors.New("edge to undeclared node")
	ErrBadCoordinate = errors.New("coordinate must have exactly two values")
)

//go:embed data/medellin.yaml
var medellinYAML []byte

// Document is the YAML layout of a network file.
type Document struct {
	Name  string     `yaml:"name"`
	Units string     `yaml:"units"`
	Nodes []NodeSpec `yaml:"nodes"`
}

// NodeSpec declares one node.
type NodeSpec struct {
	ID    string     `yaml:"id"`
	Coord []float64  `yaml:"coord,omitempty"`
	Edges []EdgeSpec `yaml:"edges,omitempty"`
}

// EdgeSpec is a directed, weighted edge leaving the enclosing node.
type EdgeSpec struct {
	To     string  `yaml:"to"`
	Weight float64 `yaml:"weight"`
}

// Network is a loaded graph together with its coordinate table.
type Network struct {
	Name   string
	Units  string
	Graph  *routesearch.AdjacencyList[string]
	Coords routesearch.Coordinates[string]
}

type loadOptions struct {
	mirror bool
}

// LoadOption tunes how a document is turned into a Network.
type LoadOption func(*loadOptions)

// Mirror adds the reverse of every edge whose target declares no edge back to
// its source, so one-way declarations become undirected.
func Mirror() LoadOption {
	return func(o *loadOptions) { o.mirror = true }
}

// Load reads and parses the network file at path.
func Load(path string, opts ...LoadOption) (*Network, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open network file: %w", err)
	}
	defer file.Close()

	network, err := Parse(file, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return network, nil
}

// Medellin returns the bundled demo network of 14 Medellín neighbourhoods.
func Medellin(opts ...LoadOption) (*Network, error) {
	return Parse(bytes.NewReader(medellinYAML), opts...)
}

// Parse decodes a YAML document from r.
func Parse(r io.Reader, opts ...LoadOption) (*Network, error) {
	var doc Document
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("network document is empty")
		}
		return nil, fmt.Errorf("failed to parse network YAML: %w", err)
	}
	return Build(doc, opts...)
}

// Build validates doc and constructs the graph and coordinate table.
func Build(doc Document, opts ...LoadOption) (*Network, error) {
	var options loadOptions
	for _, opt := range opts {
		opt(&options)
	}

	coords := make(routesearch.Coordinates[string])
	index := make(map[string]int, len(doc.Nodes))
	entries := make([]routesearch.Adjacency[string], 0, len(doc.Nodes))

	for i, node := range doc.Nodes {
		if node.ID == "" {
			return nil, fmt.Errorf("node #%d: %w", i+1, ErrEmptyNodeID)
		}
		if _, dup := index[node.ID]; dup {
			return nil, fmt.Errorf("node %q: %w", node.ID, ErrDuplicateNode)
		}
		index[node.ID] = i

		if node.Coord != nil {
			if len(node.Coord) != 2 {
				return nil, fmt.Errorf("node %q: %w", node.ID, ErrBadCoordinate)
			}
			coords[node.ID] = r2.Vec{X: node.Coord[0], Y: node.Coord[1]}
		}

		neighbors := make([]routesearch.Neighbor[string], 0, len(node.Edges))
		for _, edge := range node.Edges {
			neighbors = append(neighbors, routesearch.Neighbor[string]{ID: edge.To, Cost: edge.Weight})
		}
		entries = append(entries, routesearch.Adjacency[string]{Node: node.ID, Neighbors: neighbors})
	}

	for _, entry := range entries {
		for _, nb := range entry.Neighbors {
			if _, ok := index[nb.ID]; !ok {
				return nil, fmt.Errorf("%q -> %q: %w", entry.Node, nb.ID, ErrUnknownNode)
			}
		}
	}

	if options.mirror {
		entries = mirror(entries, index)
	}

	graph, err := routesearch.NewAdjacencyList(entries...)
	if err != nil {
		return nil, err
	}
	return &Network{Name: doc.Name, Units: doc.Units, Graph: graph, Coords: coords}, nil
}

func mirror(entries []routesearch.Adjacency[string], index map[string]int) []routesearch.Adjacency[string] {
	type pair struct{ from, to string }
	declared := make(map[pair]bool)
	for _, entry := range entries {
		for _, nb := range entry.Neighbors {
			declared[pair{entry.Node, nb.ID}] = true
		}
	}

	// Walk a snapshot so reverses added here are not mirrored again.
	declaredLists := make([][]routesearch.Neighbor[string], len(entries))
	for i, entry := range entries {
		declaredLists[i] = entry.Neighbors
	}
	for i, neighbors := range declaredLists {
		from := entries[i].Node
		for _, nb := range neighbors {
			if declared[pair{nb.ID, from}] {
				continue
			}
			target := index[nb.ID]
			entries[target].Neighbors = append(entries[target].Neighbors,
				routesearch.Neighbor[string]{ID: from, Cost: nb.Cost})
			declared[pair{nb.ID, from}] = true
		}
	}
	return entries
}
