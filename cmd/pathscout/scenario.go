package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pathscout/pathscout/digraph"
)

// Scenario is the YAML layout consumed by graph mode. A matrix cell holds
// an edge weight, or null for "no edge":
//
//	graph:
//	  start: 0
//	  goals: [2]
//	  matrix:
//	    - [null, 1, null]
//	    - [null, null, 1]
//	    - [null, null, null]
type Scenario struct {
	Graph GraphScenario `yaml:"graph"`
}

// GraphScenario describes one adjacency-matrix search problem.
type GraphScenario struct {
	Matrix [][]*float64 `yaml:"matrix"`
	Goals  []int        `yaml:"goals"`
	Start  int          `yaml:"start"`
}

// loadScenario reads and decodes a scenario file.
func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var sc Scenario
	if err = yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}
	if len(sc.Graph.Matrix) == 0 {
		return nil, fmt.Errorf("scenario %s: graph.matrix is empty", path)
	}
	if len(sc.Graph.Goals) == 0 {
		return nil, fmt.Errorf("scenario %s: graph.goals is empty", path)
	}

	return &sc, nil
}

// build converts the decoded matrix (null = no edge) into a DirectedGraph.
func (g GraphScenario) build() (*digraph.DirectedGraph, error) {
	cells := make([][]float64, len(g.Matrix))
	for i, row := range g.Matrix {
		cells[i] = make([]float64, len(row))
		for j, w := range row {
			if w == nil {
				cells[i][j] = digraph.NoEdge
			} else {
				cells[i][j] = *w
			}
		}
	}

	return digraph.New(cells, g.Goals, digraph.WithStart(g.Start))
}
