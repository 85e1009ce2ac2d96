// SPDX-License-Identifier: MIT

package cluster

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/heatfield/config"
	"github.com/katalvlaran/heatfield/matrix"
)

// Reorderer turns an n×n similarity matrix into a permutation of 0..n-1.
// Implementations must be deterministic.
type Reorderer interface {
	Reorder(sim matrix.Matrix) ([]int, error)
}

// NewReorderer returns the strategy named by name ("greedy" or "rcm").
func NewReorderer(name string, threshold float64) (Reorderer, error) {
	switch name {
	case config.ReorderGreedy, "":
		return GreedyChain{}, nil
	case config.ReorderRCM:
		return ReverseCuthillMcKee{Threshold: threshold}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownReorderer, name)
	}
}

// readSquare copies a square Matrix into a [][]float64.
func readSquare(sim matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(sim); err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(sim); err != nil {
		return nil, err
	}
	n := sim.Rows()
	out := make([][]float64, n)
	var err error
	for i := 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if out[i][j], err = sim.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// GreedyChain builds a nearest-neighbour chain.
//
// Implementation:
//   - Stage 1: Head = column with the highest total similarity to all others
//     (ties: lowest index).
//   - Stage 2: Repeatedly append the unplaced column most similar to the tail
//     (ties: lowest index).
//   - Stage 3: When no unplaced column has positive similarity to the tail,
//     append all remaining columns in index order and stop.
//
// Complexity: O(n²).
type GreedyChain struct{}

// Reorder implements Reorderer.
func (GreedyChain) Reorder(sim matrix.Matrix) ([]int, error) {
	s, err := readSquare(sim)
	if err != nil {
		return nil, err
	}
	n := len(s)
	if n == 0 {
		return []int{}, nil
	}

	head, best := 0, -1.0
	for i := 0; i < n; i++ {
		var total float64
		for j := 0; j < n; j++ {
			if j != i {
				total += s[i][j]
			}
		}
		if total > best {
			head, best = i, total
		}
	}

	placed := make([]bool, n)
	order := make([]int, 0, n)
	order = append(order, head)
	placed[head] = true
	for len(order) < n {
		tail := order[len(order)-1]
		next, nextSim := -1, 0.0
		for j := 0; j < n; j++ {
			if !placed[j] && s[tail][j] > nextSim {
				next, nextSim = j, s[tail][j]
			}
		}
		if next < 0 {
			for j := 0; j < n; j++ {
				if !placed[j] {
					order = append(order, j)
					placed[j] = true
				}
			}
			break
		}
		order = append(order, next)
		placed[next] = true
	}

	return order, nil
}

// ReverseCuthillMcKee orders columns by reverse Cuthill-McKee over the graph
// whose edges are pairs with similarity ≥ Threshold.
//
// Implementation:
//   - Stage 1: Build adjacency (i≠j, sim ≥ Threshold) and degrees.
//   - Stage 2: While unvisited nodes remain, BFS from the unvisited node with
//     minimum degree (ties: lowest index), enqueueing neighbours by ascending
//     degree (ties: lowest index).
//   - Stage 3: Reverse each component's BFS order and append it.
//
// Complexity: O(n² + n·d·log d).
type ReverseCuthillMcKee struct {
	Threshold float64
}

// Reorder implements Reorderer.
func (r ReverseCuthillMcKee) Reorder(sim matrix.Matrix) ([]int, error) {
	s, err := readSquare(sim)
	if err != nil {
		return nil, err
	}
	n := len(s)
	adj := make([][]int, n)
	deg := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && s[i][j] >= r.Threshold {
				adj[i] = append(adj[i], j)
			}
		}
		deg[i] = len(adj[i])
	}
	byDegree := func(nodes []int) {
		sort.SliceStable(nodes, func(a, b int) bool { return deg[nodes[a]] < deg[nodes[b]] })
	}
	for i := range adj {
		byDegree(adj[i])
	}

	visited := make([]bool, n)
	order := make([]int, 0, n)
	for len(order) < n {
		start := -1
		for i := 0; i < n; i++ {
			if !visited[i] && (start < 0 || deg[i] < deg[start]) {
				start = i
			}
		}
		queue := []int{start}
		visited[start] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, v := range adj[queue[qi]] {
				if !visited[v] {
					visited[v] = true
					queue = append(queue, v)
				}
			}
		}
		for k := len(queue) - 1; k >= 0; k-- {
			order = append(order, queue[k])
		}
	}

	return order, nil
}
