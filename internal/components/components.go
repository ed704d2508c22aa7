package components

import "github.com/katalvlaran/vrh/internal/neighborhood"

// Count returns beta_0 of adj: the number of connected components of its
// n vertices under the (undirected) adjacency relation. An isolated vertex
// is its own component; n == 0 yields 0.
func Count(adj *neighborhood.Adjacency) int {
	n := adj.N()
	visited := make([]bool, n)
	count := 0
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		count++
		bfs(adj, start, visited)
	}
	return count
}

// bfs marks every vertex reachable from start as visited, treating adj as
// undirected (a neighbor either direction counts).
func bfs(adj *neighborhood.Adjacency, start int, visited []bool) {
	n := adj.N()
	queue := []int{start}
	visited[start] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for u := 0; u < n; u++ {
			if visited[u] || u == cur {
				continue
			}
			if adj.Adjacent(cur, u) || adj.Adjacent(u, cur) {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}
}
