package routing

// reconstructPath walks a predecessor map back from dest and returns the
// start -> dest sequence, or nil when dest was never reached. A start equal
// to dest is a valid single-stop route.
func reconstructPath(parent map[string]string, start, dest string) []string {
	if dest == start {
		return []string{start}
	}
	if _, ok := parent[dest]; !ok {
		return nil
	}
	var path []string
	for cur := dest; ; {
		path = append(path, cur)
		if cur == start {
			break
		}
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	if len(path) == 0 || path[0] != start {
		return nil
	}
	return path
}

// BFSPath returns the fewest-hop route from start to dest, ignoring edge
// costs. First-discovered predecessor wins ties.
func BFSPath(g *Graph, start, dest string) []string {
	queue := []string{start}
	visited := map[string]bool{start: true}
	parent := make(map[string]string)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dest {
			break
		}
		for _, e := range g.Neighbors(u) {
			if !visited[e.To] {
				visited[e.To] = true
				parent[e.To] = u
				queue = append(queue, e.To)
			}
		}
	}
	return reconstructPath(parent, start, dest)
}

// dfsFrame tracks how far into a vertex's adjacency list the search has
// advanced, so the explicit stack reproduces the recursive exploration order.
type dfsFrame struct {
	id   string
	next int
}

// DFSPath descends depth-first, always taking the first unvisited neighbor in
// adjacency order, and stops at the first encounter of dest. The result is
// not shortest by any metric; it models a naive explorer. The explicit stack
// avoids recursion-depth limits on large graphs.
func DFSPath(g *Graph, start, dest string) []string {
	if start == dest {
		return []string{start}
	}
	visited := map[string]bool{start: true}
	parent := make(map[string]string)
	stack := []dfsFrame{{id: start}}
	found := false
	for len(stack) > 0 && !found {
		top := &stack[len(stack)-1]
		nbrs := g.Neighbors(top.id)
		descended := false
		for top.next < len(nbrs) {
			e := nbrs[top.next]
			top.next++
			if visited[e.To] {
				continue
			}
			visited[e.To] = true
			parent[e.To] = top.id
			if e.To == dest {
				found = true
				break
			}
			stack = append(stack, dfsFrame{id: e.To})
			descended = true
			break
		}
		if !descended && !found {
			stack = stack[:len(stack)-1]
		}
	}
	return reconstructPath(parent, start, dest)
}
