package routing

import (
	"container/heap"
	"sort"
)

// frontierItem is a candidate edge in Prim's priority frontier. seq is a
// monotone insertion counter so that equal-cost edges pop in discovery order.
type frontierItem struct {
	edge Connection
	seq  int
}

type frontier []frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].edge.Cost != f[j].edge.Cost {
		return f[i].edge.Cost < f[j].edge.Cost
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// primMST grows a minimum spanning tree from start by greedy frontier
// expansion over directional costs. The tree spans start's connected
// component; unreachable locations are simply absent.
func primMST(g *Graph, start string) []Connection {
	if !g.HasLocation(start) {
		return nil
	}
	visited := map[string]bool{start: true}
	pq := &frontier{}
	seq := 0
	for _, e := range g.Neighbors(start) {
		heap.Push(pq, frontierItem{edge: e, seq: seq})
		seq++
	}
	var mst []Connection
	for pq.Len() > 0 && len(visited) < g.LocationCount() {
		item := heap.Pop(pq).(frontierItem)
		v := item.edge.To
		if visited[v] {
			continue
		}
		visited[v] = true
		mst = append(mst, item.edge)
		for _, e := range g.Neighbors(v) {
			if !visited[e.To] {
				heap.Push(pq, frontierItem{edge: e, seq: seq})
				seq++
			}
		}
	}
	return mst
}

// kruskalMST builds a minimum spanning forest: undirected edges deduped by
// canonical pair, enumerated in first-touch order so the first-seen direction
// supplies the cost of each pair, stable-sorted ascending by that directional
// cost, cycles rejected with a union-find using path compression and union
// by rank.
func kruskalMST(g *Graph) []Connection {
	parent := make(map[string]string, g.LocationCount())
	rank := make(map[string]int, g.LocationCount())
	for _, loc := range g.Locations() {
		parent[loc.ID] = loc.ID
		rank[loc.ID] = 0
	}

	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}
		return u
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra == rb {
			return
		}
		if rank[ra] < rank[rb] {
			parent[ra] = rb
		} else {
			parent[rb] = ra
			if rank[ra] == rank[rb] {
				rank[ra]++
			}
		}
	}

	seen := make(map[[2]string]bool)
	var edges []Connection
	for _, id := range g.edgeOrder {
		for _, e := range g.Neighbors(id) {
			key := [2]string{e.From, e.To}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if !seen[key] {
				seen[key] = true
				edges = append(edges, e)
			}
		}
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Cost < edges[j].Cost
	})

	var mst []Connection
	for _, e := range edges {
		if find(e.From) != find(e.To) {
			union(e.From, e.To)
			mst = append(mst, e)
		}
	}
	return mst
}

// treePath finds the unique path between start and dest over a spanning
// tree's undirected adjacency, by breadth-first search.
func treePath(tree []Connection, start, dest string) []string {
	adj := make(map[string][]string)
	for _, e := range tree {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}
	queue := []string{start}
	visited := map[string]bool{start: true}
	parent := make(map[string]string)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == dest {
			break
		}
		for _, v := range adj[u] {
			if !visited[v] {
				visited[v] = true
				parent[v] = u
				queue = append(queue, v)
			}
		}
	}
	return reconstructPath(parent, start, dest)
}

// PrimPath routes along the minimum spanning tree rooted at start. MST edges
// are not shortest-path edges in general; this is presented to users as a
// distinct strategy, not an approximation of one.
func PrimPath(g *Graph, start, dest string) []string {
	return treePath(primMST(g, start), start, dest)
}

// KruskalPath routes along the globally-built minimum spanning forest.
func KruskalPath(g *Graph, start, dest string) []string {
	return treePath(kruskalMST(g), start, dest)
}
