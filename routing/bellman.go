package routing

import "math"

// BellmanFordPath computes a minimum-cost route by edge relaxation: up to
// |V|-1 rounds over every directed connection, exiting early once a round
// changes nothing. Edge costs are floored positive at build time, so no
// negative-cycle detection is needed; the relaxation itself is kept general.
func BellmanFordPath(g *Graph, start, dest string) []string {
	if !g.HasLocation(start) {
		return nil
	}
	locs := g.Locations()
	dist := make(map[string]float64, len(locs))
	for _, loc := range locs {
		dist[loc.ID] = math.Inf(1)
	}
	dist[start] = 0.0
	pred := make(map[string]string, len(locs))

	edges := g.allConnections()
	for i := 0; i < len(locs)-1; i++ {
		updated := false
		for _, e := range edges {
			if dist[e.From]+e.Cost < dist[e.To] {
				dist[e.To] = dist[e.From] + e.Cost
				pred[e.To] = e.From
				updated = true
			}
		}
		if !updated {
			break
		}
	}

	d, ok := dist[dest]
	if !ok || math.IsInf(d, 1) {
		return nil
	}
	return reconstructPath(pred, start, dest)
}
