// Package services composes the graph, the path algorithms and the risk table
// into the route evaluation the HTTP layer serves.
package services

import (
	"sort"

	"github.com/Ruthvikr01/Route-Navigator/models"
	"github.com/Ruthvikr01/Route-Navigator/routing"
	"github.com/Ruthvikr01/Route-Navigator/weather"
)

// Algorithm is a path-strategy selection token.
type Algorithm string

const (
	AlgBFS     Algorithm = "BFS"
	AlgDFS     Algorithm = "DFS"
	AlgPrim    Algorithm = "PRIM"
	AlgKruskal Algorithm = "KRUSKAL"
	AlgBellman Algorithm = "BELLMAN"
	AlgBest    Algorithm = "BEST"
)

// allAlgorithms fixes the evaluation and tie-break order for best-of-all.
var allAlgorithms = []Algorithm{AlgBFS, AlgDFS, AlgPrim, AlgKruskal, AlgBellman}

var algorithmLabels = map[Algorithm]string{
	AlgBFS:     "BFS",
	AlgDFS:     "DFS",
	AlgPrim:    "Prim MST",
	AlgKruskal: "Kruskal MST",
	AlgBellman: "Bellman-Ford",
}

const (
	// fuelEfficiencyMPG is the fixed average consumption used for the fuel
	// estimate: gallons = total distance / 45.
	fuelEfficiencyMPG = 45.0

	// riskWeight ranks weather safety 20x as important as a mile of distance
	// in the composite score.
	riskWeight = 20.0
)

// RouteService evaluates routes over immutable, startup-built state. It is
// safe for concurrent use; every evaluation keeps its working state local.
type RouteService struct {
	graph *routing.Graph
	risks *weather.RiskTable
}

func NewRouteService(graph *routing.Graph, risks *weather.RiskTable) *RouteService {
	return &RouteService{graph: graph, risks: risks}
}

// HasLocation reports whether id names a known location; the HTTP layer uses
// it to reject bad endpoints before evaluation.
func (s *RouteService) HasLocation(id string) bool {
	return s.graph.HasLocation(id)
}

// LocationName resolves a display name, falling back to the id.
func (s *RouteService) LocationName(id string) string {
	return s.graph.LocationName(id)
}

// Cities lists all locations sorted by display name.
func (s *RouteService) Cities() []models.CityInfo {
	locs := s.graph.Locations()
	out := make([]models.CityInfo, 0, len(locs))
	for _, loc := range locs {
		out = append(out, models.CityInfo{ID: loc.ID, Name: loc.Name, State: loc.State})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *RouteService) runAlgorithm(alg Algorithm, start, dest string) []string {
	switch alg {
	case AlgBFS:
		return routing.BFSPath(s.graph, start, dest)
	case AlgDFS:
		return routing.DFSPath(s.graph, start, dest)
	case AlgPrim:
		return routing.PrimPath(s.graph, start, dest)
	case AlgKruskal:
		return routing.KruskalPath(s.graph, start, dest)
	case AlgBellman:
		return routing.BellmanFordPath(s.graph, start, dest)
	default:
		return nil
	}
}

func (s *RouteService) label(alg Algorithm) string {
	if l, ok := algorithmLabels[alg]; ok {
		return l
	}
	return string(alg)
}

// Evaluate runs one algorithm and, when it finds a route, derives the total
// distance, fuel estimate, best travel date, per-segment breakdown and the
// composite score. An empty route is a no-route result, not an error.
func (s *RouteService) Evaluate(start, dest string, alg Algorithm) models.RouteResult {
	route := s.runAlgorithm(alg, start, dest)
	if len(route) == 0 {
		return models.RouteResult{
			OK:             false,
			AlgorithmLabel: s.label(alg),
			Message:        "No route found",
		}
	}

	total := 0.0
	segments := make([]models.RouteSegment, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		u, v := route[i], route[i+1]
		d := s.graph.CostBetween(u, v)
		total += d
		segments = append(segments, models.RouteSegment{
			SrcID:    u,
			DstID:    v,
			SrcName:  s.graph.LocationName(u),
			DstName:  s.graph.LocationName(v),
			Distance: d,
		})
	}

	bestDate, risk, _ := s.risks.BestDateForRoute(route)
	names := make([]string, len(route))
	for i, id := range route {
		names[i] = s.graph.LocationName(id)
	}

	return models.RouteResult{
		OK:             true,
		AlgorithmLabel: s.label(alg),
		RouteIDs:       route,
		RouteNames:     names,
		Segments:       segments,
		TotalDistance:  total,
		GasUsed:        total / fuelEfficiencyMPG,
		TotalRisk:      risk,
		BestTravelDate: bestDate,
		Score:          total + riskWeight*risk,
	}
}

// EvaluateBest runs every algorithm and returns the minimum-score success,
// ties resolved by the fixed evaluation order. When all algorithms fail the
// result is an overall failure.
func (s *RouteService) EvaluateBest(start, dest string) models.RouteResult {
	best := models.RouteResult{OK: false, Message: "No algorithm found a path"}
	have := false
	for _, alg := range allAlgorithms {
		res := s.Evaluate(start, dest, alg)
		if !res.OK {
			continue
		}
		if !have || res.Score < best.Score {
			res.Algorithm = string(alg)
			best = res
			have = true
		}
	}
	return best
}
