package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ruthvikr01/Route-Navigator/models"
	"github.com/Ruthvikr01/Route-Navigator/routing"
	"github.com/Ruthvikr01/Route-Navigator/weather"
)

// newTestService mirrors the routing package's five-city network:
// a-b(1), a-c(4), b-c(1), c-d(1), b-d(5), plus isolated z.
func newTestService(risks *weather.RiskTable) *RouteService {
	g := routing.NewGraph()
	for _, id := range []string{"a", "b", "c", "d", "z"} {
		g.AddLocation(models.Location{ID: id, Name: "City " + id, State: "TS", Elevation: models.Float(0)})
	}
	g.Connect("a", "b", 1)
	g.Connect("a", "c", 4)
	g.Connect("b", "c", 1)
	g.Connect("c", "d", 1)
	g.Connect("b", "d", 5)
	if risks == nil {
		risks = weather.NewRiskTable()
	}
	return NewRouteService(g, risks)
}

func TestEvaluateSuccess(t *testing.T) {
	s := newTestService(nil)

	res := s.Evaluate("a", "d", AlgBellman)
	require.True(t, res.OK)
	assert.Equal(t, "Bellman-Ford", res.AlgorithmLabel)
	assert.Equal(t, []string{"a", "b", "c", "d"}, res.RouteIDs)
	assert.Equal(t, []string{"City a", "City b", "City c", "City d"}, res.RouteNames)
	require.Len(t, res.Segments, 3)
	assert.Equal(t, "a", res.Segments[0].SrcID)
	assert.Equal(t, "b", res.Segments[0].DstID)
	assert.InDelta(t, 1.0, res.Segments[0].Distance, 1e-9)
	assert.InDelta(t, 3.0, res.TotalDistance, 1e-9)
	assert.InDelta(t, 3.0/45.0, res.GasUsed, 1e-9)
	// no risk data: no travel date, score is pure distance
	assert.Empty(t, res.BestTravelDate)
	assert.Zero(t, res.TotalRisk)
	assert.InDelta(t, 3.0, res.Score, 1e-9)
}

func TestEvaluateSameStartAndDest(t *testing.T) {
	s := newTestService(nil)
	for _, alg := range allAlgorithms {
		res := s.Evaluate("a", "a", alg)
		require.True(t, res.OK, "alg %s", alg)
		assert.Equal(t, []string{"a"}, res.RouteIDs)
		assert.Empty(t, res.Segments)
		assert.Zero(t, res.TotalDistance)
		assert.Zero(t, res.GasUsed)
		assert.Zero(t, res.Score)
	}
}

func TestEvaluateNoRoute(t *testing.T) {
	s := newTestService(nil)
	for _, alg := range allAlgorithms {
		res := s.Evaluate("a", "z", alg)
		assert.False(t, res.OK, "alg %s", alg)
		assert.Equal(t, "No route found", res.Message)
		assert.Empty(t, res.RouteIDs)
	}
}

func TestEvaluateUnknownAlgorithm(t *testing.T) {
	s := newTestService(nil)
	res := s.Evaluate("a", "d", Algorithm("ASTAR"))
	assert.False(t, res.OK)
	assert.Equal(t, "ASTAR", res.AlgorithmLabel)
}

func TestEvaluateWithRiskData(t *testing.T) {
	rt := weather.NewRiskTable()
	for _, c := range []string{"a", "b", "c", "d"} {
		rt.Add(c, "2024-06-01", "2")
	}
	s := newTestService(rt)

	res := s.Evaluate("a", "d", AlgBFS)
	require.True(t, res.OK)
	assert.Equal(t, []string{"a", "b", "d"}, res.RouteIDs)
	assert.InDelta(t, 6.0, res.TotalDistance, 1e-9)
	assert.Equal(t, "2024-06-01", res.BestTravelDate)
	// two segments at edge risk 2 each
	assert.InDelta(t, 4.0, res.TotalRisk, 1e-9)
	assert.InDelta(t, 6.0+20.0*4.0, res.Score, 1e-9)
}

func TestEvaluateBestPicksMinimumScore(t *testing.T) {
	s := newTestService(nil)

	best := s.EvaluateBest("a", "d")
	require.True(t, best.OK)
	// BFS scores 6; the other four all score 3 and tie, so the
	// enumeration order makes DFS the winner
	assert.Equal(t, "DFS", best.Algorithm)
	assert.InDelta(t, 3.0, best.Score, 1e-9)

	for _, alg := range allAlgorithms {
		res := s.Evaluate("a", "d", alg)
		if res.OK {
			assert.LessOrEqual(t, best.Score, res.Score, "alg %s", alg)
		}
	}
}

func TestEvaluateBestRiskOutweighsDistance(t *testing.T) {
	// risk on the cheap chain makes the two-hop BFS route win overall
	rt := weather.NewRiskTable()
	rt.Add("a", "day1", "0")
	rt.Add("b", "day1", "0")
	rt.Add("c", "day1", "9")
	rt.Add("d", "day1", "0")
	s := newTestService(rt)

	// BFS a-b-d: distance 6, risk 0          -> score 6
	// chain a-b-c-d: distance 3, risk 4.5+4.5 -> score 183
	best := s.EvaluateBest("a", "d")
	require.True(t, best.OK)
	assert.Equal(t, "BFS", best.Algorithm)
	assert.InDelta(t, 6.0, best.Score, 1e-9)
}

func TestEvaluateBestAllFail(t *testing.T) {
	s := newTestService(nil)
	best := s.EvaluateBest("a", "z")
	assert.False(t, best.OK)
	assert.Equal(t, "No algorithm found a path", best.Message)
}

func TestCitiesSortedByName(t *testing.T) {
	s := newTestService(nil)
	cities := s.Cities()
	require.Len(t, cities, 5)
	for i := 1; i < len(cities); i++ {
		assert.LessOrEqual(t, cities[i-1].Name, cities[i].Name)
	}
}
