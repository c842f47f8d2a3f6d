// Package routing holds the weighted road-network model and the path
// algorithms that run over it. The graph is built once at startup and is
// read-only afterwards, so concurrent route requests need no locking.
package routing

import (
	"github.com/Ruthvikr01/Route-Navigator/models"
)

const (
	// metersPerMile converts elevation deltas (meters) into miles.
	metersPerMile = 1609.34

	// minEdgeCost floors directional costs so that steep descents can never
	// produce zero or negative weights, which would break the relaxation and
	// priority-frontier algorithms.
	minEdgeCost = 0.01
)

// Connection is a directed edge. MapDist is the symmetric map distance shared
// with the opposite direction; Cost is the elevation-adjusted cost of
// traveling From -> To.
type Connection struct {
	From    string
	To      string
	MapDist float64
	Cost    float64
}

// Graph maps location ids to locations and to their outgoing connections.
// Location insertion order is preserved: edge enumeration order is
// behaviorally significant for the MST and relaxation algorithms.
type Graph struct {
	locations map[string]models.Location
	order     []string
	// edgeOrder lists ids in the order they first gained an outgoing
	// connection. Edge enumeration follows it, not location order: which
	// direction of an undirected pair is seen first decides the directional
	// cost Kruskal sorts by, and the relaxation order of Bellman-Ford.
	edgeOrder []string
	adj       map[string][]Connection
}

func NewGraph() *Graph {
	return &Graph{
		locations: make(map[string]models.Location),
		adj:       make(map[string][]Connection),
	}
}

// AddLocation inserts or overwrites a location by id. Last write wins;
// the original insertion position is kept on overwrite.
func (g *Graph) AddLocation(loc models.Location) {
	if _, ok := g.locations[loc.ID]; !ok {
		g.order = append(g.order, loc.ID)
	}
	g.locations[loc.ID] = loc
}

// Connect inserts the two directed connections for an undirected pair.
// Unknown endpoints make this a silent no-op: edge rows referencing cities
// missing from the city file are dropped by policy, not treated as errors.
//
// The directional costs scale the map distance by the elevation slope:
// climbing from origin to a higher destination costs more, descending less,
// both floored at minEdgeCost.
func (g *Graph) Connect(originID, destID string, mapDistanceMiles float64) {
	origin, okA := g.locations[originID]
	dest, okB := g.locations[destID]
	if !okA || !okB {
		return
	}

	deltaMiles := 0.0
	if origin.Elevation != nil && dest.Elevation != nil {
		deltaMiles = (*dest.Elevation - *origin.Elevation) / metersPerMile
	}
	slope := 0.0
	if mapDistanceMiles != 0 {
		slope = deltaMiles / mapDistanceMiles
	}

	costThere := mapDistanceMiles * (1 + slope)
	if costThere < minEdgeCost {
		costThere = minEdgeCost
	}
	costBack := mapDistanceMiles * (1 - slope)
	if costBack < minEdgeCost {
		costBack = minEdgeCost
	}

	if len(g.adj[originID]) == 0 {
		g.edgeOrder = append(g.edgeOrder, originID)
	}
	g.adj[originID] = append(g.adj[originID], Connection{From: originID, To: destID, MapDist: mapDistanceMiles, Cost: costThere})
	if len(g.adj[destID]) == 0 {
		g.edgeOrder = append(g.edgeOrder, destID)
	}
	g.adj[destID] = append(g.adj[destID], Connection{From: destID, To: originID, MapDist: mapDistanceMiles, Cost: costBack})
}

// CostBetween returns the directional cost u -> v, falling back to the cost
// v -> u when only the opposite direction is stored, and 0 when the pair is
// not connected at all.
func (g *Graph) CostBetween(u, v string) float64 {
	for _, e := range g.adj[u] {
		if e.To == v {
			return e.Cost
		}
	}
	for _, e := range g.adj[v] {
		if e.To == u {
			return e.Cost
		}
	}
	return 0.0
}

// HasLocation reports whether id is a known location.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.locations[id]
	return ok
}

// Location returns the location for id.
func (g *Graph) Location(id string) (models.Location, bool) {
	loc, ok := g.locations[id]
	return loc, ok
}

// LocationName returns the display name for id, or id itself when unknown.
func (g *Graph) LocationName(id string) string {
	if loc, ok := g.locations[id]; ok {
		return loc.Name
	}
	return id
}

// Locations returns all locations in insertion order.
func (g *Graph) Locations() []models.Location {
	out := make([]models.Location, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.locations[id])
	}
	return out
}

// LocationCount returns the number of locations.
func (g *Graph) LocationCount() int {
	return len(g.locations)
}

// ConnectionCount returns the number of undirected pairs (each pair is stored
// as two directed connections).
func (g *Graph) ConnectionCount() int {
	n := 0
	for _, edges := range g.adj {
		n += len(edges)
	}
	return n / 2
}

// Neighbors returns the outgoing connections of id in insertion order.
func (g *Graph) Neighbors(id string) []Connection {
	return g.adj[id]
}

// allConnections enumerates every directed connection deterministically:
// ids in the order they first gained a connection, each adjacency list in
// insertion order.
func (g *Graph) allConnections() []Connection {
	var out []Connection
	for _, id := range g.edgeOrder {
		out = append(out, g.adj[id]...)
	}
	return out
}
