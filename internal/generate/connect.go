package generate

import (
	"cmp"
	"math"
	"slices"
)

// loopEdgeRatio sets how many extra corridor attempts are made after the
// spanning tree, as a fraction of the room count.
const loopEdgeRatio = 0.3

// edge is a candidate connection between two rooms.
type edge struct {
	from, to int
	distance float64
}

// connectRooms joins every room with a minimum spanning tree of corridors,
// then tries a few random extra corridors to form loops.
func (g *generator) connectRooms() {
	n := len(g.rooms)
	if n <= 1 {
		return
	}

	for _, e := range minimumSpanningTree(g.rooms) {
		g.link(e.from, e.to)
	}

	g.loopAttempts = int(math.Floor(float64(n) * loopEdgeRatio))
	for i := 0; i < g.loopAttempts; i++ {
		a := g.cfg.Rand.Intn(n)
		b := g.cfg.Rand.Intn(n)
		if a == b || slices.Contains(g.rooms[a].Connections, b) {
			continue
		}
		g.link(a, b)
		g.loopsAdded++
	}
}

// link carves a corridor from room a to room b and records the connection
// on both.
func (g *generator) link(a, b int) {
	ra, rb := &g.rooms[a], &g.rooms[b]
	g.carveCorridor(ra, rb)
	ra.Connections = append(ra.Connections, b)
	rb.Connections = append(rb.Connections, a)
}

// minimumSpanningTree runs Kruskal's algorithm over the complete graph of
// room centers. Ties keep the pair order (i<j, row-major).
func minimumSpanningTree(rooms []Room) []edge {
	n := len(rooms)
	edges := make([]edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, edge{from: i, to: j, distance: centerDistance(&rooms[i], &rooms[j])})
		}
	}
	slices.SortStableFunc(edges, func(a, b edge) int {
		return cmp.Compare(a.distance, b.distance)
	})

	mst := make([]edge, 0, max(n-1, 0))
	set := NewDisjointSet(n)
	for _, e := range edges {
		if set.Union(e.from, e.to) {
			mst = append(mst, e)
		}
		if len(mst) == n-1 {
			break
		}
	}
	return mst
}

// centerDistance is the Euclidean distance between two room centers.
func centerDistance(a, b *Room) float64 {
	dx := float64(a.Center.X - b.Center.X)
	dy := float64(a.Center.Y - b.Center.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
