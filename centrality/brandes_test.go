package centrality_test

import (
	"context"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/graph/network"

	"github.com/katalvlaran/happygraph/builder"
	"github.com/katalvlaran/happygraph/centrality"
	"github.com/katalvlaran/happygraph/converters"
	"github.com/katalvlaran/happygraph/core"
	"github.com/katalvlaran/happygraph/record"
)

const eps = 1e-9

// BetweennessSuite exercises Brandes' algorithm on small fixed topologies.
type BetweennessSuite struct {
	suite.Suite
}

func (s *BetweennessSuite) graph(n int, pairs ...[2]int) *core.Graph {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < n; i++ {
		g.AddNode(record.Country{Name: "N" + strconv.Itoa(i)})
	}
	for _, p := range pairs {
		_, err := g.AddEdge(core.NodeIndex(p[0]), core.NodeIndex(p[1]), core.KindUnspecified)
		s.Require().NoError(err)
	}

	return g
}

func (s *BetweennessSuite) run(g *core.Graph, opts ...centrality.Option) *centrality.Result {
	res, err := centrality.Betweenness(g, opts...)
	s.Require().NoError(err)

	return res
}

// TestEmptyGraph: zero nodes ⇒ empty mapping.
func (s *BetweennessSuite) TestEmptyGraph() {
	res := s.run(core.NewGraph())
	s.Empty(res.Scores)
	s.True(res.Exact)
	s.Equal(0, res.Sources)
	_, _, ok := res.Max()
	s.False(ok)
}

// TestNoEdges: every node of an edgeless graph scores 0.
func (s *BetweennessSuite) TestNoEdges() {
	res := s.run(s.graph(4))
	s.Len(res.Scores, 4)
	for v, c := range res.Scores {
		s.Zero(c, "node %d", v)
	}
}

// TestSingleNode: one node scores 0.
func (s *BetweennessSuite) TestSingleNode() {
	res := s.run(s.graph(1))
	c, ok := res.Score(0)
	s.True(ok)
	s.Zero(c)
}

// TestTwoNodes: no intermediate node exists.
func (s *BetweennessSuite) TestTwoNodes() {
	res := s.run(s.graph(2, [2]int{0, 1}))
	s.Equal(map[core.NodeIndex]float64{0: 0, 1: 0}, res.Scores)
}

// TestTriangle: all pairs adjacent ⇒ all zero, even with doubled edges.
func (s *BetweennessSuite) TestTriangle() {
	res := s.run(s.graph(3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2}, [2]int{0, 1}))
	for v := 0; v < 3; v++ {
		c, ok := res.Score(core.NodeIndex(v))
		s.True(ok)
		s.InDelta(0, c, eps)
	}
}

// TestStar5: hub lies on all C(4,2)=6 leaf pairs.
func (s *BetweennessSuite) TestStar5() {
	res := s.run(s.graph(5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}))
	hub, _ := res.Score(0)
	s.InDelta(6, hub, eps)
	for v := 1; v < 5; v++ {
		leaf, _ := res.Score(core.NodeIndex(v))
		s.Greater(hub, leaf)
		s.InDelta(0, leaf, eps)
	}
	top, _, ok := res.Max()
	s.True(ok)
	s.Equal(core.NodeIndex(0), top)

	norm := s.run(s.graph(5, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}), centrality.WithNormalized())
	hubN, _ := norm.Score(0)
	s.InDelta(1, hubN, eps)
	s.True(norm.Normalized)
}

// TestPathAndSquare covers split shortest paths.
func (s *BetweennessSuite) TestPathAndSquare() {
	// 0-1-2-3 path: inner nodes lie on 2 pairs each.
	path := s.run(s.graph(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}))
	s.Equal(map[core.NodeIndex]float64{0: 0, 1: 2, 2: 2, 3: 0}, path.Scores)

	// 4-cycle: each opposite pair has two shortest paths, each node gets 1/2.
	sq := s.run(s.graph(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}))
	for v := 0; v < 4; v++ {
		c, _ := sq.Score(core.NodeIndex(v))
		s.InDelta(0.5, c, eps)
	}
}

// TestDisconnected: components do not interact.
func (s *BetweennessSuite) TestDisconnected() {
	res := s.run(s.graph(6, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4}))
	s.Len(res.Scores, 6)
	s.InDelta(1, res.Scores[1], eps)
	for _, v := range []core.NodeIndex{0, 2, 3, 4, 5} {
		s.InDelta(0, res.Scores[v], eps)
	}
}

// TestMaxIterations: truncation yields a partial mapping of raw totals.
func (s *BetweennessSuite) TestMaxIterations() {
	// 0-1-2 path plus a separate 3-4 pair.
	g := s.graph(5, [2]int{0, 1}, [2]int{1, 2}, [2]int{3, 4})

	part := s.run(g, centrality.WithMaxIterations(1))
	s.False(part.Exact)
	s.Equal(1, part.Sources)
	s.ElementsMatch([]core.NodeIndex{0, 1, 2}, part.Indices(), "only nodes reached from source 0")
	_, ok := part.Score(3)
	s.False(ok)
	// Source 0 alone gives δ(1)=1, halved.
	s.InDelta(0.5, part.Scores[1], eps)

	full := s.run(g, centrality.WithMaxIterations(10))
	s.True(full.Exact)
	s.Equal(5, full.Sources)
	s.Len(full.Scores, 5)

	unbounded := s.run(g, centrality.WithMaxIterations(0))
	s.Equal(full.Scores, unbounded.Scores)
}

// TestCappedBounded: capped scores never exceed exact ones, and normalized
// capped scores stay within [0,1], wherever the star's hub sits.
func (s *BetweennessSuite) TestCappedBounded() {
	for hub := 0; hub < 5; hub++ {
		var pairs [][2]int
		for v := 0; v < 5; v++ {
			if v != hub {
				pairs = append(pairs, [2]int{hub, v})
			}
		}
		g := s.graph(5, pairs...)
		exact := s.run(g)

		for k := 1; k <= 5; k++ {
			raw := s.run(g, centrality.WithMaxIterations(k))
			norm := s.run(g, centrality.WithMaxIterations(k), centrality.WithNormalized())
			for v, c := range raw.Scores {
				s.LessOrEqual(c, exact.Scores[v]+eps, "hub %d cap %d node %d", hub, k, v)
			}
			for v, c := range norm.Scores {
				s.GreaterOrEqual(c, 0.0)
				s.LessOrEqual(c, 1.0+eps, "hub %d cap %d node %d", hub, k, v)
			}
		}
	}

	// Hub last with cap 4: all four leaves are sources, so every leaf pair
	// is seen once and the hub reaches exactly the exact score.
	g := s.graph(5, [2]int{4, 0}, [2]int{4, 1}, [2]int{4, 2}, [2]int{4, 3})
	hub, _ := s.run(g, centrality.WithMaxIterations(4)).Score(4)
	s.InDelta(6, hub, eps)
	hubN, _ := s.run(g, centrality.WithMaxIterations(4), centrality.WithNormalized()).Score(4)
	s.InDelta(1, hubN, eps)
}

// TestErrors covers nil graph, bad options and cancellation.
func (s *BetweennessSuite) TestErrors() {
	_, err := centrality.Betweenness(nil)
	s.ErrorIs(err, centrality.ErrGraphNil)

	_, err = centrality.Betweenness(s.graph(2), centrality.WithMaxIterations(-1))
	s.ErrorIs(err, centrality.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = centrality.Betweenness(s.graph(3, [2]int{0, 1}), centrality.WithContext(ctx))
	s.ErrorIs(err, context.Canceled)
}

func TestBetweennessSuite(t *testing.T) {
	suite.Run(t, new(BetweennessSuite))
}

// TestBetweenness_MatchesGonum cross-checks random builder graphs against
// gonum's network.Betweenness. gonum counts ordered pairs, so its scores are
// exactly twice the halved undirected scores.
func TestBetweenness_MatchesGonum(t *testing.T) {
	path := core.NewGraph()
	for i := 0; i < 3; i++ {
		path.AddNode(record.Country{Name: "P" + strconv.Itoa(i)})
	}
	_, err := path.AddEdge(0, 1, core.KindUnspecified)
	require.NoError(t, err)
	_, err = path.AddEdge(1, 2, core.KindUnspecified)
	require.NoError(t, err)
	mid, err := centrality.Betweenness(path)
	require.NoError(t, err)
	require.InDelta(t, 1, mid.Scores[1], eps)
	require.InDelta(t, 2, network.Betweenness(converters.ToSimple(path))[1], eps)

	rng := rand.New(rand.NewSource(7))
	regions := []string{"A", "B", "C", "D", "E", "F"}

	for trial := 0; trial < 10; trial++ {
		store := record.Store{}
		n := 8 + rng.Intn(20)
		for i := 0; i < n; i++ {
			store.Add(record.Country{
				Name:           "C" + strconv.Itoa(i),
				Region:         regions[rng.Intn(len(regions))],
				HappinessScore: rng.Float64() * 12,
			})
		}
		g, err := builder.Build(store)
		require.NoError(t, err)

		ours, err := centrality.Betweenness(g)
		require.NoError(t, err)
		theirs := network.Betweenness(converters.ToSimple(g))

		// gonum omits zero scores.
		for v, c := range ours.Scores {
			require.InDelta(t, theirs[int64(v)], 2*c, 1e-6, "trial %d node %d", trial, v)
		}
	}
}
