package searcher

import "math"

// score is the UCB1 value of a child. Unvisited children carry no value and
// outrank every visited child.
type score struct {
	unvisited bool
	value     float64
}

type ucb struct {
	c float64 // Exploration constant
}

func newUCB(c float64) ucb {
	return ucb{c: c}
}

// evaluate computes q/n + c*sqrt(ln(N+1)/(n+1)) for a child with n visits and
// total value q under a parent with N visits.
func (u ucb) evaluate(q float64, n int, N int) score {
	if n == 0 {
		return score{unvisited: true}
	}
	exploration := u.c * math.Sqrt(math.Log(float64(N)+1)/(float64(n)+1))
	return score{value: q/float64(n) + exploration}
}

// beats reports whether s should be selected over other. Between two
// unvisited children the incumbent is kept.
func (s score) beats(other score) bool {
	if s.unvisited || other.unvisited {
		return s.unvisited && !other.unvisited
	}
	return s.value > other.value
}
