package searcher

import (
	"punchout/game"
)

type nodeID int

// noParent marks the root
const noParent nodeID = -1

type node struct {
	state    game.FightState
	parent   nodeID      // Only followed during backpropagation
	action   game.Action // Action played from the parent, unset on the root
	children map[game.Action]nodeID
	untried  []game.Action // Never overlaps children keys
	visits   int
	value    float64
}

// tree is an arena of nodes owned by a single search. Nodes refer to each
// other by index so the whole tree is dropped with the slice.
type tree struct {
	nodes []node
}

func newTree(root game.FightState, capacity int) *tree {
	t := &tree{nodes: make([]node, 0, capacity)}
	t.add(noParent, game.NoAction, root)
	return t
}

func (t *tree) root() nodeID {
	return 0
}

func (t *tree) get(id nodeID) *node {
	return &t.nodes[id]
}

func (t *tree) size() int {
	return len(t.nodes)
}

func (t *tree) add(parent nodeID, action game.Action, state game.FightState) nodeID {
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{
		state:    state,
		parent:   parent,
		action:   action,
		children: make(map[game.Action]nodeID),
		untried:  game.LegalActions(state),
	})
	if parent != noParent {
		t.nodes[parent].children[action] = id
	}
	return id
}

// bestChild returns the child of id with the highest UCB1 score. Children are
// scanned in action order so ties resolve the same way on every run.
func (t *tree) bestChild(id nodeID, policy ucb) (nodeID, bool) {
	n := t.get(id)
	best, found := noParent, false
	var bestScore score
	for _, a := range game.AllActions {
		child, ok := n.children[a]
		if !ok {
			continue
		}
		c := t.get(child)
		s := policy.evaluate(c.value, c.visits, n.visits)
		if !found || s.beats(bestScore) {
			best, bestScore, found = child, s, true
		}
	}
	return best, found
}

// mostVisitedChild returns the child of id with the most visits, the first
// one in action order on ties.
func (t *tree) mostVisitedChild(id nodeID) (nodeID, bool) {
	n := t.get(id)
	best, found := noParent, false
	maxVisits := -1
	for _, a := range game.AllActions {
		child, ok := n.children[a]
		if !ok {
			continue
		}
		if v := t.get(child).visits; v > maxVisits {
			best, maxVisits, found = child, v, true
		}
	}
	return best, found
}

// takeUntried removes and returns the i-th untried action of id.
func (t *tree) takeUntried(id nodeID, i int) game.Action {
	n := t.get(id)
	a := n.untried[i]
	n.untried = append(n.untried[:i], n.untried[i+1:]...)
	return a
}

// backup adds reward to every node from id up to the root.
func (t *tree) backup(id nodeID, reward float64) {
	for id != noParent {
		n := t.get(id)
		n.visits++
		n.value += reward
		id = n.parent
	}
}
