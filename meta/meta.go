// meta/meta.go
package meta

import "punchout/searcher"

// HOST is the interface the decision server binds to.
const HOST = "127.0.0.1"

// PORT is the TCP port the emulator bridge connects to.
const PORT = 5001

// EPISODES defines the number of episodes for MCTS.
const EPISODES = searcher.DefaultEpisodes

// WITH_CUTOFF defines the maximum rollout depth for MCTS.
const WITH_CUTOFF = searcher.MaxCutoff

// EXPLORATION defines the UCB1 exploration constant.
const EXPLORATION = searcher.DefaultExploration

// MAX_STEPS bounds an offline bout.
const MAX_STEPS = 2000

// LogEvery is the frame interval of the state summary log.
const LogEvery = 10
