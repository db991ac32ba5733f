package searcher

// Hyperparameters for MCTS

const DefaultEpisodes = 600 // Simulations per decision

const MaxCutoff = 80 // Rollout depth cap

const DefaultExploration = 1.4
