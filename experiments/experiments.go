package experiments

import (
	"fmt"

	"punchout/engine"
	"punchout/experiments/metrics"
	"punchout/game"
	"punchout/searcher"
	"punchout/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	NumBouts = 20 // Per agent config
	Cutoff   = searcher.MaxCutoff
)

// BudgetEpisodes is the simulation budget sweep of the budget experiment.
var BudgetEpisodes = []int{50, 150, 300, searcher.DefaultEpisodes}

// BudgetConfigs sweeps BudgetEpisodes at a fixed cutoff and exploration.
func BudgetConfigs(cutoff int, exploration float64) []metrics.AgentConfig {
	configs := make([]metrics.AgentConfig, 0, len(BudgetEpisodes))
	for i, episodes := range BudgetEpisodes {
		configs = append(configs, metrics.AgentConfig{
			ID:          i + 1,
			Episodes:    episodes,
			Cutoff:      cutoff,
			Exploration: exploration,
		})
	}
	return configs
}

// Experiment runs bouts for every config and stores the results under Root.
type Experiment struct {
	Name    string
	Root    string
	Configs []metrics.AgentConfig
	Bouts   int
	Start   game.FightState
	Params  game.Params
	Seed    uint64
}

// RunBudgetExperiment plays bouts from the usual opening state for every
// budget in BudgetEpisodes and returns the output directory. The fight model,
// cutoff and exploration are the same for every config.
func RunBudgetExperiment(root string, bouts int, params game.Params, cutoff int, exploration float64, seed uint64) (string, error) {
	if bouts <= 0 {
		bouts = NumBouts
	}
	if cutoff <= 0 {
		cutoff = Cutoff
	}
	return Experiment{
		Name:    "budget",
		Root:    root,
		Configs: BudgetConfigs(cutoff, exploration),
		Bouts:   bouts,
		Start: game.FightState{
			Health:    96,
			OppHealth: 100,
			OppTimer:  50,
			CanPunch:  10,
			InFight:   game.ActiveFightFlag,
		},
		Params: params,
		Seed:   seed,
	}.Run()
}

func (x Experiment) Run() (string, error) {
	count := 0
	boutRecords := []metrics.BoutRecord{}
	stepRecords := []metrics.StepRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for ci, config := range x.Configs {
		log.Info().Msgf("starting config %d of %d: %+v", ci+1, len(x.Configs), config)

		wins := 0
		for i := 0; i < x.Bouts; i++ {
			count++
			winner, boutMetric, stepMetrics := x.runBout(config, x.Seed+uint64(count))
			if winner == engine.WinnerLittleMac {
				wins++
			}
			boutRecords = append(boutRecords, metrics.BoutRecord{
				ID:         count,
				Agent:      config.ID,
				BoutMetric: boutMetric,
			})
			for _, sm := range stepMetrics {
				stepRecords = append(stepRecords, metrics.StepRecord{
					Bout:       count,
					StepMetric: sm,
				})
			}

			log.Debug().Msgf("config %d bout %d of %d won by %q", config.ID, i+1, x.Bouts, winner)
		}
		log.Info().Msgf("completed config %d of %d: %d of %d bouts won", ci+1, len(x.Configs), wins, x.Bouts)
	}

	log.Info().Msgf("completed %s experiment", x.Name)
	return x.store(boutRecords, stepRecords)
}

func (x Experiment) store(boutRecords []metrics.BoutRecord, stepRecords []metrics.StepRecord) (string, error) {
	writer, err := metrics.NewWriter(x.Root, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteBoutRecords(boutRecords); err != nil {
		return "", fmt.Errorf("failed to write bout records: %w", err)
	}
	log.Info().Msg("stored bout records")

	if err := writer.WriteStepRecords(stepRecords); err != nil {
		return "", fmt.Errorf("failed to write step records: %w", err)
	}
	log.Info().Msg("stored step records")

	return writer.Dir(), nil
}

// runBout plays a single offline bout with one agent config
func (x Experiment) runBout(config metrics.AgentConfig, seed uint64) (string, metrics.BoutMetric, []metrics.StepMetric) {
	a := agent.NewEvaluationAgent(createMCTS(config, x.Params, seed))
	e := engine.LocalEngine(x.Start, a, x.Params, seed)
	return e.Run()
}

func createMCTS(config metrics.AgentConfig, params game.Params, seed uint64) *searcher.MCTS {
	options := []searcher.Option{searcher.WithParams(params), searcher.WithSeed(seed)}

	if config.Episodes > 0 {
		options = append(options, searcher.WithEpisodes(config.Episodes))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.Exploration > 0 {
		options = append(options, searcher.WithExploration(config.Exploration))
	}

	options = append(options, searcher.WithMetrics())
	return searcher.NewMCTS(options...)
}
