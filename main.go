package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"punchout/communication"
	"punchout/experiments"
	"punchout/meta"
	"punchout/searcher"
	"punchout/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	addr := flag.String("addr", "", "Address to listen on, overrides the config")
	transport := flag.String("transport", "", "Transport to serve: tcp or ws")
	episodes := flag.Int("episodes", 0, "Number of simulations per decision")
	cutoff := flag.Int("cutoff", 0, "Maximum rollout depth")
	seed := flag.Uint64("seed", 0, "Random seed, 0 for a time based seed")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	experiment := flag.Bool("experiment", false, "Run the offline budget experiment instead of serving")
	bouts := flag.Int("games", experiments.NumBouts, "Bouts per agent config in the experiment")
	out := flag.String("out", "results", "Experiment output directory")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	config, err := meta.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *transport != "" {
		config.Server.Transport = *transport
	}
	if *episodes > 0 {
		config.Search.Episodes = *episodes
	}
	if *cutoff > 0 {
		config.Search.Cutoff = *cutoff
	}
	if *seed != 0 {
		config.Search.Seed = *seed
	}
	listenAddr := config.Addr()
	if *addr != "" {
		listenAddr = *addr
	}

	if *experiment {
		dir, err := experiments.RunBudgetExperiment(*out, *bouts, config.Params(),
			config.Search.Cutoff, config.Search.Exploration, config.Search.Seed)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		log.Info().Msgf("experiment results written to %s", dir)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mcts := searcher.NewMCTS(config.SearchOptions()...)
	service := agent.NewService(agent.NewEvaluationAgent(mcts))
	log.Info().Msgf("MCTS agent ready: %d episodes, cutoff %d, exploration %.2f",
		mcts.Episodes(), mcts.Cutoff(), mcts.Exploration())

	switch config.Server.Transport {
	case "ws":
		err = communication.NewWebSocketServer(listenAddr, service).ListenAndServe(ctx)
	case "tcp":
		err = communication.NewServer(listenAddr, service).ListenAndServe(ctx)
	default:
		log.Fatal().Msgf("unknown transport %q", config.Server.Transport)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
	log.Info().Msgf("served %d frames, shutting down", service.Frames())
}
