package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"punchout/experiments/metrics"
	"punchout/game"

	"github.com/stretchr/testify/require"
)

func readRows(t *testing.T, dir, name string) [][]string {
	t.Helper()
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExperimentRun(t *testing.T) {
	x := Experiment{
		Name: "tiny",
		Root: t.TempDir(),
		Configs: []metrics.AgentConfig{
			{ID: 1, Episodes: 5, Cutoff: 5, Exploration: 1.4},
			{ID: 2, Episodes: 10, Cutoff: 5, Exploration: 0.5},
		},
		Bouts:  2,
		Start:  game.FightState{Health: 96, OppHealth: 100, OppTimer: 50, CanPunch: 10, InFight: game.ActiveFightFlag},
		Params: game.NewStandardParams(),
		Seed:   7,
	}

	dir, err := x.Run()

	require.NoError(t, err)
	require.Len(t, readRows(t, dir, "agent_configs.csv"), 3, "Header plus one row per config")
	bouts := readRows(t, dir, "bout_records.csv")
	require.Len(t, bouts, 5, "Header plus one row per bout")
	for _, row := range bouts[1:] {
		require.Contains(t, []string{"little_mac", "opponent", ""}, row[2])
	}
	require.Greater(t, len(readRows(t, dir, "step_records.csv")), 1, "Bouts should record their steps")
}

func TestCreateMCTS(t *testing.T) {
	m := createMCTS(metrics.AgentConfig{Episodes: 12, Cutoff: 7, Exploration: 0.9}, game.NewStandardParams(), 1)

	require.Equal(t, 12, m.Episodes())
	require.Equal(t, 7, m.Cutoff())
	require.Equal(t, 0.9, m.Exploration())
}

func TestRunBudgetExperiment(t *testing.T) {
	params := game.NewStandardParams()
	params.OppDamage = game.Range{Min: 200, Max: 200} // First landed hook ends the bout

	dir, err := RunBudgetExperiment(t.TempDir(), 1, params, 5, 0.7, 3)

	require.NoError(t, err)
	configs := readRows(t, dir, "agent_configs.csv")
	require.Len(t, configs, len(BudgetEpisodes)+1)
	for _, row := range configs[1:] {
		require.Equal(t, "5", row[2], "Cutoff should come from the caller")
		require.Equal(t, "0.7", row[3], "Exploration should come from the caller")
	}
	for _, row := range readRows(t, dir, "bout_records.csv")[1:] {
		require.Equal(t, "opponent", row[2], "Custom fight params should drive the bouts")
		require.Equal(t, "6", row[6], "Opponent timer runs out on the sixth step")
	}
}
