package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/gridgraph"
)

func TestDefaultProfiles(t *testing.T) {
	pf := DefaultProfiles()
	require.Len(t, pf.Profiles, 2)
	assert.Equal(t, Profile{Name: "part one", MinRun: 1, MaxRun: 3}, pf.Profiles[0])
	assert.Equal(t, Profile{Name: "part two", MinRun: 4, MaxRun: 10}, pf.Profiles[1])
	assert.Equal(t, "heap", pf.Frontier)
}

func TestDecodeProfiles(t *testing.T) {
	pf, err := DecodeProfiles(`
frontier = "bucket"
max_expansions = 500

[[profile]]
name = "narrow"
min_run = 1
max_run = 3

[[profile]]
min_run = 2
max_run = 2
start = "1,1"
goal = "4, 0"
all_seeds = true
`)
	require.NoError(t, err)
	assert.Equal(t, "bucket", pf.Frontier)
	assert.Equal(t, 500, pf.MaxExpansions)
	require.Len(t, pf.Profiles, 2)
	assert.Equal(t, "narrow", pf.Profiles[0].Name)
	assert.Equal(t, "profile 2", pf.Profiles[1].Name, "unnamed profiles get a positional name")
	assert.True(t, pf.Profiles[1].AllSeeds)
	assert.Len(t, pf.searchOptions(), 2)
}

func TestDecodeProfiles_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown key":       "[[profile]]\nmin_run = 1\nmax_runs = 3\n",
		"no profiles":       "frontier = \"heap\"\n",
		"bad frontier":      "frontier = \"fifo\"\n[[profile]]\nmin_run = 1\nmax_run = 3\n",
		"negative budget":   "max_expansions = -1\n[[profile]]\nmin_run = 1\nmax_run = 3\n",
		"malformed toml":    "[[profile]\n",
		"wrong value types": "[[profile]]\nmin_run = \"one\"\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeProfiles(doc)
			require.Error(t, err)
		})
	}
}

func TestLoadProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[profile]]\nname = \"x\"\nmin_run = 4\nmax_run = 10\n"), 0o644))

	pf, err := LoadProfiles(path)
	require.NoError(t, err)
	require.Len(t, pf.Profiles, 1)
	assert.Equal(t, 4, pf.Profiles[0].MinRun)

	_, err = LoadProfiles(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProfileEndpoints(t *testing.T) {
	g, err := gridgraph.NewCostGrid([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	start, goal, err := Profile{}.endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{}, start)
	assert.Equal(t, gridgraph.Point{X: 2, Y: 1}, goal)

	start, goal, err = Profile{Start: "1,0", Goal: "0,1"}.endpoints(g)
	require.NoError(t, err)
	assert.Equal(t, gridgraph.Point{X: 1}, start)
	assert.Equal(t, gridgraph.Point{Y: 1}, goal)

	_, _, err = Profile{Name: "p", Goal: "nope"}.endpoints(g)
	require.ErrorIs(t, err, gridgraph.ErrBadPoint)
}
