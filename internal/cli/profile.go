package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/crucible/gridgraph"
	"github.com/katalvlaran/crucible/runpath"
)

// Profile is one named search over an input grid. Empty Start means the
// top-left cell, empty Goal the bottom-right cell.
type Profile struct {
	Name     string `toml:"name"`
	MinRun   int    `toml:"min_run"`
	MaxRun   int    `toml:"max_run"`
	Start    string `toml:"start"`
	Goal     string `toml:"goal"`
	AllSeeds bool   `toml:"all_seeds"`
}

// ProfileFile is the TOML document accepted by --profiles.
//
//	frontier = "bucket"
//	max_expansions = 0
//
//	[[profile]]
//	name = "part one"
//	min_run = 1
//	max_run = 3
type ProfileFile struct {
	Frontier      string    `toml:"frontier"`
	MaxExpansions int       `toml:"max_expansions"`
	Profiles      []Profile `toml:"profile"`
}

var errNoProfiles = errors.New("no [[profile]] entries")

// DefaultProfiles are the two puzzle parts: runs of 1..3, then 4..10.
func DefaultProfiles() ProfileFile {
	return ProfileFile{
		Frontier: runpath.FrontierHeap.String(),
		Profiles: []Profile{
			{Name: "part one", MinRun: 1, MaxRun: 3},
			{Name: "part two", MinRun: 4, MaxRun: 10},
		},
	}
}

// LoadProfiles reads and decodes a profile file.
func LoadProfiles(path string) (ProfileFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ProfileFile{}, fmt.Errorf("read profiles: %w", err)
	}
	pf, err := DecodeProfiles(string(data))
	if err != nil {
		return ProfileFile{}, fmt.Errorf("read profiles %s: %w", path, err)
	}

	return pf, nil
}

// DecodeProfiles decodes a profile document. Unknown keys are rejected so
// that a misspelled "max_run" does not silently fall back to zero.
func DecodeProfiles(doc string) (ProfileFile, error) {
	var pf ProfileFile
	md, err := toml.Decode(doc, &pf)
	if err != nil {
		return ProfileFile{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return ProfileFile{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := pf.normalize(); err != nil {
		return ProfileFile{}, err
	}

	return pf, nil
}

func (pf *ProfileFile) normalize() error {
	if len(pf.Profiles) == 0 {
		return errNoProfiles
	}
	if _, err := runpath.ParseFrontierKind(pf.Frontier); err != nil {
		return err
	}
	if pf.MaxExpansions < 0 {
		return fmt.Errorf("max_expansions must be non-negative, got %d", pf.MaxExpansions)
	}
	for i := range pf.Profiles {
		if pf.Profiles[i].Name == "" {
			pf.Profiles[i].Name = fmt.Sprintf("profile %d", i+1)
		}
	}

	return nil
}

// searchOptions translates the file-level settings into runpath options.
func (pf ProfileFile) searchOptions() []runpath.Option {
	kind, _ := runpath.ParseFrontierKind(pf.Frontier)
	opts := []runpath.Option{runpath.WithFrontier(kind)}
	if pf.MaxExpansions > 0 {
		opts = append(opts, runpath.WithMaxExpansions(pf.MaxExpansions))
	}

	return opts
}

// endpoints resolves the profile's start and goal on g.
func (p Profile) endpoints(g *gridgraph.CostGrid) (start, goal gridgraph.Point, err error) {
	goal = gridgraph.Point{X: g.Width() - 1, Y: g.Height() - 1}
	if p.Start != "" {
		if start, err = gridgraph.ParsePoint(p.Start); err != nil {
			return start, goal, fmt.Errorf("profile %q: start: %w", p.Name, err)
		}
	}
	if p.Goal != "" {
		if goal, err = gridgraph.ParsePoint(p.Goal); err != nil {
			return start, goal, fmt.Errorf("profile %q: goal: %w", p.Name, err)
		}
	}

	return start, goal, nil
}
