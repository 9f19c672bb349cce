package demos

import (
	"fmt"
	"strconv"

	"github.com/coordination-oru/demolauncher/internal/manifest"
)

// paramCount is the number of positional parameters a demo accepts.
const paramCount = 6

// Params are the simulation settings forwarded from the command line, in
// order: nRobots, planner, map, constrained, no_hotspots, exp.
type Params struct {
	Robots      int
	Planner     int
	PlannerName string
	Map         string
	Constrained bool
	NoHotspots  bool
	Experiences int
}

// DefaultParams returns the settings used when no parameters are forwarded.
func DefaultParams() Params {
	return Params{
		Robots:      3,
		Planner:     0,
		PlannerName: "SIMPLE_RRT-Connect",
		Map:         "AGP_Basement",
		Constrained: false,
		NoHotspots:  false,
		Experiences: 100,
	}
}

// ParseParams converts forwarded arguments into Params. A nil or empty
// slice yields DefaultParams; otherwise exactly six values are required.
func ParseParams(args []string) (Params, error) {
	if len(args) == 0 {
		return DefaultParams(), nil
	}
	if len(args) != paramCount {
		return Params{}, fmt.Errorf("expected %d parameters, got %d", paramCount, len(args))
	}

	m, err := manifest.Load()
	if err != nil {
		return Params{}, err
	}

	var p Params
	if p.Robots, err = strconv.Atoi(args[0]); err != nil || p.Robots < 1 {
		return Params{}, fmt.Errorf("nRobots must be a positive integer, got %q", args[0])
	}
	if p.Planner, err = strconv.Atoi(args[1]); err != nil {
		return Params{}, fmt.Errorf("planner must be an integer id, got %q", args[1])
	}
	name, ok := m.PlannerName(p.Planner)
	if !ok {
		return Params{}, fmt.Errorf("unknown planner id %d", p.Planner)
	}
	p.PlannerName = name
	if args[2] == "" {
		return Params{}, fmt.Errorf("map name is empty")
	}
	p.Map = args[2]
	if p.Constrained, err = strconv.ParseBool(args[3]); err != nil {
		return Params{}, fmt.Errorf("constrained must be true or false, got %q", args[3])
	}
	if p.NoHotspots, err = strconv.ParseBool(args[4]); err != nil {
		return Params{}, fmt.Errorf("no_hotspots must be true or false, got %q", args[4])
	}
	if p.Experiences, err = strconv.Atoi(args[5]); err != nil || p.Experiences < 0 {
		return Params{}, fmt.Errorf("exp must be a non-negative integer, got %q", args[5])
	}
	return p, nil
}

// Kinematics names the motion model selected by Constrained.
func (p Params) Kinematics() string {
	if p.Constrained {
		return "ReedsSheep"
	}
	return "Holonomic"
}

// Sampling names the experience sampling strategy selected by NoHotspots.
func (p Params) Sampling() string {
	if p.NoHotspots {
		return "Uniform"
	}
	return "UsingHotspots"
}
