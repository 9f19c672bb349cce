package demos

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/coordination-oru/demolauncher/internal/branding"
	"github.com/coordination-oru/demolauncher/internal/registry"
)

// out is where demos report; tests replace it.
var out io.Writer = os.Stdout

func init() {
	for _, d := range all() {
		d.Name = registry.Qualify(branding.Namespace(), d.Name)
		registry.MustRegister(d)
	}
}

func all() []registry.Descriptor {
	return []registry.Descriptor{
		{
			Name:        "TwoRobotsCrossing",
			Description: "Two robots follow paths that cross once; the coordinator orders them through the shared critical section.",
			Main:        twoRobotsCrossing,
		},
		{
			Name:        "ThreeRobotsIntersection",
			Description: "Three robots meet at a four-way intersection and are released one at a time according to the forward model.",
			Main:        threeRobotsIntersection,
		},
		{
			Name: "ParkingSwap",
			Main: parkingSwap,
		},
		{
			Name:        "PathsInMap",
			Description: "Robots plan paths in a map with the selected motion planner and are coordinated online. Accepts the six demo parameters.",
			Main:        pathsInMap,
		},
		{
			Name:        "icaps.ExperienceReplanning",
			Description: "Replays the experience database built from training problems and replans when a robot deviates from its envelope.",
			Main:        experienceReplanning,
		},
	}
}

func twoRobotsCrossing(args []string) {
	fmt.Fprintln(out, "TwoRobotsCrossing: 2 robots, 1 critical section")
}

func threeRobotsIntersection(args []string) error {
	p, err := ParseParams(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ThreeRobotsIntersection: 3 robots, planner %s\n", p.PlannerName)
	return nil
}

func parkingSwap(args []string) error {
	fmt.Fprintln(out, "ParkingSwap: 2 robots swap parking spots")
	return nil
}

func pathsInMap(ctx context.Context, args []string) error {
	p, err := ParseParams(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "PathsInMap: %d robots in %s, planner %s, %s kinematics\n",
		p.Robots, p.Map, p.PlannerName, p.Kinematics())
	return ctx.Err()
}

func experienceReplanning(ctx context.Context, args []string) error {
	p, err := ParseParams(args)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ExperienceReplanning: %d robots in %s, %d training experiences (%s)\n",
		p.Robots, p.Map, p.Experiences, p.Sampling())
	return ctx.Err()
}
