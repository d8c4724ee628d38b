package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akmonengine/clover"
	"github.com/akmonengine/clover/actor"
	"github.com/akmonengine/clover/input"
	"github.com/akmonengine/clover/level"
	"github.com/akmonengine/clover/sim3d"
	"github.com/akmonengine/clover/tuning"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
)

var course = []string{
	"########################",
	"#......................#",
	"#......................#",
	"#..........nnnn........#",
	"#......................#",
	"#......................#",
	"#..............ss......#",
	"#.............bbbb.....#",
	"#..P...................#",
	"#....B.............FFF.#",
	"########################",
}

// script arms the craft, grabs the ball, climbs to the right and lets go above the finish
func script() *input.Script {
	var frames []input.Snapshot
	frames = append(frames, input.Snapshot{Arm: true, Grab: true, Thrust: -1})
	frames = append(frames, input.Hold(input.Snapshot{Grab: true, Thrust: 0.4}, 40)...)
	frames = append(frames, input.Hold(input.Snapshot{Grab: true, Thrust: 0.2, Roll: 0.6}, 20)...)
	frames = append(frames, input.Hold(input.Snapshot{Grab: true, Thrust: 0.1}, 120)...)
	frames = append(frames, input.Hold(input.Snapshot{Grab: true, Thrust: 0.2, Roll: -0.6}, 20)...)
	frames = append(frames, input.Hold(input.Snapshot{Thrust: -1}, 600)...)
	return &input.Script{Frames: frames}
}

func runFlight(t tuning.Tuning, logger *log.Logger, ticks, every int) error {
	b, err := level.FromGrid(course, 32, nil)
	if err != nil {
		return err
	}
	lvl, err := b.Build(logger)
	if err != nil {
		return err
	}

	session := clover.NewSession(lvl, t, logger)
	session.Subscribe(clover.BOUNCE, func(event clover.Event) {
		e := event.(clover.BounceEvent)
		fmt.Printf("  bounce axis=%d intensity=%.2f\n", e.Axis, e.Intensity)
	})
	session.Subscribe(clover.FINISH, func(event clover.Event) {
		e := event.(clover.FinishEvent)
		fmt.Printf("Finish! %.2fs, %s\n", e.Elapsed, e.Tier)
	})

	sampler := script()
	for i := 0; i < ticks; i++ {
		session.Tick(sampler.Sample(), t.Tick)

		if i%every != 0 {
			continue
		}
		state := session.Snapshot()
		fmt.Printf("--- TICK %d ---\n", state.Tick)
		fmt.Printf("  Player: position %v velocity %v angle %.1f grounded %v armed %v\n",
			state.Player.Position, state.Player.Velocity, state.Player.Angle, state.Grounded, state.Armed)
		fmt.Printf("  Ball:   position %v velocity %v %s\n", state.Ball.Position, state.Ball.Velocity, state.Grab)
		fmt.Printf("  Clock:  %.2fs started %v finished %v\n", state.Elapsed, state.Started, state.Finished)

		if state.Finished {
			break
		}
	}

	return nil
}

func runCraft(t tuning.Tuning, ticks, every int) {
	engine := sim3d.NewEngine(mgl64.Vec3{0, 0, 200}, t.Craft3D)
	engine.AddObstacle(actor.AABB{Min: mgl64.Vec3{-2000, -2000, -64}, Max: mgl64.Vec3{2000, 2000, 0}})
	engine.AddObstacle(actor.AABB{Min: mgl64.Vec3{300, -200, 0}, Max: mgl64.Vec3{364, 200, 400}})

	for i := 0; i < ticks; i++ {
		snapshot := input.Snapshot3D{Thrust: 0.65, Pitch: 0.1}
		if i > ticks/2 {
			snapshot = input.Snapshot3D{Yaw: 0.5}
		}
		engine.Step(snapshot, t.Tick)

		if i%every != 0 {
			continue
		}
		c := engine.Craft
		fmt.Printf("--- STEP %d ---\n", i+1)
		fmt.Printf("  Position: %v\n", c.Transform.Position)
		fmt.Printf("  Velocity: %v (len=%.3f)\n", c.Velocity, c.Velocity.Len())
		fmt.Printf("  Rotation: %v\n", c.Transform.Rotation)
		fmt.Printf("  Grounded: %v\n", c.Grounded)
	}
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning file, built-in values when empty")
	ticks := flag.Int("ticks", 1200, "number of ticks to simulate")
	every := flag.Int("every", 30, "print the state every n ticks")
	craft := flag.Bool("3d", false, "run the 3D craft instead of the flight course")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clover",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	t := tuning.Default()
	if *tuningPath != "" {
		var err error
		if t, err = tuning.Load(*tuningPath); err != nil {
			logger.Fatal("cannot load tuning", "err", err)
		}
	}
	*every = max(1, *every)

	if *craft {
		runCraft(t, *ticks, *every)
		return
	}
	if err := runFlight(t, logger, *ticks, *every); err != nil {
		logger.Fatal("cannot run", "err", err)
	}
}
