package scenario

import "fmt"

// SimpleDrop is a single heavy circle falling under gravity onto the floor.
func SimpleDrop() Input {
	return Input{
		WorldWidth: 100, WorldHeight: 100,
		Gravity: [2]float64{0, -9.81}, Timestep: 1.0 / 60.0,
		Restitution: 0.8, PositionCorrection: 0.8,
		Circles: []CircleConfig{
			{Position: [2]float64{50, 80}, Radius: 5, Mass: 1},
		},
		NumSteps: 120, RecordTrajectory: true,
	}
}

// ThreeBodyCollision is three circles converging from different directions,
// under gravity, colliding near the center of the world.
func ThreeBodyCollision() Input {
	return Input{
		WorldWidth: 20, WorldHeight: 20,
		Gravity: [2]float64{0, -9.81}, Timestep: 1.0 / 60.0,
		Restitution: 0.9, PositionCorrection: 0.8,
		Circles: []CircleConfig{
			{Position: [2]float64{5, 10}, Velocity: [2]float64{5, 0}, Radius: 0.5, Mass: 1},
			{Position: [2]float64{15, 10}, Velocity: [2]float64{-5, 0}, Radius: 0.5, Mass: 1},
			{Position: [2]float64{10, 5}, Velocity: [2]float64{0, 3}, Radius: 0.3, Mass: 0.5},
		},
		NumSteps: 300, RecordTrajectory: true,
	}
}

// poolTriangle lays out a gravity-free pool rack: a cue ball plus rows of
// balls forming an equilateral triangle, the way a real rack is racked.
func poolTriangle(rows int, cueVelocity [2]float64, spacingFactor float64) []CircleConfig {
	const radius = 0.5
	const startX, startY = 20.0, 10.0
	spacing := radius * 2 * spacingFactor

	circles := []CircleConfig{
		{Position: [2]float64{5, 10}, Velocity: cueVelocity, Radius: radius, Mass: 1.2},
	}
	for row := 0; row < rows; row++ {
		x := startX + spacing*0.866*float64(row)
		base := startY - spacing*float64(row)/2
		for i := 0; i <= row; i++ {
			circles = append(circles, CircleConfig{
				Position: [2]float64{x, base + spacing*float64(i)},
				Radius:   radius,
				Mass:     1,
			})
		}
	}
	return circles
}

// PoolBreak is the standard 10-ball triangle rack (4 rows) struck by a cue
// ball, with no gravity (a top-down pool table).
func PoolBreak() Input {
	return Input{
		WorldWidth: 30, WorldHeight: 20,
		Gravity: [2]float64{0, 0}, Timestep: 1.0 / 60.0,
		Restitution: 0.95, PositionCorrection: 0.8,
		Circles:  poolTriangle(4, [2]float64{15, 0.1}, 1.05),
		NumSteps: 600, RecordTrajectory: true,
	}
}

// PoolBreak15 is the full 15-ball rack (5 rows) struck harder than
// PoolBreak.
func PoolBreak15() Input {
	return Input{
		WorldWidth: 35, WorldHeight: 20,
		Gravity: [2]float64{0, 0}, Timestep: 1.0 / 60.0,
		Restitution: 0.95, PositionCorrection: 0.8,
		Circles:  poolTriangle(5, [2]float64{18, 0.1}, 1.025),
		NumSteps: 800, RecordTrajectory: true,
	}
}

// builtins maps every accepted scenario name (including hyphenated
// aliases) to its constructor.
var builtins = map[string]func() Input{
	"simple_drop":           SimpleDrop,
	"simple-drop":           SimpleDrop,
	"three_body":            ThreeBodyCollision,
	"three-body":            ThreeBodyCollision,
	"three_body_collision":  ThreeBodyCollision,
	"three-body-collision":  ThreeBodyCollision,
	"pool_break":            PoolBreak,
	"pool-break":            PoolBreak,
	"pool_break_15":         PoolBreak15,
	"pool-break-15":         PoolBreak15,
}

// GetScenario looks up a built-in scenario by name.
func GetScenario(name string) (Input, error) {
	ctor, ok := builtins[name]
	if !ok {
		return Input{}, fmt.Errorf("scenario: unknown built-in scenario %q", name)
	}
	return ctor(), nil
}

// ListScenarios returns every canonical (non-alias) built-in scenario name,
// in a fixed order.
func ListScenarios() []string {
	return []string{"simple_drop", "three_body_collision", "pool_break", "pool_break_15"}
}
