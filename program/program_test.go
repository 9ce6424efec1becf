package program_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rparrett/scriplets/program"
)

type recordedMovement struct {
	moveX, moveY  float64
	rotation      float64
	handBrakeHits int
	snapshot      program.MovementSnapshot
}

func (m *recordedMovement) SetInputMove(x float64, y float64) {
	m.moveX = x
	m.moveY = y
}

func (m *recordedMovement) SetInputRotation(rotation float64) {
	m.rotation = rotation
}

func (m *recordedMovement) ToggleHandBrake() {
	m.handBrakeHits++
}

func (m *recordedMovement) Snapshot() program.MovementSnapshot {
	return m.snapshot
}

func makeHandle(movement program.Movement) *program.UnitHandle {
	return program.NewUnitHandle(movement, program.Pose{}, 0, 0)
}

func TestLoadError(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`function (`))
	require.Error(t, err)
	require.Nil(t, up)
}

func TestEmptyProgram(t *testing.T) {
	up, err := program.NewUnitProgram(nil)
	require.NoError(t, err)

	movement := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(movement)))
	assert.Zero(t, movement.moveX)
}

func TestMissingEntryPoint(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`var setup = true;`))
	require.NoError(t, err)

	movement := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(movement)))
	assert.Zero(t, movement.moveX)
	assert.Zero(t, movement.rotation)
}

func TestEntryPointNotAFunction(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`var on_tick = 5;`))
	require.NoError(t, err)

	movement := &recordedMovement{}
	require.Error(t, up.Tick(makeHandle(movement)))
	assert.Zero(t, movement.moveX)
}

func TestMutators(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			handle.move(1, 0.5);
			handle.rotate(-2);
			handle.toggle_hand_brake();
		}
	`))
	require.NoError(t, err)

	movement := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(movement)))

	assert.Equal(t, 1.0, movement.moveX)
	assert.Equal(t, 0.5, movement.moveY)
	assert.Equal(t, -2.0, movement.rotation)
	assert.Equal(t, 1, movement.handBrakeHits)
}

func TestNilMovement(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			if (handle.movement !== null) {
				throw "movement should read as null";
			}
			handle.move(1, 0);
			handle.rotate(1);
			handle.toggle_hand_brake();
		}
	`))
	require.NoError(t, err)

	require.NoError(t, up.Tick(makeHandle(nil)))
}

func TestPoseAndClocks(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			if (handle.pose.position[0] !== 3) { throw "bad x"; }
			if (handle.pose.position[1] !== 4) { throw "bad y"; }
			if (Math.abs(handle.pose.rotation - (-90)) > 1e-9) { throw "bad rotation"; }
			if (handle.time_since_unit_start !== 2.5) { throw "bad unit clock"; }
			if (handle.time_since_world_start !== 10) { throw "bad world clock"; }
		}
	`))
	require.NoError(t, err)

	pose := program.Pose{
		Position:    [2]float64{3, 4},
		Orientation: 3.14159265358979323846 / 2,
	}
	handle := program.NewUnitHandle(&recordedMovement{}, pose, 2.5, 10)

	require.NoError(t, up.Tick(handle))
}

func TestMovementSnapshot(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			var m = handle.movement;
			if (m.movement_type !== "accelerated-steering") { throw "bad type"; }
			if (m.speed !== 3) { throw "bad speed"; }
			if (m.max_speed !== 10) { throw "bad max_speed"; }
			if (m.max_speed_backwards !== 4) { throw "bad max_speed_backwards"; }
			if (m.acceleration !== 8) { throw "bad acceleration"; }
			if (m.braking_acceleration !== 16) { throw "bad braking_acceleration"; }
			if (m.passive_deceleration !== 2) { throw "bad passive_deceleration"; }
			if (m.rotation_speed !== 45) { throw "bad rotation_speed"; }
			if (m.is_hand_brake_pulled !== true) { throw "bad hand brake"; }
		}
	`))
	require.NoError(t, err)

	movement := &recordedMovement{
		snapshot: program.MovementSnapshot{
			MovementType:        "accelerated-steering",
			Speed:               3,
			MaxSpeed:            10,
			MaxSpeedBackwards:   4,
			Acceleration:        8,
			BrakingAcceleration: 16,
			PassiveDeceleration: 2,
			RotationSpeed:       45,
			HandBrake:           true,
		},
	}

	require.NoError(t, up.Tick(makeHandle(movement)))
}

func TestRuntimeErrorKeepsEarlierWrites(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			handle.move(1, 0);
			throw "unit is on fire";
		}
	`))
	require.NoError(t, err)

	movement := &recordedMovement{}
	err = up.Tick(makeHandle(movement))
	require.Error(t, err)

	assert.Equal(t, 1.0, movement.moveX)
}

func TestRetainedHandleIsDead(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		var saved = null;
		function on_tick(handle) {
			if (saved !== null) {
				saved.move(9, 9);
			}
			saved = handle;
		}
	`))
	require.NoError(t, err)

	first := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(first)))

	second := &recordedMovement{}
	err = up.Tick(makeHandle(second))
	require.Error(t, err)

	assert.Zero(t, first.moveX)
	assert.Zero(t, second.moveX)
}

func TestReloadDropsGlobals(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		var ticks = 0;
		function on_tick(handle) {
			ticks++;
			handle.rotate(ticks);
		}
	`))
	require.NoError(t, err)

	movement := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(movement)))
	require.NoError(t, up.Tick(makeHandle(movement)))
	require.Equal(t, 2.0, movement.rotation)

	require.NoError(t, up.Reload([]byte(`
		function on_tick(handle) {
			if (typeof ticks !== "undefined") {
				throw "stale global survived the reload";
			}
			handle.rotate(-1);
		}
	`)))

	require.NoError(t, up.Tick(makeHandle(movement)))
	assert.Equal(t, -1.0, movement.rotation)
}

func TestReloadErrorKeepsPrevious(t *testing.T) {
	up, err := program.NewUnitProgram([]byte(`
		function on_tick(handle) {
			handle.move(1, 0);
		}
	`))
	require.NoError(t, err)

	require.Error(t, up.Reload([]byte(`function (`)))

	movement := &recordedMovement{}
	require.NoError(t, up.Tick(makeHandle(movement)))
	assert.Equal(t, 1.0, movement.moveX)
}
