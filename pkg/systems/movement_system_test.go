package systems

import (
	"math"
	"testing"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
)

func TestFacingTable(t *testing.T) {
	tests := []struct {
		name string
		keys game.KeyState
		yaw  float64
	}{
		{"W", game.KeyState{Up: true}, math.Pi},
		{"S", game.KeyState{Down: true}, 0},
		{"A", game.KeyState{Left: true}, -math.Pi / 2},
		{"D", game.KeyState{Right: true}, math.Pi / 2},
		{"W+D", game.KeyState{Up: true, Right: true}, 0.75 * math.Pi},
		{"S+D", game.KeyState{Down: true, Right: true}, 0.25 * math.Pi},
		{"W+A", game.KeyState{Up: true, Left: true}, -0.75 * math.Pi},
		{"S+A", game.KeyState{Down: true, Left: true}, -0.25 * math.Pi},
		{"W+S+D", game.KeyState{Up: true, Down: true, Right: true}, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaw, moving := Facing(Direction(tt.keys))
			if !moving {
				t.Fatal("expected movement")
			}
			if math.Abs(yaw-tt.yaw) > floatTolerance {
				t.Errorf("yaw = %v, want %v", yaw, tt.yaw)
			}
		})
	}
}

func TestOpposingKeysCancel(t *testing.T) {
	tests := []struct {
		name string
		keys game.KeyState
	}{
		{"none", game.KeyState{}},
		{"W+S", game.KeyState{Up: true, Down: true}},
		{"A+D", game.KeyState{Left: true, Right: true}},
		{"all four", game.KeyState{Up: true, Down: true, Left: true, Right: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, moving := Facing(Direction(tt.keys)); moving {
				t.Error("expected no movement")
			}
		})
	}
}

func TestMovementUpdate(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewMovementSystem(em, gs)
	tr := transformOf(t, em, gs.Character)
	start := tr.Position
	ch, _ := ecs.GetComponent[*components.CharacterComponent](em, gs.Character)

	sys.Update(game.KeyState{Right: true}, 0.1)

	if math.Abs(tr.Position.X-(start.X+1)) > floatTolerance || tr.Position.Z != start.Z {
		t.Errorf("moved to %+v from %+v", tr.Position, start)
	}
	if math.Abs(tr.Yaw-math.Pi/2) > floatTolerance {
		t.Errorf("yaw = %v", tr.Yaw)
	}
	if ch.Animation != components.AnimationMoving {
		t.Errorf("animation = %v", ch.Animation)
	}

	yaw := tr.Yaw
	sys.Update(game.KeyState{Left: true, Right: true}, 0.1)
	if ch.Animation != components.AnimationIdle {
		t.Errorf("opposing keys should idle, got %v", ch.Animation)
	}
	if tr.Yaw != yaw {
		t.Error("idle should keep the last facing")
	}
}

func TestMovementBlockedDuringTransitions(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	sys := NewMovementSystem(em, gs)
	if err := gs.Transition(game.ModePortfolioTransition); err != nil {
		t.Fatal(err)
	}
	tr := transformOf(t, em, gs.Character)
	start := tr.Position

	sys.Update(game.KeyState{Up: true}, 0.1)

	if tr.Position != start {
		t.Errorf("character moved during a transition: %+v", tr.Position)
	}
	ch, _ := ecs.GetComponent[*components.CharacterComponent](em, gs.Character)
	if ch.Animation != components.AnimationIdle {
		t.Errorf("animation = %v", ch.Animation)
	}
}
