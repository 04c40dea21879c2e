package systems

import (
	"errors"
	"testing"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/game/mocks"
	"go.uber.org/mock/gomock"
)

func runUntil(t *testing.T, sys *TransitionSystem, gs *game.GameState, want game.Mode, maxFrames int) int {
	t.Helper()
	for frame := 1; frame <= maxFrames; frame++ {
		sys.Update(0.1)
		if gs.Mode() == want {
			return frame
		}
	}
	t.Fatalf("mode %s never reached %s", gs.Mode(), want)
	return 0
}

func TestPortfolioTransition(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	audio.EXPECT().PlayMusic(cfg.Audio.Ambient.ID, cfg.Audio.Ambient.Volume).Return(true).Times(1)
	sys := NewTransitionSystem(em, gs, audio, cfg, NewSpawnTicker(cfg.Spawner.Interval))

	if err := sys.StartPortfolio(); err != nil {
		t.Fatal(err)
	}
	if err := sys.StartPortfolio(); !errors.Is(err, game.ErrInvalidTransition) {
		t.Errorf("second start: got %v, want ErrInvalidTransition", err)
	}

	runUntil(t, sys, gs, game.ModeExploring, 100)

	tr := transformOf(t, em, gs.MenuPlane)
	if tr.Position.Y >= cfg.Scenery.MenuPlane.Threshold {
		t.Errorf("menu plane stopped at %v", tr.Position.Y)
	}
	scenery, _ := ecs.GetComponent[*components.SceneryComponent](em, gs.MenuPlane)
	if !scenery.Hidden {
		t.Error("menu plane should be hidden once lowered")
	}
}

func TestSurvivalTransition(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	gomock.InOrder(
		audio.EXPECT().StopMusic(),
		audio.EXPECT().PlayMusic(cfg.Audio.Survival.ID, cfg.Audio.Survival.Volume).Return(true),
	)
	ticker := NewSpawnTicker(cfg.Spawner.Interval)
	sys := NewTransitionSystem(em, gs, audio, cfg, ticker)

	if err := sys.BeginSurvival(); err != nil {
		t.Fatal(err)
	}
	if gs.HealthBarVisible() || ticker.Running() {
		t.Fatal("survival must not be armed before the transition ends")
	}

	runUntil(t, sys, gs, game.ModeSurvivalActive, 200)

	if y := transformOf(t, em, gs.Portfolio).Position.Y; y > cfg.Scenery.Portfolio.Sink.Threshold {
		t.Errorf("portfolio stopped at %v", y)
	}
	if !gs.HealthBarVisible() {
		t.Error("health bar should be visible")
	}
	if !ticker.Running() {
		t.Error("spawn ticker should be running")
	}

	w, _ := ecs.GetComponent[*components.WeaponComponent](em, gs.Weapon)
	b, _ := ecs.GetComponent[*components.BoundsComponent](em, gs.Weapon)
	r, _ := ecs.GetComponent[*components.RenderableComponent](em, gs.Weapon)
	if !w.Active || b.Disabled || r.Hidden {
		t.Errorf("weapon not armed: active=%v disabled=%v hidden=%v", w.Active, b.Disabled, r.Hidden)
	}

	cam, _ := ecs.GetComponent[*components.CameraComponent](em, gs.Camera)
	if cam.MinDistance <= cfg.Camera.MinDistance || cam.MinDistance > cam.MaxDistance {
		t.Errorf("camera min distance = %v", cam.MinDistance)
	}
	if cam.Distance < cam.MinDistance {
		t.Errorf("camera distance %v below min %v", cam.Distance, cam.MinDistance)
	}

	light, _ := ecs.GetComponent[*components.LightComponent](em, gs.Light)
	if light.Intensity <= cfg.Light.Intensity || light.Intensity > light.MaxIntensity {
		t.Errorf("light intensity = %v", light.Intensity)
	}
}

func TestBeginSurvivalOnlyWhileExploring(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioPlayer(ctrl)
	audio.EXPECT().PlayMusic(cfg.Audio.Ambient.ID, cfg.Audio.Ambient.Volume).Return(true)
	sys := NewTransitionSystem(em, gs, audio, cfg, NewSpawnTicker(cfg.Spawner.Interval))

	if err := sys.StartPortfolio(); err != nil {
		t.Fatal(err)
	}
	if err := sys.BeginSurvival(); !errors.Is(err, game.ErrInvalidTransition) {
		t.Errorf("got %v, want ErrInvalidTransition", err)
	}
	if gs.Mode() != game.ModePortfolioTransition {
		t.Errorf("mode = %s", gs.Mode())
	}
}

func TestTransitionFinishesWithoutSink(t *testing.T) {
	tests := []struct {
		name  string
		from  game.Mode
		to    game.Mode
		swap  func(gs *game.GameState, id ecs.EntityID)
		check func(t *testing.T, gs *game.GameState, ticker *SpawnTicker)
	}{
		{
			name: "menu plane",
			from: game.ModePortfolioTransition,
			to:   game.ModeExploring,
			swap: func(gs *game.GameState, id ecs.EntityID) { gs.MenuPlane = id },
			check: func(t *testing.T, gs *game.GameState, ticker *SpawnTicker) {
				if ticker.Running() {
					t.Error("ticker should stay stopped after the portfolio transition")
				}
			},
		},
		{
			name: "portfolio",
			from: game.ModeSurvivalTransition,
			to:   game.ModeSurvivalActive,
			swap: func(gs *game.GameState, id ecs.EntityID) { gs.Portfolio = id },
			check: func(t *testing.T, gs *game.GameState, ticker *SpawnTicker) {
				if !ticker.Running() || !gs.HealthBarVisible() {
					t.Error("survival should be finalized")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, gs, cfg := newTestWorld(t)
			ctrl := gomock.NewController(t)
			ticker := NewSpawnTicker(cfg.Spawner.Interval)
			sys := NewTransitionSystem(em, gs, mocks.NewMockAudioPlayer(ctrl), cfg, ticker)

			bare := em.CreateEntity()
			ecs.AddComponent(em, bare, &components.TransformComponent{})
			tt.swap(gs, bare)

			if err := gs.Transition(tt.from); err != nil {
				t.Fatal(err)
			}
			sys.Update(0.1)
			if gs.Mode() != tt.to {
				t.Fatalf("mode = %s, want %s", gs.Mode(), tt.to)
			}
			tt.check(t, gs, ticker)
		})
	}
}
