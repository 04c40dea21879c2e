package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

func TestRenderOrder(t *testing.T) {
	em, gs, _ := newTestWorld(t)
	renderables := ecs.GetEntitiesWith2[*components.RenderableComponent, *components.TransformComponent](em)
	order := RenderOrder(em)
	if len(order) >= len(renderables) {
		t.Fatalf("expected hidden entities to be filtered: %d of %d", len(order), len(renderables))
	}
	if again := ecs.GetEntitiesWith2[*components.RenderableComponent, *components.TransformComponent](em); len(again) != len(renderables) {
		t.Errorf("filtering changed the renderable query: %d, was %d", len(again), len(renderables))
	}

	last := math.MinInt
	for _, id := range order {
		r, _ := ecs.GetComponent[*components.RenderableComponent](em, id)
		if r.Layer < last {
			t.Fatalf("entity %d on layer %d drawn after layer %d", id, r.Layer, last)
		}
		last = r.Layer
		if id == gs.Weapon {
			t.Error("the hidden weapon should not be drawn")
		}
	}

	victim := order[len(order)-1]
	em.DestroyEntity(victim)
	for _, id := range RenderOrder(em) {
		if id == victim {
			t.Error("an entity marked for removal should not be drawn")
		}
	}
}

func TestSinkAlpha(t *testing.T) {
	sink := &components.SinkComponent{StartY: 9, LowerRate: 5, Threshold: -1}
	tests := []struct {
		y    float64
		want float64
	}{
		{9, 1},
		{12, 1},
		{4, 0.5},
		{-1, 0},
		{-3, 0},
	}
	for _, tt := range tests {
		if got := SinkAlpha(tt.y, sink); math.Abs(got-tt.want) > floatTolerance {
			t.Errorf("SinkAlpha(%v) = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestLit(t *testing.T) {
	c := color.RGBA{100, 200, 250, 255}
	if got := Lit(c, 1); got != c {
		t.Errorf("intensity 1 changed the color to %v", got)
	}
	got := Lit(c, 5)
	if got.R <= c.R || got.G <= c.G || got.A != c.A {
		t.Errorf("intensity 5 gave %v", got)
	}
	if got.B != 255 {
		t.Errorf("channels must saturate, got %v", got.B)
	}
}

func TestQuadCorners(t *testing.T) {
	corners := quad(utils.V3(10, 0, 10), utils.V3(2, 0, 1), math.Pi/2)
	var sum utils.Vec3
	for _, c := range corners {
		sum = sum.Add(c)
	}
	if center := sum.Scale(0.25); center.Sub(utils.V3(10, 0, 10)).Length() > 1e-9 {
		t.Errorf("quad center = %+v", center)
	}
	// A quarter turn swaps the footprint's extents.
	if w := math.Abs(corners[0].X - corners[2].X); math.Abs(w-2) > 1e-9 {
		t.Errorf("rotated width = %v, want 2", w)
	}
}

func TestHealthBarFill(t *testing.T) {
	tests := []struct {
		percent float64
		want    float64
	}{
		{100, config.HealthBarWidth},
		{150, config.HealthBarWidth},
		{50, config.HealthBarWidth / 2},
		{0, 0},
		{-5, 0},
	}
	for _, tt := range tests {
		if got := HealthBarFill(tt.percent, config.HealthBarWidth); got != tt.want {
			t.Errorf("HealthBarFill(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
}

func TestHintText(t *testing.T) {
	link := &components.HotspotComponent{Name: "github", Action: config.ActionOpenURL}
	red := &components.HotspotComponent{Name: "survival", Action: config.ActionSurvival}
	tests := []struct {
		name    string
		mode    game.Mode
		focused *components.HotspotComponent
		want    string
	}{
		{"idle explore", game.ModeExploring, nil, "WASD / arrows to move, mouse wheel to zoom"},
		{"on a link", game.ModeExploring, link, "Press F to open github"},
		{"on the red button", game.ModeExploring, red, "Press F to start survival"},
		{"dead", game.ModeDead, nil, "Press R to restart"},
		{"menu lowering", game.ModePortfolioTransition, nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HintText(tt.mode, tt.focused); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
