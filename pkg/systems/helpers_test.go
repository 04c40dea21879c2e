package systems

import (
	"testing"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/entities"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
)

const floatTolerance = 1e-9

func newTestWorld(t *testing.T) (*ecs.EntityManager, *game.GameState, *config.ExperienceConfig) {
	t.Helper()
	cfg, err := config.LoadExperienceConfig("../../data/experience.yaml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	em := ecs.NewEntityManager()
	gs := game.NewGameState()
	entities.BuildWorld(em, cfg, gs)
	return em, gs, cfg
}

func transformOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.TransformComponent {
	t.Helper()
	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no transform", id)
	}
	return tr
}

func healthOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no health", id)
	}
	return h
}

func hotspotNamed(t *testing.T, em *ecs.EntityManager, name string) (ecs.EntityID, *components.HotspotComponent) {
	t.Helper()
	for _, id := range ecs.GetEntitiesWith1[*components.HotspotComponent](em) {
		hs, _ := ecs.GetComponent[*components.HotspotComponent](em, id)
		if hs.Name == name {
			return id, hs
		}
	}
	t.Fatalf("no hotspot named %q", name)
	return 0, nil
}

// placeCharacter moves the character onto the ground at x, z.
func placeCharacter(t *testing.T, em *ecs.EntityManager, gs *game.GameState, x, z float64) {
	t.Helper()
	transformOf(t, em, gs.Character).Position = utils.V3(x, 0, z)
}

// armWeapon enables the weapon the way the end of the survival transition does.
func armWeapon(t *testing.T, em *ecs.EntityManager, gs *game.GameState) {
	t.Helper()
	w, _ := ecs.GetComponent[*components.WeaponComponent](em, gs.Weapon)
	w.Active = true
	b, _ := ecs.GetComponent[*components.BoundsComponent](em, gs.Weapon)
	b.Disabled = false
}
