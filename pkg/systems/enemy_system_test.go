package systems

import (
	"math"
	"testing"

	"github.com/bananacat/portfolio/pkg/entities"
	"github.com/bananacat/portfolio/pkg/utils"
)

func TestEnemyDiesToWeapon(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	armWeapon(t, em, gs)
	species, _ := cfg.Enemies.SpeciesByName("mouse")

	// The unrotated blade reaches from the character toward +Z.
	charPos := transformOf(t, em, gs.Character).Position
	id := entities.NewEnemyEntity(em, species, utils.V3(charPos.X, 1, charPos.Z+2), 6, cfg.Enemies.Health)

	bounds := NewBoundsSystem(em)
	enemies := NewEnemySystem(em, gs, cfg.Enemies)
	health := healthOf(t, em, id)

	const dt = 0.001
	frames := 0
	for !em.IsMarked(id) {
		if frames > 100 {
			t.Fatal("enemy never died")
		}
		before := health.Current
		bounds.Update()
		enemies.Update(dt)
		frames++

		if health.Current >= before {
			t.Fatalf("frame %d: health did not decrease (%v -> %v)", frames, before, health.Current)
		}
		if em.IsMarked(id) != (health.Current <= 0) {
			t.Fatalf("frame %d: marked=%v with health %v", frames, em.IsMarked(id), health.Current)
		}
	}

	want := int(math.Ceil(cfg.Enemies.Health / cfg.Enemies.WeaponDamage))
	if frames != want {
		t.Errorf("died after %d frames, want %d", frames, want)
	}
	if got := healthOf(t, em, gs.Character).Current; got != cfg.Character.MaxHealth {
		t.Errorf("the weapon hit should not hurt the character, health %v", got)
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("dead enemy still in the world")
	}
}

func TestEnemyContactHurtsBoth(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	species, _ := cfg.Enemies.SpeciesByName("cockroach")
	charPos := transformOf(t, em, gs.Character).Position
	id := entities.NewEnemyEntity(em, species, utils.V3(charPos.X, 1, charPos.Z), 6, cfg.Enemies.Health)

	NewBoundsSystem(em).Update()
	NewEnemySystem(em, gs, cfg.Enemies).Update(0.1)

	if got := healthOf(t, em, id).Current; got != cfg.Enemies.Health-cfg.Enemies.ContactDamage {
		t.Errorf("enemy health = %v", got)
	}
	if got := healthOf(t, em, gs.Character).Current; got != cfg.Character.MaxHealth-cfg.Enemies.PlayerDamage {
		t.Errorf("character health = %v", got)
	}
}

func TestEnemySteersTowardCharacter(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	species, _ := cfg.Enemies.SpeciesByName("mouse")
	charPos := transformOf(t, em, gs.Character).Position
	id := entities.NewEnemyEntity(em, species, utils.V3(charPos.X, 1, charPos.Z+10), 6, cfg.Enemies.Health)

	NewBoundsSystem(em).Update()
	NewEnemySystem(em, gs, cfg.Enemies).Update(0.1)

	tr := transformOf(t, em, id)
	if math.Abs(tr.Position.Z-(charPos.Z+9.4)) > 1e-9 || tr.Position.X != charPos.X {
		t.Errorf("enemy at %+v", tr.Position)
	}
	if tr.Position.Y != 1 {
		t.Errorf("enemies move on the ground plane only, y = %v", tr.Position.Y)
	}
	wantYaw := math.Pi + species.RotationOffset()
	if math.Abs(tr.Yaw-wantYaw) > floatTolerance {
		t.Errorf("yaw = %v, want %v", tr.Yaw, wantYaw)
	}
}

func TestCharacterHealthNeverNegative(t *testing.T) {
	em, gs, cfg := newTestWorld(t)
	species, _ := cfg.Enemies.SpeciesByName("mouse")
	charPos := transformOf(t, em, gs.Character).Position
	for i := 0; i < 5; i++ {
		entities.NewEnemyEntity(em, species, utils.V3(charPos.X, 1, charPos.Z), 6, 1000)
	}
	healthOf(t, em, gs.Character).Current = 2

	bounds := NewBoundsSystem(em)
	enemies := NewEnemySystem(em, gs, cfg.Enemies)
	for i := 0; i < 10; i++ {
		bounds.Update()
		enemies.Update(0.1)
		if h := healthOf(t, em, gs.Character).Current; h < 0 {
			t.Fatalf("frame %d: character health %v", i, h)
		}
	}
	if h := healthOf(t, em, gs.Character).Current; h != 0 {
		t.Errorf("health = %v, want 0", h)
	}
}
