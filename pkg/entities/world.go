package entities

import (
	"log"

	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
)

// BuildWorld 创建新世界的所有实体，
// 并把关键实体ID记录到 gs 上。
func BuildWorld(em *ecs.EntityManager, cfg *config.ExperienceConfig, gs *game.GameState) {
	spawn := cfg.Character.Spawn.Vec3()

	NewMainPlaneEntity(em)
	gs.Portfolio = NewPortfolioEntity(em, cfg.Scenery.Portfolio)
	gs.MenuPlane = NewMenuPlaneEntity(em, cfg.Scenery.MenuPlane, spawn)

	portfolioY := cfg.Scenery.Portfolio.Position[1]
	for _, button := range cfg.Hotspots.Buttons {
		parentY := 0.0
		if button.OnPortfolio {
			parentY = portfolioY
		}
		NewHotspotEntity(em, button, cfg.Hotspots, parentY)
	}

	gs.Character = NewCharacterEntity(em, cfg.Character)
	gs.Weapon = NewWeaponEntity(em, cfg.Weapon, gs.Character, spawn)
	gs.Light = NewLightEntity(em, cfg.Light, gs.Character, spawn)
	gs.Camera = NewCameraEntity(em, cfg.Camera, spawn)

	log.Printf("[Entities] World built for session %s: %d entities", gs.Session, em.Count())
}
