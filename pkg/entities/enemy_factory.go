package entities

import (
	"image/color"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/utils"
)

var speciesColors = map[string]color.RGBA{
	"mouse":     config.ColorMouse,
	"cockroach": config.ColorCockroach,
}

// NewEnemyEntity 在 pos 处创建指定种类的敌人
func NewEnemyEntity(em *ecs.EntityManager, species config.SpeciesConfig, pos utils.Vec3, speed, health float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Species:        species.Name,
		Speed:          speed,
		RotationOffset: species.RotationOffset(),
	})
	ecs.AddComponent(em, id, &components.HealthComponent{Current: health, Max: health})
	ecs.AddComponent(em, id, &components.BoundsComponent{
		HalfExtents: species.HalfExtents.Vec3(),
	})

	c, ok := speciesColors[species.Name]
	if !ok {
		c = config.ColorMouse
	}
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape: components.ShapeRect,
		Color: c,
		Layer: LayerEnemy,
	})
	return id
}
