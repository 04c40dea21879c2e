package entities

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
)

// NewHotspotEntity 创建交互按钮，初始位于 parentY 之上的静止偏移处
func NewHotspotEntity(em *ecs.EntityManager, button config.HotspotConfig, shared config.HotspotsConfig, parentY float64) ecs.EntityID {
	scale := button.Scale
	if scale <= 0 {
		scale = 1
	}

	pos := button.Position.Vec3()
	pos.Y = parentY + shared.RestOffset

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: pos})
	ecs.AddComponent(em, id, &components.HotspotComponent{
		Name:        button.Name,
		Action:      button.Action,
		Target:      button.Target,
		Subject:     button.Subject,
		Body:        button.Body,
		Offset:      shared.RestOffset,
		Rest:        shared.RestOffset,
		Raised:      shared.RaisedOffset,
		OnPortfolio: button.OnPortfolio,
	})
	ecs.AddComponent(em, id, &components.BoundsComponent{
		HalfExtents: shared.HalfExtents.Vec3().Scale(scale),
	})

	renderable := &components.RenderableComponent{
		Shape: components.ShapeCircle,
		Color: config.ColorHotspot,
		Layer: LayerHotspot,
		Image: button.Image,
	}
	if button.Action == config.ActionSurvival {
		renderable.Color = config.ColorRedButton
	}
	ecs.AddComponent(em, id, renderable)
	return id
}
