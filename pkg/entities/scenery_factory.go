package entities

import (
	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/utils"
)

// 地面尺寸，保证生存模式的活动范围不会到达边缘
const (
	mainPlaneSize = 2000
	menuPlaneSize = 400
)

// NewMainPlaneEntity 创建地面
func NewMainPlaneEntity(em *ecs.EntityManager) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{})
	ecs.AddComponent(em, id, &components.SceneryComponent{
		Kind:  components.SceneryMainPlane,
		Width: mainPlaneSize,
		Depth: mainPlaneSize,
	})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape: components.ShapeRect,
		Color: config.ColorMainPlane,
		Layer: LayerGround,
	})
	return id
}

// NewMenuPlaneEntity 创建覆盖世界的菜单平面，
// 开始手势后逐渐下沉。
func NewMenuPlaneEntity(em *ecs.EntityManager, sink config.SinkConfig, center utils.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: utils.V3(center.X, sink.StartY, center.Z),
	})
	ecs.AddComponent(em, id, &components.SceneryComponent{
		Kind:  components.SceneryMenuPlane,
		Width: menuPlaneSize,
		Depth: menuPlaneSize,
	})
	ecs.AddComponent(em, id, &components.SinkComponent{
		StartY:    sink.StartY,
		LowerRate: sink.LowerRate,
		Threshold: sink.Threshold,
	})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape: components.ShapeRect,
		Color: config.ColorMenuPlane,
		Layer: LayerMenuPlane,
	})
	return id
}

// NewPortfolioEntity 创建可行走的作品集模型
func NewPortfolioEntity(em *ecs.EntityManager, model config.PortfolioModel) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Position: model.Position.Vec3(),
		Yaw:      model.Yaw(),
	})
	ecs.AddComponent(em, id, &components.SceneryComponent{
		Kind:  components.SceneryPortfolio,
		Width: model.Size[0],
		Depth: model.Size[1],
		Image: model.Image,
	})
	ecs.AddComponent(em, id, &components.SinkComponent{
		StartY:    model.Position[1],
		LowerRate: model.Sink.LowerRate,
		Threshold: model.Sink.Threshold,
	})
	ecs.AddComponent(em, id, &components.RenderableComponent{
		Shape: components.ShapeRect,
		Color: config.ColorPortfolio,
		Layer: LayerPortfolio,
		Image: model.Image,
	})
	return id
}

// NewLightEntity 创建跟随角色的平行光
func NewLightEntity(em *ecs.EntityManager, cfg config.LightConfig, character ecs.EntityID, characterPos utils.Vec3) ecs.EntityID {
	offset := cfg.Offset.Vec3()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: characterPos.Add(offset)})
	ecs.AddComponent(em, id, &components.FollowComponent{Target: character, Offset: offset})
	ecs.AddComponent(em, id, &components.LightComponent{
		Intensity:    cfg.Intensity,
		MaxIntensity: cfg.MaxIntensity,
		RampRate:     cfg.RampRate,
	})
	return id
}

// NewCameraEntity 创建注视 target 的跟随镜头
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig, target utils.Vec3) ecs.EntityID {
	offset := cfg.Offset.Vec3()
	camera := &components.CameraComponent{
		Target:      target,
		Offset:      offset,
		Distance:    offset.Length(),
		MinDistance: cfg.MinDistance,
		MaxDistance: cfg.MaxDistance,
		ZoomSpeed:   cfg.ZoomSpeed,
	}
	camera.ClampDistance()

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{Position: target.Add(offset)})
	ecs.AddComponent(em, id, camera)
	return id
}
