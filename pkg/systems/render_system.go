package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/bananacat/portfolio/pkg/components"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/ecs"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// brightnessPerIntensity 每高出 1 个单位的光照强度带来的亮度增幅
const brightnessPerIntensity = 0.06

// RenderSystem 通过镜头投影俯视绘制世界。
// 按层级绘制，同层按实体ID排序。
type RenderSystem struct {
	entityManager   *ecs.EntityManager
	gameState       *game.GameState
	resourceManager *game.ResourceManager
	camera          config.CameraConfig

	whiteImage *ebiten.Image
	vertices   []ebiten.Vertex
	indices    []uint16
}

// NewRenderSystem 创建渲染系统。rm 可以为 nil，
// 此时所有实体都绘制为纯色形状。
func NewRenderSystem(em *ecs.EntityManager, gs *game.GameState, rm *game.ResourceManager, camera config.CameraConfig) *RenderSystem {
	return &RenderSystem{
		entityManager:   em,
		gameState:       gs,
		resourceManager: rm,
		camera:          camera,
	}
}

// Projection 返回本帧的世界到屏幕映射
func (s *RenderSystem) Projection(screenW, screenH float64) utils.Projection {
	cam, ok := ecs.GetComponent[*components.CameraComponent](s.entityManager, s.gameState.Camera)
	if !ok {
		return utils.NewProjection(utils.Vec3{}, s.camera.PixelsPerUnit, s.camera.ReferenceDistance, s.camera.ReferenceDistance, screenW, screenH)
	}
	return utils.NewProjection(cam.Target, s.camera.PixelsPerUnit, s.camera.ReferenceDistance, cam.Distance, screenW, screenH)
}

// Draw 绘制所有可见实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	proj := s.Projection(float64(bounds.Dx()), float64(bounds.Dy()))
	intensity := s.lightIntensity()

	screen.Fill(config.ColorBackground)

	for _, id := range RenderOrder(s.entityManager) {
		r, _ := ecs.GetComponent[*components.RenderableComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		clr := Lit(r.Color, intensity)

		switch {
		case ecs.HasComponent[*components.SceneryComponent](s.entityManager, id):
			s.drawScenery(screen, proj, id, tr, r, clr)
		case ecs.HasComponent[*components.HotspotComponent](s.entityManager, id):
			s.drawHotspot(screen, proj, id, tr, r, clr)
		case ecs.HasComponent[*components.WeaponComponent](s.entityManager, id):
			s.drawWeapon(screen, proj, id, tr, clr)
		case ecs.HasComponent[*components.EnemyComponent](s.entityManager, id):
			s.drawEnemy(screen, proj, id, tr, clr)
		default:
			s.drawCharacter(screen, proj, id, tr, clr)
		}
	}
}

// RenderOrder 返回按层级排序的可见实体，
// 跳过已标记待删除的实体。
func RenderOrder(em *ecs.EntityManager) []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.RenderableComponent, *components.TransformComponent](em)
	visible := make([]ecs.EntityID, 0, len(ids))
	for _, id := range ids {
		r, _ := ecs.GetComponent[*components.RenderableComponent](em, id)
		if r.Hidden || em.IsMarked(id) {
			continue
		}
		visible = append(visible, id)
	}
	sort.SliceStable(visible, func(i, j int) bool {
		a, _ := ecs.GetComponent[*components.RenderableComponent](em, visible[i])
		b, _ := ecs.GetComponent[*components.RenderableComponent](em, visible[j])
		return a.Layer < b.Layer
	})
	return visible
}

// SinkAlpha 让下沉物体从起始高度的不透明
// 渐变到阈值处的完全透明。
func SinkAlpha(y float64, sink *components.SinkComponent) float64 {
	return utils.Ratio(y-sink.Threshold, sink.StartY-sink.Threshold)
}

// Lit 在光照强度高于 1 时提亮颜色 c
func Lit(c color.RGBA, intensity float64) color.RGBA {
	if intensity <= 1 {
		return c
	}
	k := 1 + (intensity-1)*brightnessPerIntensity
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*k))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// fade 按 alpha 缩放颜色，保持预乘格式
func fade(c color.RGBA, alpha float64) color.RGBA {
	a := utils.Clamp(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func (s *RenderSystem) lightIntensity() float64 {
	light, ok := ecs.GetComponent[*components.LightComponent](s.entityManager, s.gameState.Light)
	if !ok {
		return 1
	}
	return light.Intensity
}

func (s *RenderSystem) image(id string) *ebiten.Image {
	if id == "" || s.resourceManager == nil {
		return nil
	}
	return s.resourceManager.GetImageByID(id)
}

func (s *RenderSystem) drawScenery(screen *ebiten.Image, proj utils.Projection, id ecs.EntityID, tr *components.TransformComponent, r *components.RenderableComponent, clr color.RGBA) {
	scenery, _ := ecs.GetComponent[*components.SceneryComponent](s.entityManager, id)
	if scenery.Hidden {
		return
	}
	alpha := 1.0
	if sink, ok := ecs.GetComponent[*components.SinkComponent](s.entityManager, id); ok {
		alpha = SinkAlpha(tr.Position.Y, sink)
	}
	if alpha <= 0 {
		return
	}
	corners := quad(tr.Position, utils.V3(scenery.Width/2, 0, scenery.Depth/2), tr.Yaw)
	s.fillQuad(screen, proj, corners, clr, alpha)
	if img := s.image(r.Image); img != nil {
		s.drawImageQuad(screen, proj, corners, img, alpha)
	}
}

func (s *RenderSystem) drawHotspot(screen *ebiten.Image, proj utils.Projection, id ecs.EntityID, tr *components.TransformComponent, r *components.RenderableComponent, clr color.RGBA) {
	hs, _ := ecs.GetComponent[*components.HotspotComponent](s.entityManager, id)
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)

	alpha := 1.0
	if hs.OnPortfolio {
		if sink, ok := ecs.GetComponent[*components.SinkComponent](s.entityManager, s.gameState.Portfolio); ok {
			if parent, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.gameState.Portfolio); ok {
				alpha = SinkAlpha(parent.Position.Y, sink)
			}
		}
	}
	if alpha <= 0 {
		return
	}

	x, y := proj.WorldToScreen(tr.Position)
	if !proj.Visible(x, y, config.OffscreenMargin) {
		return
	}
	if hs.Overlapping && hs.Action != config.ActionSurvival {
		clr = config.ColorHotspotFocus
	}

	if img := s.image(r.Image); img != nil {
		corners := quad(tr.Position, utils.V3(bounds.HalfExtents.X, 0, bounds.HalfExtents.Z), 0)
		s.drawImageQuad(screen, proj, corners, img, alpha)
	} else {
		radius := float32(proj.Length(bounds.HalfExtents.X))
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, fade(clr, alpha), true)
	}
	if hs.Overlapping {
		radius := float32(proj.Length(bounds.HalfExtents.X)) + 3
		vector.StrokeCircle(screen, float32(x), float32(y), radius, 2, fade(config.ColorTextAccent, alpha), true)
	}
}

func (s *RenderSystem) drawCharacter(screen *ebiten.Image, proj utils.Projection, id ecs.EntityID, tr *components.TransformComponent, clr color.RGBA) {
	x, y := proj.WorldToScreen(tr.Position)
	radius := 0.5
	if bounds, ok := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id); ok {
		radius = bounds.HalfExtents.X
	}
	if ch, ok := ecs.GetComponent[*components.CharacterComponent](s.entityManager, id); ok && ch.Animation == components.AnimationMoving {
		radius *= 1 + 0.06*math.Sin(ch.AnimTime*12)
	}
	px := proj.Length(radius)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(px), clr, true)

	nose := tr.Position.Add(utils.V3(0, 0, radius*1.6).RotateY(tr.Yaw))
	nx, ny := proj.WorldToScreen(nose)
	vector.StrokeLine(screen, float32(x), float32(y), float32(nx), float32(ny), 3, clr, true)
}

func (s *RenderSystem) drawEnemy(screen *ebiten.Image, proj utils.Projection, id ecs.EntityID, tr *components.TransformComponent, clr color.RGBA) {
	x, y := proj.WorldToScreen(tr.Position)
	if !proj.Visible(x, y, config.OffscreenMargin) {
		return
	}
	bounds, _ := ecs.GetComponent[*components.BoundsComponent](s.entityManager, id)
	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)

	half := utils.V3(bounds.HalfExtents.X, 0, bounds.HalfExtents.Z)
	s.fillQuad(screen, proj, quad(tr.Position, half, tr.Yaw), clr, 1)

	head := tr.Position.Add(utils.V3(0, 0, half.Z).RotateY(tr.Yaw - enemy.RotationOffset))
	hx, hy := proj.WorldToScreen(head)
	vector.DrawFilledCircle(screen, float32(hx), float32(hy), float32(proj.Length(half.X*0.5)), config.ColorBackground, true)
}

func (s *RenderSystem) drawWeapon(screen *ebiten.Image, proj utils.Projection, id ecs.EntityID, tr *components.TransformComponent, clr color.RGBA) {
	w, _ := ecs.GetComponent[*components.WeaponComponent](s.entityManager, id)
	center := tr.Position.Add(utils.V3(0, 0, w.Length/2).RotateY(tr.Yaw))
	s.fillQuad(screen, proj, quad(center, utils.V3(w.Width/2, 0, w.Length/2), tr.Yaw), clr, 1)
}

// quad 返回旋转矩形在地面上的四个角，
// 从局部 -X,-Z 角开始，在屏幕上顺时针排列。
func quad(center, half utils.Vec3, yaw float64) [4]utils.Vec3 {
	local := [4]utils.Vec3{
		{X: -half.X, Z: -half.Z},
		{X: half.X, Z: -half.Z},
		{X: half.X, Z: half.Z},
		{X: -half.X, Z: half.Z},
	}
	var out [4]utils.Vec3
	for i, c := range local {
		out[i] = center.Add(c.RotateY(yaw))
	}
	return out
}

func (s *RenderSystem) white() *ebiten.Image {
	if s.whiteImage == nil {
		s.whiteImage = ebiten.NewImage(1, 1)
		s.whiteImage.Fill(color.White)
	}
	return s.whiteImage
}

func (s *RenderSystem) fillQuad(screen *ebiten.Image, proj utils.Projection, corners [4]utils.Vec3, clr color.RGBA, alpha float64) {
	var path vector.Path
	for i, c := range corners {
		x, y := proj.WorldToScreen(c)
		if i == 0 {
			path.MoveTo(float32(x), float32(y))
		} else {
			path.LineTo(float32(x), float32(y))
		}
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		s.vertices[i].SrcX = 0
		s.vertices[i].SrcY = 0
		s.vertices[i].ColorR = float32(clr.R) / 255
		s.vertices[i].ColorG = float32(clr.G) / 255
		s.vertices[i].ColorB = float32(clr.B) / 255
		s.vertices[i].ColorA = float32(clr.A) / 255 * float32(alpha)
	}
	screen.DrawTriangles(s.vertices, s.indices, s.white(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *RenderSystem) drawImageQuad(screen *ebiten.Image, proj utils.Projection, corners [4]utils.Vec3, img *ebiten.Image, alpha float64) {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	src := [4][2]float32{{0, 0}, {w, 0}, {w, h}, {0, h}}

	vs := s.vertices[:0]
	for i, c := range corners {
		x, y := proj.WorldToScreen(c)
		vs = append(vs, ebiten.Vertex{
			DstX:   float32(x),
			DstY:   float32(y),
			SrcX:   float32(b.Min.X) + src[i][0],
			SrcY:   float32(b.Min.Y) + src[i][1],
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: float32(alpha),
		})
	}
	s.vertices = vs
	s.indices = append(s.indices[:0], 0, 1, 2, 0, 2, 3)
	screen.DrawTriangles(s.vertices, s.indices, img, &ebiten.DrawTrianglesOptions{
		Filter: ebiten.FilterLinear,
	})
}
