package config

import (
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/bananacat/portfolio/pkg/embedded"
	"github.com/bananacat/portfolio/pkg/utils"
	"gopkg.in/yaml.v3"
)

// DefaultExperienceConfigPath 嵌入的体验配置路径
const DefaultExperienceConfigPath = "data/experience.yaml"

// Point 世界坐标，YAML 中写作三元素列表
type Point [3]float64

// Vec3 转换为 utils.Vec3
func (p Point) Vec3() utils.Vec3 {
	return utils.V3(p[0], p[1], p[2])
}

// HotspotAction 在按钮上按下交互键时执行的动作
type HotspotAction string

const (
	// ActionOpenURL 在系统浏览器中打开 Target
	ActionOpenURL HotspotAction = "open_url"
	// ActionOpenMail 打开收件人为 Target 的邮件编辑窗口
	ActionOpenMail HotspotAction = "open_mail"
	// ActionSurvival 开始生存小游戏
	ActionSurvival HotspotAction = "survival"
)

// ExperienceConfig 整个可行走场景的调参配置
type ExperienceConfig struct {
	Frame     FrameConfig     `yaml:"frame"`
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
	Light     LightConfig     `yaml:"light"`
	Scenery   SceneryConfig   `yaml:"scenery"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Enemies   EnemiesConfig   `yaml:"enemies"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Hotspots  HotspotsConfig  `yaml:"hotspots"`
	Audio     AudioConfig     `yaml:"audio"`
}

// FrameConfig 限制每帧的时间增量
type FrameConfig struct {
	MaxDeltaTime float64 `yaml:"maxDeltaTime"` // 秒；更长的帧会被截断
}

// CharacterConfig 玩家角色配置
type CharacterConfig struct {
	Spawn       Point   `yaml:"spawn"`
	SpawnYawPi  float64 `yaml:"spawnYawPi"` // 初始朝向，π 的倍数
	MoveSpeed   float64 `yaml:"moveSpeed"`  // 单位/秒
	MaxHealth   float64 `yaml:"maxHealth"`
	HalfExtents Point   `yaml:"halfExtents"` // 碰撞盒半尺寸
	BoundsLift  float64 `yaml:"boundsLift"`  // 碰撞盒中心距脚底的高度
}

// CameraConfig 跟随镜头及其缩放范围
type CameraConfig struct {
	Offset            Point   `yaml:"offset"`
	MinDistance       float64 `yaml:"minDistance"`
	MaxDistance       float64 `yaml:"maxDistance"`
	ZoomSpeed         float64 `yaml:"zoomSpeed"`
	PixelsPerUnit     float64 `yaml:"pixelsPerUnit"`     // ReferenceDistance 处的缩放比例
	ReferenceDistance float64 `yaml:"referenceDistance"` // PixelsPerUnit 对应的镜头距离
	SurvivalZoomRate  float64 `yaml:"survivalZoomRate"`  // 生存过渡期间最小距离每秒增加量
}

// LightConfig 跟随角色的平行光
type LightConfig struct {
	Offset       Point   `yaml:"offset"`
	Intensity    float64 `yaml:"intensity"`
	MaxIntensity float64 `yaml:"maxIntensity"`
	RampRate     float64 `yaml:"rampRate"` // 生存过渡期间每秒增加的强度
}

// SinkConfig 过渡时下沉的场景物体。
// StartY 只用于菜单平面；作品集模型从其位置高度开始下沉。
type SinkConfig struct {
	StartY    float64 `yaml:"startY,omitempty"`
	LowerRate float64 `yaml:"lowerRate"` // 单位/秒
	Threshold float64 `yaml:"threshold"` // Y 越过该值时过渡结束
}

// SceneryConfig 平面和作品集模型
type SceneryConfig struct {
	MenuPlane SinkConfig     `yaml:"menuPlane"`
	Portfolio PortfolioModel `yaml:"portfolio"`
}

// PortfolioModel 可行走的作品集模型
type PortfolioModel struct {
	Position Point      `yaml:"position"`
	Size     [2]float64 `yaml:"size"` // 占地宽度(X)和深度(Z)
	YawPi    float64    `yaml:"yawPi"`
	Image    string     `yaml:"image,omitempty"` // 资源图片ID
	Sink     SinkConfig `yaml:"sink"`
}

// WeaponConfig 旋转的武士刀
type WeaponConfig struct {
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	SpinRate float64 `yaml:"spinRate"` // 弧度/秒
}

// SpeciesConfig 一种敌人
type SpeciesConfig struct {
	Name             string  `yaml:"name"`
	RotationOffsetPi float64 `yaml:"rotationOffsetPi"` // 朝向修正，π 的倍数
	HalfExtents      Point   `yaml:"halfExtents"`
}

// EnemiesConfig 敌人生命值和伤害
type EnemiesConfig struct {
	Health        float64         `yaml:"health"`
	WeaponDamage  float64         `yaml:"weaponDamage"`  // 接触武器时每帧损失的生命值
	ContactDamage float64         `yaml:"contactDamage"` // 接触角色时每帧损失的生命值
	PlayerDamage  float64         `yaml:"playerDamage"`  // 每帧接触时角色损失的生命值
	Species       []SpeciesConfig `yaml:"species"`
}

// SpawnerConfig 生存刷怪器及其计时器
type SpawnerConfig struct {
	Capacity int     `yaml:"capacity"`
	MinRange float64 `yaml:"minRange"`
	MaxRange float64 `yaml:"maxRange"`
	Speed    float64 `yaml:"speed"`    // 敌人移动速度，单位/秒
	Height   float64 `yaml:"height"`   // 生成高度
	Interval float64 `yaml:"interval"` // 两次触发的间隔秒数
	Burst    int     `yaml:"burst"`    // 每次触发生成的敌人数
}

// HotspotConfig 单个交互按钮
type HotspotConfig struct {
	Name     string        `yaml:"name"`
	Action   HotspotAction `yaml:"action"`
	Target   string        `yaml:"target"` // URL 或邮箱地址
	Subject  string        `yaml:"subject,omitempty"`
	Body     string        `yaml:"body,omitempty"`
	Position Point         `yaml:"position"`
	Scale    float64       `yaml:"scale,omitempty"`
	Image    string        `yaml:"image,omitempty"` // 资源图片ID
	// OnPortfolio 的按钮随作品集模型一起下沉
	OnPortfolio bool `yaml:"onPortfolio"`
}

// HotspotsConfig 按钮的共享参数和按钮列表
type HotspotsConfig struct {
	RestOffset   float64         `yaml:"restOffset"`
	RaisedOffset float64         `yaml:"raisedOffset"`
	HalfExtents  Point           `yaml:"halfExtents"`
	Buttons      []HotspotConfig `yaml:"buttons"`
}

// AudioTrack 资源音频ID及其播放音量
type AudioTrack struct {
	ID     string  `yaml:"id"`
	Volume float64 `yaml:"volume"`
}

// AudioConfig 体验中的三段音频
type AudioConfig struct {
	Ambient  AudioTrack `yaml:"ambient"`
	Survival AudioTrack `yaml:"survival"`
	Lose     AudioTrack `yaml:"lose"`
}

// LoadExperienceConfig 读取、解析并校验体验配置。
// data/ 下的路径从嵌入 FS 读取，其他路径从磁盘读取。
func LoadExperienceConfig(path string) (*ExperienceConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experience config %s: %w", path, err)
	}

	cfg, err := ParseExperienceConfig(data)
	if err != nil {
		return nil, fmt.Errorf("experience config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseExperienceConfig 解析并校验 YAML 数据
func ParseExperienceConfig(data []byte) (*ExperienceConfig, error) {
	var cfg ExperienceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Validate 检查取值范围和字段间约束
func (c *ExperienceConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Frame.MaxDeltaTime > 0, "frame.maxDeltaTime must be positive, got %v", c.Frame.MaxDeltaTime)

	check(c.Character.MoveSpeed > 0, "character.moveSpeed must be positive, got %v", c.Character.MoveSpeed)
	check(c.Character.MaxHealth > 0, "character.maxHealth must be positive, got %v", c.Character.MaxHealth)
	check(positiveExtents(c.Character.HalfExtents), "character.halfExtents must be positive, got %v", c.Character.HalfExtents)

	check(c.Camera.MinDistance > 0, "camera.minDistance must be positive, got %v", c.Camera.MinDistance)
	check(c.Camera.MinDistance <= c.Camera.MaxDistance,
		"camera.minDistance (%v) must not exceed camera.maxDistance (%v)", c.Camera.MinDistance, c.Camera.MaxDistance)
	check(c.Camera.PixelsPerUnit > 0, "camera.pixelsPerUnit must be positive, got %v", c.Camera.PixelsPerUnit)
	check(c.Camera.ReferenceDistance > 0, "camera.referenceDistance must be positive, got %v", c.Camera.ReferenceDistance)
	check(c.Camera.SurvivalZoomRate >= 0, "camera.survivalZoomRate cannot be negative, got %v", c.Camera.SurvivalZoomRate)

	check(c.Light.Intensity >= 0, "light.intensity cannot be negative, got %v", c.Light.Intensity)
	check(c.Light.MaxIntensity >= c.Light.Intensity,
		"light.maxIntensity (%v) must be at least light.intensity (%v)", c.Light.MaxIntensity, c.Light.Intensity)

	check(validSink(c.Scenery.MenuPlane, c.Scenery.MenuPlane.StartY),
		"scenery.menuPlane needs a positive lowerRate and a threshold below startY")
	check(validSink(c.Scenery.Portfolio.Sink, c.Scenery.Portfolio.Position[1]),
		"scenery.portfolio.sink needs a positive lowerRate and a threshold below the model height")

	check(c.Weapon.Length > 0 && c.Weapon.Width > 0, "weapon length and width must be positive")

	check(c.Enemies.Health > 0, "enemies.health must be positive, got %v", c.Enemies.Health)
	check(c.Enemies.WeaponDamage > 0, "enemies.weaponDamage must be positive, got %v", c.Enemies.WeaponDamage)
	check(c.Enemies.ContactDamage >= 0, "enemies.contactDamage cannot be negative, got %v", c.Enemies.ContactDamage)
	check(c.Enemies.PlayerDamage >= 0, "enemies.playerDamage cannot be negative, got %v", c.Enemies.PlayerDamage)
	check(len(c.Enemies.Species) > 0, "at least one enemy species is required")
	seen := make(map[string]bool)
	for i, s := range c.Enemies.Species {
		check(s.Name != "", "enemies.species[%d]: name is required", i)
		check(!seen[s.Name], "enemies.species[%d]: duplicate name %q", i, s.Name)
		check(positiveExtents(s.HalfExtents), "enemies.species[%d] (%s): halfExtents must be positive", i, s.Name)
		seen[s.Name] = true
	}

	check(c.Spawner.Capacity > 0, "spawner.capacity must be positive, got %d", c.Spawner.Capacity)
	check(c.Spawner.MinRange >= 0 && c.Spawner.MinRange <= c.Spawner.MaxRange,
		"spawner range [%v, %v] is invalid", c.Spawner.MinRange, c.Spawner.MaxRange)
	check(c.Spawner.Speed > 0, "spawner.speed must be positive, got %v", c.Spawner.Speed)
	check(c.Spawner.Interval > 0, "spawner.interval must be positive, got %v", c.Spawner.Interval)
	check(c.Spawner.Burst >= 1, "spawner.burst must be at least 1, got %d", c.Spawner.Burst)

	check(positiveExtents(c.Hotspots.HalfExtents), "hotspots.halfExtents must be positive")
	names := make(map[string]bool)
	for i, b := range c.Hotspots.Buttons {
		check(b.Name != "", "hotspots.buttons[%d]: name is required", i)
		check(!names[b.Name], "hotspots.buttons[%d]: duplicate name %q", i, b.Name)
		names[b.Name] = true
		if err := validateAction(b); err != nil {
			errs = append(errs, fmt.Errorf("hotspots.buttons[%d] (%s): %w", i, b.Name, err))
		}
	}

	for name, track := range map[string]AudioTrack{
		"ambient": c.Audio.Ambient, "survival": c.Audio.Survival, "lose": c.Audio.Lose,
	} {
		check(track.ID != "", "audio.%s.id is required", name)
		check(track.Volume >= 0 && track.Volume <= 1, "audio.%s.volume must be within [0, 1], got %v", name, track.Volume)
	}

	return errors.Join(errs...)
}

func validateAction(b HotspotConfig) error {
	switch b.Action {
	case ActionOpenURL:
		u, err := url.Parse(b.Target)
		if err != nil {
			return fmt.Errorf("target %q: %w", b.Target, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("target %q must be an http(s) URL", b.Target)
		}
	case ActionOpenMail:
		if b.Target == "" {
			return errors.New("mail target address is required")
		}
	case ActionSurvival:
	default:
		return fmt.Errorf("unknown action %q", b.Action)
	}
	return nil
}

func positiveExtents(p Point) bool {
	return p[0] > 0 && p[1] > 0 && p[2] > 0
}

func validSink(s SinkConfig, startY float64) bool {
	return s.LowerRate > 0 && s.Threshold < startY
}

// SpawnYaw 返回角色初始朝向(弧度)
func (c CharacterConfig) SpawnYaw() float64 {
	return c.SpawnYawPi * math.Pi
}

// RotationOffset 返回种类的朝向修正(弧度)
func (s SpeciesConfig) RotationOffset() float64 {
	return s.RotationOffsetPi * math.Pi
}

// SpeciesByName 按名称查找敌人种类
func (c EnemiesConfig) SpeciesByName(name string) (SpeciesConfig, bool) {
	for _, s := range c.Species {
		if s.Name == name {
			return s, true
		}
	}
	return SpeciesConfig{}, false
}

// Yaw 返回模型绕 Y 轴的旋转(弧度)
func (m PortfolioModel) Yaw() float64 {
	return m.YawPi * math.Pi
}
