// Package app 将资源管理器、音频、配置和场景组装成 ebiten.Game。
// main 只负责解析命令行参数并运行。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/game"
	"github.com/bananacat/portfolio/pkg/scenes"
	"github.com/bananacat/portfolio/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sampleRate 音频上下文采样率
const sampleRate = 48000

// Config 命令行选项
type Config struct {
	// Verbose 启用日志输出
	Verbose bool
	// ConfigPath 体验配置 YAML。data/ 下的路径从嵌入文件读取，
	// 其他路径从磁盘读取。
	ConfigPath string
	// AssetsDir 覆盖资源清单中的资源根目录
	AssetsDir string
	// Seed 使刷怪结果可复现，0 表示随机种子
	Seed uint64
	// SkipLoading 预先加载所有资源，
	// 跳过加载界面直接进入体验。
	SkipLoading bool
}

// App 实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	experience   *config.ExperienceConfig
	verbose      bool
	lastUpdate   time.Time

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp 加载配置和资源清单并显示第一个场景。
// 调用前必须先执行 embedded.Init。
func NewApp(cfg Config) (*App, error) {
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.DefaultExperienceConfigPath
	}
	experience, err := config.LoadExperienceConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load experience config: %w", err)
	}
	log.Printf("[App] Experience config loaded from %s", configPath)

	audioContext := audio.NewContext(sampleRate)
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(game.DefaultResourceConfigPath); err != nil {
		return nil, fmt.Errorf("failed to load resource manifest: %w", err)
	}
	if cfg.AssetsDir != "" {
		resourceManager.SetBasePath(cfg.AssetsDir)
	}
	if err := resourceManager.BeginLoading(); err != nil {
		return nil, fmt.Errorf("failed to queue assets: %w", err)
	}

	audioManager := game.NewAudioManager(resourceManager)
	links := game.NewBrowserOpener()
	log.Printf("[App] AudioManager initialized")

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func() game.Scene {
		scene := scenes.NewExperienceScene(scenes.ExperienceDeps{
			Config:    experience,
			Resources: resourceManager,
			Audio:     audioManager,
			Links:     links,
			Rand:      utils.NewRand(cfg.Seed),
			Restart:   func() { sceneManager.Reload() },
		})
		if err := scene.Start(); err != nil {
			log.Printf("[App] %v", err)
		}
		return scene
	})

	if cfg.SkipLoading {
		log.Printf("[App] Skipping the loading screen")
		if err := resourceManager.LoadAll(); err != nil {
			return nil, fmt.Errorf("failed to load assets: %w", err)
		}
		logSkipped(resourceManager)
		sceneManager.Reload()
	} else {
		sceneManager.SwitchTo(scenes.NewLoadingScene(resourceManager, func() {
			logSkipped(resourceManager)
			sceneManager.Reload()
		}))
	}

	return &App{
		sceneManager: sceneManager,
		experience:   experience,
		verbose:      cfg.Verbose,
	}, nil
}

func logSkipped(rm *game.ResourceManager) {
	if skipped := rm.Skipped(); len(skipped) > 0 {
		log.Printf("[App] %d optional assets missing: %v", len(skipped), skipped)
	}
}

// ClampDelta 限制测得的帧时间，
// 非正值回退为一个 tick。
func ClampDelta(dt, maxDelta float64) float64 {
	if dt <= 0 {
		return 1.0 / float64(ebiten.DefaultTPS)
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}

// Update 用限制后的实际帧时间推进当前场景
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// 窗口管理器需要几帧后尺寸才会生效
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	now := time.Now()
	dt := 0.0
	if !a.lastUpdate.IsZero() {
		dt = now.Sub(a.lastUpdate).Seconds()
	}
	a.lastUpdate = now

	a.sceneManager.Update(ClampDelta(dt, a.experience.Frame.MaxDeltaTime))
	return nil
}

// Draw 绘制当前场景
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 以黑边和线性过滤绘制逻辑屏幕
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回固定的逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 是否启用日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
