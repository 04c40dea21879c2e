package main

import (
	"flag"
	"log"
	"os"

	"github.com/bananacat/portfolio/pkg/app"
	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable log output")
	configPath := flag.String("config", config.DefaultExperienceConfigPath, "experience YAML (paths outside data/ are read from disk)")
	assetsDir := flag.String("assets", "", "asset root directory (overrides the manifest)")
	seed := flag.Uint64("seed", 0, "random seed for enemy spawns (0 = random)")
	skipLoading := flag.Bool("skip-loading", false, "load everything up front and skip the loading screen")
	flag.Parse()

	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:     *verbose,
		ConfigPath:  *configPath,
		AssetsDir:   *assetsDir,
		Seed:        *seed,
		SkipLoading: *skipLoading,
	})
	if err != nil {
		// NewApp silences the logger unless -verbose.
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
