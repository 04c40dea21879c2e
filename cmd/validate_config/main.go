// validate_config checks the experience YAML and the asset manifest
// before a release: both files parse and validate, every image and audio
// ID the experience names is in the manifest, and every manifest path
// exists under the asset root.
//
// Usage:
//
//	go run ./cmd/validate_config [-root .] [-config data/experience.yaml] [-assets dir]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bananacat/portfolio/pkg/config"
	"github.com/bananacat/portfolio/pkg/embedded"
	"github.com/bananacat/portfolio/pkg/game"
	"gopkg.in/yaml.v3"
)

func main() {
	root := flag.String("root", ".", "repository root holding data/")
	configPath := flag.String("config", config.DefaultExperienceConfigPath, "experience YAML")
	manifestPath := flag.String("manifest", game.DefaultResourceConfigPath, "asset manifest YAML")
	assetsDir := flag.String("assets", "", "asset root (defaults to the manifest's base_path under -root)")
	flag.Parse()

	embedded.Init(os.DirFS(*root))

	for _, path := range []string{*configPath, *manifestPath} {
		if !embedded.Exists(path) {
			fmt.Printf("❌ %s not found under %s\n", path, *root)
			os.Exit(1)
		}
	}

	experience, err := config.LoadExperienceConfig(*configPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ %s is valid (%d hotspots, %d enemy species)\n", *configPath, len(experience.Hotspots.Buttons), len(experience.Enemies.Species))

	data, err := embedded.ReadFile(*manifestPath)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	var manifest game.ResourceConfig
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		fmt.Printf("❌ %s: YAML parse failed: %v\n", *manifestPath, err)
		os.Exit(1)
	}

	ids := make(map[string]bool)
	base := *assetsDir
	if base == "" {
		base = filepath.Join(*root, manifest.BasePath)
	}

	missingRequired := 0
	checkFile := func(id, rel string, optional bool) {
		ids[id] = true
		if _, err := os.Stat(filepath.Join(base, rel)); err == nil {
			return
		}
		if optional {
			fmt.Printf("⚠️  %s: optional file %s is missing\n", id, rel)
			return
		}
		fmt.Printf("❌ %s: required file %s is missing\n", id, rel)
		missingRequired++
	}
	for _, name := range manifest.GroupNames() {
		group := manifest.Groups[name]
		for _, img := range group.Images {
			checkFile(img.ID, img.Path, img.Optional)
		}
		for _, snd := range group.Sounds {
			checkFile(snd.ID, snd.Path, snd.Optional)
		}
	}
	fmt.Printf("✅ %s lists %d assets\n", *manifestPath, len(ids))

	unknown := unknownReferences(experience, ids)
	for _, ref := range unknown {
		fmt.Printf("❌ %s\n", ref)
	}

	if missingRequired > 0 || len(unknown) > 0 {
		os.Exit(1)
	}
	fmt.Println("✅ all references resolve")
}

// unknownReferences lists experience IDs the manifest does not define.
func unknownReferences(exp *config.ExperienceConfig, ids map[string]bool) []string {
	refs := map[string]string{
		"audio.ambient":  exp.Audio.Ambient.ID,
		"audio.survival": exp.Audio.Survival.ID,
		"audio.lose":     exp.Audio.Lose.ID,
	}
	if exp.Scenery.Portfolio.Image != "" {
		refs["scenery.portfolio.image"] = exp.Scenery.Portfolio.Image
	}
	for _, b := range exp.Hotspots.Buttons {
		if b.Image != "" {
			refs["hotspots."+b.Name+".image"] = b.Image
		}
	}

	var out []string
	for field, id := range refs {
		if !ids[id] {
			out = append(out, fmt.Sprintf("%s references unknown asset %q", field, id))
		}
	}
	sort.Strings(out)
	return out
}
