package game

import (
	"path"
	"slices"
)

// ResourceConfig is the asset manifest loaded from data/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	groups:
//	  experience:
//	    images: [...]
//	    sounds: [...]
type ResourceConfig struct {
	Version  string                   `yaml:"version"`
	BasePath string                   `yaml:"base_path"`
	Groups   map[string]ResourceGroup `yaml:"groups"`
}

// ResourceGroup is a set of assets loaded together.
type ResourceGroup struct {
	Images []ImageResource `yaml:"images"`
	Sounds []SoundResource `yaml:"sounds"`
}

// ImageResource is one image entry.
//
//   - id: IMAGE_PORTFOLIO
//     path: images/2024-Portfolio.png
//     optional: true
type ImageResource struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path"`               // relative to base_path; ".png" is assumed without an extension
	Optional bool   `yaml:"optional,omitempty"` // a failed optional entry is skipped, not fatal
}

// SoundResource is one audio entry. Looping sounds are music tracks.
//
//   - id: SOUND_BGM
//     path: sounds/BGM.ogg
//     loop: true
type SoundResource struct {
	ID       string `yaml:"id"`
	Path     string `yaml:"path"` // relative to base_path; ".ogg" is assumed without an extension
	Loop     bool   `yaml:"loop,omitempty"`
	Optional bool   `yaml:"optional,omitempty"`
}

// GroupNames returns the group names in a stable order.
func (c *ResourceConfig) GroupNames() []string {
	names := make([]string, 0, len(c.Groups))
	for name := range c.Groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// buildFullPath joins a resource path onto the base path.
func buildFullPath(basePath, relativePath string) string {
	if basePath == "" {
		return relativePath
	}
	return path.Join(basePath, relativePath)
}
