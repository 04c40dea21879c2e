package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bananacat/portfolio/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/yaml.v3"
)

// DefaultResourceConfigPath is the embedded asset manifest.
const DefaultResourceConfigPath = "data/resources.yaml"

// ErrNoAudioContext is returned when a sound is loaded without an audio context.
var ErrNoAudioContext = errors.New("audio context not available")

// manifestEntry is one queued asset of the manifest.
type manifestEntry struct {
	id       string
	path     string
	sound    bool
	loop     bool
	optional bool
}

// LoadProgress counts the settled manifest entries.
type LoadProgress struct {
	Loaded  int // entries that loaded
	Skipped int // optional entries that failed and were skipped
	Total   int // entries expected
}

// Done is the number of entries that no longer need work.
func (p LoadProgress) Done() int {
	return p.Loaded + p.Skipped
}

// Percent is the loading indicator value in [0, 100].
func (p LoadProgress) Percent() float64 {
	return ProgressPercent(p.Done(), p.Total)
}

// Complete reports whether every entry settled.
func (p LoadProgress) Complete() bool {
	return p.Done() >= p.Total
}

// ProgressPercent returns done/total as a percentage clamped to [0, 100].
// It is exactly 100 once done reaches total, and 100 for an empty manifest.
func ProgressPercent(done, total int) float64 {
	if total <= 0 || done >= total {
		return 100
	}
	if done <= 0 {
		return 0
	}
	return float64(done) / float64(total) * 100
}

// ResourceManager loads and caches the experience's assets.
//
// Assets are listed in a YAML manifest and loaded one entry per LoadNext
// call so the loading scene can draw progress between entries. Images and
// audio are read from disk below the manifest's base path; the manifest
// itself comes from the embedded data FS.
//
// Not safe for concurrent use; everything runs on the game loop.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> image
	audioCache    map[string]*audio.Player     // path -> player
	audioContext  *audio.Context               // nil disables audio
	fontSource    *text.GoTextFaceSource       // built-in Go Regular
	fontFaceCache map[float64]*text.GoTextFace // size -> face

	config      *ResourceConfig
	resourceMap map[string]string // resource ID -> file path
	basePath    string            // overrides config.BasePath when set

	queue    []manifestEntry
	progress LoadProgress
	loadErr  error
	skipped  []string
}

// NewResourceManager returns an empty manager. audioContext may be nil,
// in which case every sound fails to load (optional sounds are skipped).
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// LoadResourceConfig reads the manifest and builds the ID -> path map.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := embedded.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	var cfg ResourceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse resource config %s: %w", configPath, err)
	}

	seen := make(map[string]bool)
	for _, name := range cfg.GroupNames() {
		group := cfg.Groups[name]
		for _, img := range group.Images {
			if err := checkEntry(seen, name, img.ID, img.Path); err != nil {
				return fmt.Errorf("resource config %s: %w", configPath, err)
			}
		}
		for _, snd := range group.Sounds {
			if err := checkEntry(seen, name, snd.ID, snd.Path); err != nil {
				return fmt.Errorf("resource config %s: %w", configPath, err)
			}
		}
	}

	rm.config = &cfg
	rm.buildResourceMap()
	log.Printf("[ResourceManager] Loaded manifest %s: %d groups, %d entries", configPath, len(cfg.Groups), len(rm.resourceMap))
	return nil
}

func checkEntry(seen map[string]bool, group, id, path string) error {
	if id == "" || path == "" {
		return fmt.Errorf("group %s: every entry needs an id and a path", group)
	}
	if seen[id] {
		return fmt.Errorf("group %s: duplicate resource ID %s", group, id)
	}
	seen[id] = true
	return nil
}

// SetBasePath overrides the manifest's base path (the -assets flag).
func (rm *ResourceManager) SetBasePath(basePath string) {
	rm.basePath = basePath
	rm.buildResourceMap()
}

func (rm *ResourceManager) effectiveBasePath() string {
	if rm.basePath != "" {
		return rm.basePath
	}
	if rm.config != nil {
		return rm.config.BasePath
	}
	return ""
}

// buildResourceMap maps every resource ID to its full file path.
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}
	rm.resourceMap = make(map[string]string)
	base := rm.effectiveBasePath()
	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(base, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = fullPath
		}
		for _, snd := range group.Sounds {
			fullPath := buildFullPath(base, snd.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".ogg"
			}
			rm.resourceMap[snd.ID] = fullPath
		}
	}
}

// BeginLoading queues the entries of the named groups, or of every group
// when none is named, and resets the progress.
func (rm *ResourceManager) BeginLoading(groupNames ...string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	if len(groupNames) == 0 {
		groupNames = rm.config.GroupNames()
	}

	rm.queue = rm.queue[:0]
	rm.loadErr = nil
	rm.skipped = nil
	for _, name := range groupNames {
		group, exists := rm.config.Groups[name]
		if !exists {
			return fmt.Errorf("resource group not found: %s", name)
		}
		for _, img := range group.Images {
			rm.queue = append(rm.queue, manifestEntry{id: img.ID, path: rm.resourceMap[img.ID], optional: img.Optional})
		}
		for _, snd := range group.Sounds {
			rm.queue = append(rm.queue, manifestEntry{id: snd.ID, path: rm.resourceMap[snd.ID], sound: true, loop: snd.Loop, optional: snd.Optional})
		}
	}
	rm.progress = LoadProgress{Total: len(rm.queue)}
	log.Printf("[ResourceManager] Queued %d entries from %v", len(rm.queue), groupNames)
	return nil
}

// LoadNext loads one queued entry. It returns true once the queue is
// empty. A failing required entry stops loading: the error is returned
// now and by every later call.
func (rm *ResourceManager) LoadNext() (bool, error) {
	if rm.loadErr != nil {
		return false, rm.loadErr
	}
	if len(rm.queue) == 0 {
		return true, nil
	}

	entry := rm.queue[0]
	rm.queue = rm.queue[1:]

	var err error
	switch {
	case entry.sound && entry.loop:
		_, err = rm.LoadAudio(entry.path)
	case entry.sound:
		_, err = rm.LoadSoundEffect(entry.path)
	default:
		_, err = rm.LoadImage(entry.path)
	}

	switch {
	case err == nil:
		rm.progress.Loaded++
	case entry.optional:
		log.Printf("[ResourceManager] Warning: skipping optional %s: %v", entry.id, err)
		rm.progress.Skipped++
		rm.skipped = append(rm.skipped, entry.id)
	default:
		rm.loadErr = fmt.Errorf("failed to load %s: %w", entry.id, err)
		log.Printf("[ResourceManager] Error: %v", rm.loadErr)
		return false, rm.loadErr
	}
	return len(rm.queue) == 0, nil
}

// LoadAll drains the queue in one call.
func (rm *ResourceManager) LoadAll() error {
	for {
		done, err := rm.LoadNext()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Progress returns the current load counts.
func (rm *ResourceManager) Progress() LoadProgress {
	return rm.progress
}

// Skipped returns the IDs of optional entries that failed.
func (rm *ResourceManager) Skipped() []string {
	return rm.skipped
}

// LoadImage decodes an image file and caches it by path.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// GetImageByID returns a loaded image, or nil when the ID is unknown or
// its file was skipped.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.imageCache[filePath]
}

// LoadAudio loads a looping music track and caches its player by path.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, true)
}

// LoadSoundEffect loads a one-shot sound and caches its player by path.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	return rm.loadPlayer(path, false)
}

func (rm *ResourceManager) loadPlayer(path string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("%s: %w", path, ErrNoAudioContext)
	}

	// Read the whole file so the stream can seek without an open handle.
	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		decoded, err := mp3.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		stream = decoded
	case ".ogg":
		decoded, err := vorbis.DecodeWithoutResampling(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		stream = decoded
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg)", ext)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}
	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayerByID returns a loaded player, or nil.
func (rm *ResourceManager) GetAudioPlayerByID(resourceID string) *audio.Player {
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil
	}
	return rm.audioCache[filePath]
}

// Face returns the built-in Go Regular face at the given size.
func (rm *ResourceManager) Face(size float64) *text.GoTextFace {
	if face, exists := rm.fontFaceCache[size]; exists {
		return face
	}
	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Printf("[ResourceManager] Failed to create font source: %v", err)
			return nil
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}
