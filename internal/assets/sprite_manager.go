package assets

import (
	"image"
	"image/color"
	"log/slog"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSpriteID is the sprite looked up for the player avatar.
const PlayerSpriteID = "player"

// SpriteManager загружает и кэширует спрайты. Спрайт, который не удалось
// загрузить, заменяется нарисованным кругом.
type SpriteManager struct {
	dir     string
	logger  *slog.Logger
	sprites map[string]*ebiten.Image
	loaded  map[string]bool
}

// NewSpriteManager creates a manager reading PNG files from dir.
func NewSpriteManager(dir string, logger *slog.Logger) *SpriteManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SpriteManager{
		dir:     dir,
		logger:  logger,
		sprites: make(map[string]*ebiten.Image),
		loaded:  make(map[string]bool),
	}
}

// Load reads <dir>/<id>.png and scales it to size x size. On failure the
// sprite falls back to a filled circle of the given color. Reports whether
// the file was used.
func (m *SpriteManager) Load(id string, size int, fallback color.Color) bool {
	if _, ok := m.sprites[id]; ok {
		return m.loaded[id]
	}

	img, err := LoadScaled(filepath.Join(m.dir, id+".png"), size)
	if err != nil {
		m.logger.Warn("sprite not loaded, using fallback", "id", id, "err", err)
		m.sprites[id] = ebiten.NewImageFromImage(CircleSprite(size, fallback))
		m.loaded[id] = false
		return false
	}

	m.sprites[id] = ebiten.NewImageFromImage(img)
	m.loaded[id] = true
	m.logger.Info("sprite loaded", "id", id, "size", size)
	return true
}

// Get returns a previously loaded sprite.
func (m *SpriteManager) Get(id string) (*ebiten.Image, bool) {
	img, ok := m.sprites[id]
	return img, ok
}

// Cleanup drops every cached sprite.
func (m *SpriteManager) Cleanup() {
	for id, img := range m.sprites {
		img.Deallocate()
		delete(m.sprites, id)
	}
	m.loaded = make(map[string]bool)
}

// LoadScaled opens an image file and resizes it to size x size.
func LoadScaled(path string, size int) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return imaging.Resize(img, size, size, imaging.Lanczos), nil
}

// CircleSprite draws a filled circle that fills a size x size image.
func CircleSprite(size int, c color.Color) image.Image {
	dc := gg.NewContext(size, size)
	r := float64(size) / 2
	dc.DrawCircle(r, r, r)
	dc.SetColor(c)
	dc.Fill()
	return dc.Image()
}
