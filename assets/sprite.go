package assets

import (
	"fmt"
	"log"

	"github.com/automoto/unicorn-defense/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageLoader loads images from disk once and hands out the cached copy.
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache: make(map[string]*ebiten.Image),
	}
}

// Load returns the image at path, reading it from disk on first use.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", path, err)
	}

	l.cache[path] = img
	return img, nil
}

// Store caches img under path, replacing any previous entry.
func (l *ImageLoader) Store(path string, img *ebiten.Image) {
	l.cache[path] = img
}

// Unload releases the GPU memory behind path and forgets it.
func (l *ImageLoader) Unload(path string) {
	img, ok := l.cache[path]
	if !ok {
		return
	}
	img.Deallocate()
	delete(l.cache, path)
}

var (
	spriteLoader = NewImageLoader()
)

// LoadSprite returns the player sprite. A missing or unreadable file is
// logged and replaced by a drawn placeholder so the game stays playable.
func LoadSprite(path string) *ebiten.Image {
	img, err := spriteLoader.Load(path)
	if err == nil {
		return img
	}

	log.Printf("Warning: Could not load sprite, using placeholder: %v", err)
	img = placeholderSprite(int(config.Player.Width), int(config.Player.Height))
	spriteLoader.Store(path, img)
	return img
}

// UnloadSprite releases the sprite loaded from path.
func UnloadSprite(path string) {
	spriteLoader.Unload(path)
}

// placeholderSprite draws a white body with a pink horn pointing along +X,
// which is the direction the fist extends at rotation 0.
func placeholderSprite(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	fw, fh := float32(w), float32(h)

	vector.FillRect(img, fw*0.1, fh*0.3, fw*0.6, fh*0.45, config.White, true)
	vector.FillRect(img, fw*0.15, fh*0.75, fw*0.1, fh*0.25, config.White, true)
	vector.FillRect(img, fw*0.5, fh*0.75, fw*0.1, fh*0.25, config.White, true)
	vector.FillCircle(img, fw*0.72, fh*0.35, fh*0.2, config.White, true)
	vector.FillRect(img, fw*0.82, fh*0.28, fw*0.18, fh*0.08, config.Pink, true)
	vector.StrokeRect(img, 1, 1, fw-2, fh-2, 1, config.Gray, false)
	return img
}
