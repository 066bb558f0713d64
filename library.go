package sprig

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// TextureLibrary loads textures by path and hands out shared instances.
// Files with identical contents resolve to a single Texture2D, so a sprite
// sheet copied under two names still occupies one slot per batch.
//
// Not safe for concurrent use; LoadAll parallelises decoding internally.
type TextureLibrary struct {
	byName    map[string]*Texture2D
	byContent map[uint64]*Texture2D
}

// NewTextureLibrary creates an empty library.
func NewTextureLibrary() *TextureLibrary {
	return &TextureLibrary{
		byName:    make(map[string]*Texture2D),
		byContent: make(map[uint64]*Texture2D),
	}
}

// TextureName derives the lookup name for a path: the base name without extension.
func TextureName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads one file and registers it under TextureName(path).
func (l *TextureLibrary) Load(path string) (*Texture2D, error) {
	if t, ok := l.byName[TextureName(path)]; ok {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("sprig: load texture: %w", err)
	}
	sum := xxhash.Sum64(data)
	if t, ok := l.byContent[sum]; ok {
		l.byName[TextureName(path)] = t
		return t, nil
	}
	img, err := decodeImage(data)
	if err != nil {
		return nil, fmt.Errorf("sprig: load texture %s: %w", path, err)
	}
	return l.add(path, sum, img), nil
}

type decodedTexture struct {
	path string
	sum  uint64
	img  image.Image
}

// LoadAll decodes the given files concurrently and uploads them in path order
// on the calling goroutine. The first read or decode error cancels the rest.
func (l *TextureLibrary) LoadAll(ctx context.Context, paths []string) error {
	decoded := make([]decodedTexture, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		if _, ok := l.byName[TextureName(path)]; ok {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("sprig: load texture: %w", err)
			}
			img, err := decodeImage(data)
			if err != nil {
				return fmt.Errorf("sprig: load texture %s: %w", path, err)
			}
			decoded[i] = decodedTexture{path: path, sum: xxhash.Sum64(data), img: img}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, d := range decoded {
		if d.img == nil {
			continue
		}
		if t, ok := l.byContent[d.sum]; ok {
			l.byName[TextureName(d.path)] = t
			continue
		}
		l.add(d.path, d.sum, d.img)
	}
	return nil
}

func (l *TextureLibrary) add(path string, sum uint64, img image.Image) *Texture2D {
	t := NewTextureFromImage(img)
	t.path = path
	l.byName[TextureName(path)] = t
	l.byContent[sum] = t
	CoreLogger().Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", t.Width()),
		zap.Int("height", t.Height()),
		zap.Uint32("id", t.RendererID()))
	return t
}

// Get returns the texture registered under name.
func (l *TextureLibrary) Get(name string) (*Texture2D, bool) {
	t, ok := l.byName[name]
	return t, ok
}

// Len returns the number of distinct textures held.
func (l *TextureLibrary) Len() int {
	return len(l.byContent)
}

// Dispose releases every texture and empties the library.
func (l *TextureLibrary) Dispose() {
	for _, t := range l.byContent {
		t.Dispose()
	}
	clear(l.byName)
	clear(l.byContent)
}
