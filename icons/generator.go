package icons

import (
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"iconsmith/config"
)

// LauncherFilename is the fixed name every launcher icon is written under.
const LauncherFilename = "ic_launcher.png"

// Generator produces the configured icon sets from a single source image.
type Generator struct {
	cfg *config.Config
}

// New creates a generator for the given configuration.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

// Result lists the files written by a successful run, in write order.
type Result struct {
	Written []string
}

// Generate runs the full pipeline: load the source image, normalize it to an
// alpha-capable format, then resize and write every configured icon. It stops
// at the first failure; files written before the failure are left on disk.
func (g *Generator) Generate() (*Result, error) {
	if _, err := os.Stat(g.cfg.Source); err != nil {
		if os.IsNotExist(err) {
			return nil, &SourceNotFoundError{Path: g.cfg.Source}
		}
		return nil, &LoadError{Path: g.cfg.Source, Err: err}
	}

	src, err := imaging.Open(g.cfg.Source)
	if err != nil {
		return nil, &LoadError{Path: g.cfg.Source, Err: err}
	}
	log.Printf("Loaded source image: %s", g.cfg.Source)

	// Clone converts any decoded format to NRGBA, so sources without an
	// alpha channel (JPEG) come out fully opaque rather than undefined.
	norm := imaging.Clone(src)

	result := &Result{}

	for _, entry := range g.cfg.Icons.Launcher {
		dir := filepath.Join(g.cfg.Output, entry.Label)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &WriteError{Label: entry.Label, Err: err}
		}

		outPath := filepath.Join(dir, LauncherFilename)
		if err := g.writeResized(norm, entry.Size, outPath); err != nil {
			return nil, &WriteError{Label: entry.Label, Err: err}
		}

		log.Printf("Generated: %s (%dx%d)", outPath, entry.Size, entry.Size)
		result.Written = append(result.Written, outPath)
	}

	if err := g.generateWebIcons(norm, result); err != nil {
		return nil, err
	}

	return result, nil
}

// writeResized scales img to size×size with a Lanczos filter and writes it
// as PNG.
func (g *Generator) writeResized(img image.Image, size int, path string) error {
	resized := imaging.Resize(img, size, size, imaging.Lanczos)
	return g.writeFile(path, func(f *os.File) error {
		return imaging.Encode(f, resized, imaging.PNG)
	})
}
