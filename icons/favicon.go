package icons

// Optional web icon sets, driven by the config size lists:
// favicon PNGs plus a multi-size favicon.ico, Apple touch icons, and
// generic web app icons. All land directly in the output root.

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	ico "github.com/sergeymakinen/go-ico"
)

func (g *Generator) generateWebIcons(src image.Image, result *Result) error {
	sets := []struct {
		stem  string
		sizes []int
	}{
		{"favicon", g.cfg.Icons.FaviconSizes},
		{"apple-touch-icon", g.cfg.Icons.AppleTouchSizes},
		{"web-icon", g.cfg.Icons.WebIconSizes},
	}

	total := 0
	for _, set := range sets {
		total += len(set.sizes)
	}
	if total == 0 {
		return nil
	}

	if err := os.MkdirAll(g.cfg.Output, 0755); err != nil {
		return &WriteError{Label: "web-icons", Err: err}
	}

	for _, set := range sets {
		for _, size := range set.sizes {
			path := filepath.Join(g.cfg.Output, fmt.Sprintf("%s-%dx%d.png", set.stem, size, size))
			if err := g.writeResized(src, size, path); err != nil {
				return &WriteError{Label: fmt.Sprintf("%s-%d", set.stem, size), Err: err}
			}
			log.Printf("Generated: %s (%dx%d)", path, size, size)
			result.Written = append(result.Written, path)
		}
	}

	if len(g.cfg.Icons.FaviconSizes) > 0 {
		if err := g.writeFaviconICO(src, result); err != nil {
			return err
		}
	}

	return nil
}

// writeFaviconICO bundles every configured favicon size into one favicon.ico.
func (g *Generator) writeFaviconICO(src image.Image, result *Result) error {
	path := filepath.Join(g.cfg.Output, "favicon.ico")

	images := make([]image.Image, 0, len(g.cfg.Icons.FaviconSizes))
	for _, size := range g.cfg.Icons.FaviconSizes {
		images = append(images, imaging.Resize(src, size, size, imaging.Lanczos))
	}

	if err := g.writeFile(path, func(f *os.File) error {
		return ico.EncodeAll(f, images)
	}); err != nil {
		return &WriteError{Label: "favicon.ico", Err: err}
	}

	log.Printf("Generated: %s (%d sizes)", path, len(images))
	result.Written = append(result.Written, path)
	return nil
}
