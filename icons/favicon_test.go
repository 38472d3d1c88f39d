package icons

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	ico "github.com/sergeymakinen/go-ico"
)

func TestGenerateWebIcons(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "app_logo.png")
	output := filepath.Join(tmpDir, "site")
	writeTestPNG(t, source, 256, 256)

	cfg := testConfig(source, output)
	cfg.Icons.FaviconSizes = []int{16, 32, 48}
	cfg.Icons.AppleTouchSizes = []int{180}
	cfg.Icons.WebIconSizes = []int{192, 512}

	result, err := New(cfg).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// 5 launcher + 3 favicon + 1 apple + 2 web + favicon.ico
	if len(result.Written) != 12 {
		t.Fatalf("Expected 12 written files, got %d", len(result.Written))
	}

	checks := []struct {
		stem string
		size int
	}{
		{"favicon", 16},
		{"favicon", 32},
		{"favicon", 48},
		{"apple-touch-icon", 180},
		{"web-icon", 192},
		{"web-icon", 512},
	}
	for _, c := range checks {
		path := filepath.Join(output, fmt.Sprintf("%s-%dx%d.png", c.stem, c.size, c.size))
		img := decodePNG(t, path)
		if img.Bounds().Dx() != c.size || img.Bounds().Dy() != c.size {
			t.Errorf("%s: expected %dx%d, got %dx%d", path, c.size, c.size, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}

	f, err := os.Open(filepath.Join(output, "favicon.ico"))
	if err != nil {
		t.Fatalf("Failed to open favicon.ico: %v", err)
	}
	defer f.Close()

	images, err := ico.DecodeAll(f)
	if err != nil {
		t.Fatalf("Failed to decode favicon.ico: %v", err)
	}
	if len(images) != 3 {
		t.Errorf("Expected 3 images in favicon.ico, got %d", len(images))
	}
}

func TestGenerateWebIconsSkippedByDefault(t *testing.T) {
	tmpDir := t.TempDir()
	source := filepath.Join(tmpDir, "app_logo.png")
	output := filepath.Join(tmpDir, "res")
	writeTestPNG(t, source, 64, 64)

	result, err := New(testConfig(source, output)).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if len(result.Written) != 5 {
		t.Errorf("Expected only the 5 launcher icons, got %d files", len(result.Written))
	}
	if _, err := os.Stat(filepath.Join(output, "favicon.ico")); !os.IsNotExist(err) {
		t.Error("Unexpected favicon.ico with empty size lists")
	}
}
