package gfont

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBundledFont(t *testing.T) {
	t.Parallel()
	f, err := LoadFonts("")
	if err != nil {
		t.Fatal(err)
	}
	if f.Status == nil || f.Debug == nil {
		t.Fatalf("faces missing: %+v", f)
	}
	if f.Status.Metrics().Height <= f.Debug.Metrics().Height {
		t.Errorf("status face not larger than debug face")
	}
}

func TestLoadFontErrors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if _, err := LoadFonts(filepath.Join(dir, "none.ttf")); err == nil {
		t.Errorf("missing font accepted")
	}
	junk := filepath.Join(dir, "junk.ttf")
	if err := os.WriteFile(junk, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFonts(junk); err == nil {
		t.Errorf("junk font accepted")
	}
}
