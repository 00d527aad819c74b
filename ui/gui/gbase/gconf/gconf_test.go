package gconf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestMissingFileGivesDefaults(t *testing.T) {
	t.Parallel()
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "none.json"))
	if err != nil {
		t.Fatal(err)
	}
	if *c != defaultConfig() {
		t.Errorf("config = %+v, want defaults", *c)
	}
}

func TestCorrectableConfig(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body string
		want Config
	}{
		{
			name: "valid",
			body: `{"theme":"dark","window_w":1200,"window_h":900,"assets_dir":"png","on_game_over":"freeze","fen":"8/8/8/8/8/8/k7/7K w - - 0 1"}`,
			want: Config{Theme: "dark", WindowW: 1200, WindowH: 900, AssetsDir: "png", OnGameOver: "freeze", FEN: "8/8/8/8/8/8/k7/7K w - - 0 1"},
		},
		{
			name: "bad values",
			body: `{"theme":"pink","window_w":100,"window_h":900,"on_game_over":"explode","debug":true}`,
			want: Config{Theme: "light", WindowW: 1000, WindowH: 800, AssetsDir: "assets/pieces", OnGameOver: "restart", Debug: true},
		},
		{
			name: "partial",
			body: `{"on_game_over":"callback"}`,
			want: Config{Theme: "light", WindowW: 1000, WindowH: 800, AssetsDir: "assets/pieces", OnGameOver: "callback"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := filepath.Join(t.TempDir(), DefaultFile)
			if err := os.WriteFile(file, []byte(tt.body), 0644); err != nil {
				t.Fatal(err)
			}
			c, err := NewGUIConfig(file)
			if err != nil {
				t.Fatal(err)
			}
			if *c != tt.want {
				t.Errorf("config = %+v, want %+v", *c, tt.want)
			}
		})
	}
}

func TestBrokenJSON(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Fatal("broken config accepted")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), DefaultFile)
	c := defaultConfig()
	c.Theme = "dark"
	c.OnGameOver = "freeze"
	if err := c.Save(file); err != nil {
		t.Fatal(err)
	}
	got, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if *got != c {
		t.Errorf("reloaded %+v, saved %+v", *got, c)
	}
}

func TestSaveWindowSizeKeepsOverridesOut(t *testing.T) {
	t.Parallel()
	const fen = "8/8/8/4k3/8/8/4P3/4K3 w - - 0 1"
	file := filepath.Join(t.TempDir(), DefaultFile)

	onDisk := defaultConfig()
	onDisk.Theme = "dark"
	if err := onDisk.Save(file); err != nil {
		t.Fatal(err)
	}

	// one-off run with flags laid over the loaded config
	run, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	run.FEN = fen
	run.OnGameOver = "freeze"
	run.Theme = "light"

	if err := SaveWindowSize(file, 1200, 900); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), fen) {
		t.Fatalf("start position leaked into the file:\n%s", raw)
	}

	got, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	want := onDisk
	want.WindowW, want.WindowH = 1200, 900
	if *got != want {
		t.Errorf("config = %+v, want %+v", *got, want)
	}
}

func TestSaveWindowSizeWithoutFile(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), DefaultFile)
	if err := SaveWindowSize(file, 100, 50); err != nil {
		t.Fatal(err)
	}
	got, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	// too small, corrected back to the default window
	if *got != defaultConfig() {
		t.Errorf("config = %+v, want defaults", *got)
	}
}
