package gconf

import (
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile = "candyboard.json"

type Config struct {
	Theme      string `json:"theme"`        // light/dark
	WindowW    int    `json:"window_w"`     //
	WindowH    int    `json:"window_h"`     //
	AssetsDir  string `json:"assets_dir"`   // directory with wK.png ... bP.png
	Font       string `json:"font"`         // ttf file, empty for the bundled face
	OnGameOver string `json:"on_game_over"` // restart/freeze/callback
	FEN        string `json:"fen"`          // start position, empty for classic
	Debug      bool   `json:"debug"`        // true/false
}

func defaultConfig() Config {
	return Config{
		Theme:      "light",
		WindowW:    1000,
		WindowH:    800,
		AssetsDir:  "assets/pieces",
		Font:       "",
		OnGameOver: "restart",
		FEN:        "",
		Debug:      false,
	}
}

// NewGUIConfig reads file, or returns defaults when it does not exist.
func NewGUIConfig(file string) (*Config, error) {
	_, err := os.Stat(file)
	if os.IsNotExist(err) {
		def := defaultConfig()
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Save(file string) error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, jsonData, 0644)
}

// SaveWindowSize stores only the window size into file. Anything else the
// caller changed in memory, command line overrides included, stays out.
func SaveWindowSize(file string, w, h int) error {
	c, err := NewGUIConfig(file)
	if err != nil {
		return err
	}
	c.WindowW, c.WindowH = w, h
	correctableConfig(c)
	return c.Save(file)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	switch c.OnGameOver {
	case "restart", "freeze", "callback":
	default:
		c.OnGameOver = def.OnGameOver
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	// the board needs some room; below that fall back to the default window
	if c.WindowH < 240 || c.WindowW < c.WindowH {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
