package ui

import (
	"candyboard/src/control"
	"candyboard/src/engine/nchess"
	"candyboard/src/logx"
	clic "candyboard/ui/cli"
	"candyboard/ui/gui"
	"candyboard/ui/gui/gbase/gconf"
	"candyboard/ui/term"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

const logfile string = "candyboard.log"

func GetLogger(w io.Writer, c *cli.Command, console bool) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		console,
	)
	l.InitLogger(w)
	return l
}

// withLog opens the log file for the duration of run.
func withLog(c *cli.Command, console bool, run func(l *logx.Logx) error) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("error open logfile: %w", err)
	}
	defer file.Close()
	l := GetLogger(file, c, console)
	defer l.Sync() //nolint:errcheck
	return run(l)
}

// loadConfig reads the config file and lays the command line flags over it.
// The result is for this run only and is never saved.
func loadConfig(c *cli.Command) (*gconf.Config, control.GameOverPolicy, error) {
	cfg, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return nil, 0, err
	}
	if c.IsSet("fen") {
		cfg.FEN = c.String("fen")
	}
	if c.IsSet("on-game-over") {
		cfg.OnGameOver = c.String("on-game-over")
	}
	if c.IsSet("theme") {
		cfg.Theme = c.String("theme")
	}
	policy, err := control.ParseGameOverPolicy(cfg.OnGameOver)
	if err != nil {
		return nil, 0, err
	}
	return cfg, policy, nil
}

func RunGUI(c *cli.Command) error {
	cfg, _, err := loadConfig(c)
	if err != nil {
		return err
	}
	return withLog(c, c.Bool("console"), func(l *logx.Logx) error {
		factory, err := nchess.NewFactory(cfg.FEN, l)
		if err != nil {
			return err
		}
		g, err := gui.NewGUI(cfg, factory, l)
		if err != nil {
			return err
		}
		if err := g.Run(); err != nil {
			return err
		}
		// flags are one-off, only the window size goes back to the file
		w, h := g.WindowSize()
		if err := gconf.SaveWindowSize(c.String("config"), w, h); err != nil {
			l.Warnf("error save config: %v", err)
		}
		return nil
	})
}

func RunTerm(c *cli.Command) error {
	cfg, policy, err := loadConfig(c)
	if err != nil {
		return err
	}
	// console logs would tear the terminal board apart
	return withLog(c, false, func(l *logx.Logx) error {
		factory, err := nchess.NewFactory(cfg.FEN, l)
		if err != nil {
			return err
		}
		t, err := term.NewTerm(factory, policy, term.ThemeFromString(cfg.Theme), l)
		if err != nil {
			return err
		}
		return t.Run()
	})
}

func RunReplay(c *cli.Command) error {
	cfg, policy, err := loadConfig(c)
	if err != nil {
		return err
	}
	var in io.Reader = os.Stdin
	if path := c.Args().First(); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	steps, err := clic.ParseScript(in)
	if err != nil {
		return err
	}
	clic.SetupColor(c.Bool("color"))
	return withLog(c, c.Bool("console"), func(l *logx.Logx) error {
		factory, err := nchess.NewFactory(cfg.FEN, l)
		if err != nil {
			return err
		}
		cl, err := clic.NewCLI(factory, policy, os.Stdout, l)
		if err != nil {
			return err
		}
		res, err := cl.Replay(steps)
		if err != nil {
			return err
		}
		fmt.Printf("%d moves, %d frames, %d finished games\n", len(res.Moves), res.Frames, res.GameOver)
		return nil
	})
}

func RunCandyBoard() error {
	cf := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	ff := &cli.StringFlag{
		Name:  "fen",
		Usage: "start position in FEN format",
	}
	gf := &cli.StringFlag{
		Name:  "on-game-over",
		Usage: "restart, freeze or callback",
	}
	tf := &cli.StringFlag{
		Name:  "theme",
		Usage: "light or dark",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level",
	}
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "development logger",
	}
	conf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "console logger encoding",
	}
	colf := &cli.BoolFlag{
		Name:  "color",
		Usage: "color output even when stdout is not a terminal",
	}
	return (&cli.Command{
		Name:  "candyboard",
		Usage: "interactive chess board",
		// root flags are inherited by the subcommands
		Flags: []cli.Flag{cf, ff, gf, tf, lf, df, conf},
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "board in a window",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunGUI(c)
				},
			},
			{
				Name:  "term",
				Usage: "board in the terminal, mouse driven",
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunTerm(c)
				},
			},
			{
				Name:      "replay",
				Usage:     "feed a pointer script to the board and print the result",
				ArgsUsage: "[script|-]",
				Flags:     []cli.Flag{colf},
				Action: func(ctx context.Context, c *cli.Command) error {
					return RunReplay(c)
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return RunGUI(c)
		},
	}).Run(context.Background(), os.Args)
}
