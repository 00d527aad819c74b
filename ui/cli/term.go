package cli

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// SetupColor enables colored output only for an interactive stdout.
func SetupColor(force bool) {
	if force {
		color.NoColor = false
		EnableANSI()
		return
	}
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	if !color.NoColor {
		EnableANSI()
	}
}
