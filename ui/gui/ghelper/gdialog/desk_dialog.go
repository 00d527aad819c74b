package gdialog

import (
	"github.com/sqweek/dialog"
)

// AskRestart shows the game result and asks whether to start a new game.
// Blocks until the dialog is closed.
func AskRestart(title, result string) bool {
	return dialog.Message("%s\n\nStart a new game?", result).Title(title).YesNo()
}

func Info(title, msg string) {
	dialog.Message("%s", msg).Title(title).Info()
}
