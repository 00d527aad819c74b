package main

import (
	"candyboard/ui"
	"fmt"
	"os"
)

func main() {
	if err := ui.RunCandyBoard(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
