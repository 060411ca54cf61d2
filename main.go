package main

import (
	"os"

	"github.com/root-xghostx/wordgen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
