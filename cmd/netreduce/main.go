package main

import (
	"os"

	app "github.com/ak7sky/net-reduce/internal"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
