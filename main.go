package main

import (
	"os"

	"github.com/coursecraft/flowengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
