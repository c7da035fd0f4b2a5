package main

import (
	"os"

	"github.com/ritika/funlearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
