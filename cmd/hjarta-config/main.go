package main

import (
	"os"

	"github.com/0xalexb/hjarta-config/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
