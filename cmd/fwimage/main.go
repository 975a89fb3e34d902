package main

import (
	"github.com/naslab/fwimage/internal/cmd"
)

func main() {
	cmd.Execute()
}
