// Package main is the entry point for the seek bar.
package main

import (
	"github.com/anisan-cli/seekbar/cmd"
	"github.com/anisan-cli/seekbar/config"
	"github.com/anisan-cli/seekbar/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
