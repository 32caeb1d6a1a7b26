// main is the entry point for the teamfit CLI.
package main

import (
	"github.com/teamfit/teamfit/cmd"
	"github.com/teamfit/teamfit/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
