// ABOUTME: Entry point for the buildbuddy CLI
// ABOUTME: Terminal client for the BuildBuddy team-matching backend

package main

import (
	"fmt"
	"os"

	"github.com/UtkarshAditya/BuildBuddy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
