package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/detersim/determinisk/scenario"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range scenario.ListScenarios() {
			fmt.Println(name)
		}
	},
}
