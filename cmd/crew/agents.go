package main

import (
	"fmt"
	"strings"

	"github.com/crewreview/crew/pkg/agents"
	"github.com/spf13/cobra"
)

// agentsCmd represents the agents command
var agentsCmd = &cobra.Command{
	Use:   "agents",
	Short: "List the available review agents",
	Long:  "List the built-in review agents with their specializations and whether each is enabled by the current configuration.",
	Run: func(cmd *cobra.Command, args []string) {
		enabled := make(map[string]bool, len(cfg.Agents.Enabled))
		for _, name := range cfg.Agents.Enabled {
			enabled[name] = true
		}

		for _, agent := range agents.DefaultAgents() {
			status := "disabled"
			if enabled[agent.Name()] {
				status = "enabled"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", agent.Name(), status)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", agent.Description())
			fmt.Fprintf(cmd.OutOrStdout(), "  specializations: %s\n\n", strings.Join(agent.Specializations(), ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(agentsCmd)
}
