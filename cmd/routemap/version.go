package main

import (
	"github.com/spf13/cobra"
)

// Version is overridden at build time via
// -ldflags "-X main.Version=v1.2.3". It also identifies the generator in
// the report footer.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("routemap version %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
