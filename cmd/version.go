package cmd

import (
	"fmt"

	"github.com/rbhale-git/laser-tms/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of laser-tms",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("laser-tms v%s\n", version.Version)
		fmt.Println("Laser Enclosure Thermal Management Sizing")
		fmt.Printf("commit: %s, built: %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
