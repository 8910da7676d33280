package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/godraw/internal/app"
	"github.com/philipparndt/godraw/version"
)

var rootCmd = &cobra.Command{
	Use:   "godraw <scene.toml>",
	Short: "Transient 3D debug draw overlay viewer",
	Long: `godraw renders debug draw overlays (points, lines, arrows, arcs and
silhouetted solids) described by a TOML scene file, and reloads the scene
whenever the file changes on disk.`,
	Version: version.GetFullVersion(),
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return app.Run(args[0])
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
