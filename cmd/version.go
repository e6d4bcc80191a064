package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

// develVersion is reported by builds without module version information.
const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the noprint build version, the Go version and the tree-sitter grammar it was built with.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("version: unknown")
				return
			}

			version := info.Main.Version
			if version == "" {
				version = develVersion
			}

			cmd.Println("noprint version\t", version)
			cmd.Println("go version\t", info.GoVersion)

			if grammar := grammarVersion(info); grammar != "" {
				cmd.Println("grammar version\t", grammar)
			}
		},
	}
}

// grammarVersion returns the version of the tree-sitter module linked in.
func grammarVersion(info *debug.BuildInfo) string {
	for _, dep := range info.Deps {
		if dep.Path == treeSitterModule {
			return dep.Version
		}
	}

	return ""
}

const treeSitterModule = "github.com/smacker/go-tree-sitter"

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
