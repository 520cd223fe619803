package cmd

import (
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const statsModule = "gonum.org/v1/gonum"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long: `Display the meshstat build, the Go toolchain it was built with and the
version of the statistics library computing mean and sample stdev.`,
	Run: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	info, _ := debug.ReadBuildInfo()

	cmd.Printf("meshstat version %s (commit %s)\n", Version, Commit)
	cmd.Printf("  Go version: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	cmd.Printf("  Stats engine: gonum %s\n", depVersion(info, statsModule))
}

// depVersion reports the version of module path linked into the binary,
// following replace directives. It returns "unknown" without build info.
func depVersion(info *debug.BuildInfo, path string) string {
	if info == nil {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path != path {
			continue
		}
		if dep.Replace != nil {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return "unknown"
}
