package cli

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via ldflags by the release build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var versionShort bool

// buildInfo is what 'tally version' reports.
type buildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Built   string `json:"built"`
	Go      string `json:"go"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print the version, commit and build date of tally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return versionCommand(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print only the version number")
	versionCmd.Flags().BoolVar(&machineMode, "json", false, "output as JSON")
}

func versionCommand(w io.Writer) error {
	info := currentBuild()
	switch {
	case MachineMode():
		return WriteJSONSuccess(w, info)
	case versionShort:
		fmt.Fprintln(w, info.Version)
		return nil
	}

	fmt.Fprintf(w, "tally %s\n", formatVersion(info.Version))
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built: %s\n", info.Built)
	fmt.Fprintf(w, "go: %s\n", info.Go)
	fmt.Fprintf(w, "os/arch: %s/%s\n", info.OS, info.Arch)
	return nil
}

// currentBuild falls back to the module version stamped by 'go install' when
// no ldflags were given.
func currentBuild() buildInfo {
	info := buildInfo{
		Version: version,
		Commit:  commit,
		Built:   date,
		Go:      runtime.Version(),
		OS:      runtime.GOOS,
		Arch:    runtime.GOARCH,
	}
	if info.Version != "dev" {
		return info
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	return info
}

// formatVersion adds the v prefix to release versions.
func formatVersion(v string) string {
	if v == "" || v == "dev" || v[0] == 'v' {
		return v
	}
	return "v" + v
}

// displayVersion is the version shown in headers, empty for dev builds.
func displayVersion() string {
	if version == "dev" {
		return ""
	}
	return formatVersion(version)
}

// SetVersionInfo is called from main with the ldflags values.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// GetVersion returns the version set at build time.
func GetVersion() string {
	return version
}
