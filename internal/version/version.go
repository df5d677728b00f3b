// Package version holds cyan's own CLI version string, colored the way the
// teacher compiler colors its own (internal/version/version.go): per-digit
// color via fatih/color rather than a single plain string.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the cyan CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"
)
