// Package hostenv answers small questions about the build host and target
// environments: executable naming, library layout, and CI detection.
package hostenv

import (
	"os"
	"strings"
)

// Exe returns the filename of an executable called name for the given
// target triple.
func Exe(name, target string) string {
	if strings.Contains(target, "windows") {
		return name + ".exe"
	}
	return name
}

// IsDylib reports whether the file name looks like a dynamic library.
func IsDylib(name string) bool {
	return strings.HasSuffix(name, ".dylib") ||
		strings.HasSuffix(name, ".so") ||
		strings.HasSuffix(name, ".dll")
}

// IsDebugInfo reports whether the file name looks like a debug info file.
func IsDebugInfo(name string) bool {
	return strings.HasSuffix(name, ".pdb")
}

// Libdir returns the relative directory a target's shared libraries are
// installed into.
func Libdir(target string) string {
	if strings.Contains(target, "windows") {
		return "bin"
	}
	return "lib"
}

// CiEnv identifies the CI system the build is running under, which mainly
// affects how output is formatted.
type CiEnv int

const (
	// CiNone means no CI environment was detected.
	CiNone CiEnv = iota
	// CiAzurePipelines is the Azure Pipelines environment.
	CiAzurePipelines
	// CiGitHubActions is the GitHub Actions environment.
	CiGitHubActions
)

// CurrentCI detects the CI environment from its well-known variables.
func CurrentCI() CiEnv {
	switch {
	case os.Getenv("TF_BUILD") == "True":
		return CiAzurePipelines
	case os.Getenv("GITHUB_ACTIONS") == "true":
		return CiGitHubActions
	default:
		return CiNone
	}
}
