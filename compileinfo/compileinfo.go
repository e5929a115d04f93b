// Package compileinfo reports how a command was built, so that results can be
// traced back to the exact model code that produced them.
package compileinfo

import (
	"fmt"
	"runtime/debug"
)

type CompileInfo struct {
	Command   string
	Module    string
	Version   string
	GoVersion string
	Commit    string
	Modified  bool
}

func (c CompileInfo) String() string {
	if c.GoVersion == "" {
		return fmt.Sprintf("%s: build information unavailable", c.Command)
	}

	out := fmt.Sprintf("%s (%s %s) built with %s", c.Command, c.Module, c.Version, c.GoVersion)
	if c.Commit != "" {
		out += " at commit " + c.Commit
	}
	if c.Modified {
		out += " with uncommitted changes"
	}

	return out
}

// Get reads the build information embedded in the running binary.
func Get(command string) CompileInfo {
	out := CompileInfo{Command: command}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	return fromBuildInfo(command, bi)
}

func fromBuildInfo(command string, bi *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		Command:   command,
		Module:    bi.Main.Path,
		Version:   bi.Main.Version,
		GoVersion: bi.GoVersion,
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}
