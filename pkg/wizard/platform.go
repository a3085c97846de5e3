// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"os"
	"path/filepath"
	"runtime"
)

// ExecutableExt is appended to the application name to form the installed file name
var ExecutableExt = executableExt(runtime.GOOS)

func executableExt(goos string) string {
	if goos == "windows" {
		return ".exe"
	}
	return ""
}

// DefaultInstallDir returns the program directory used when none is given
func DefaultInstallDir() string {
	return defaultInstallDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func defaultInstallDir(goos string, getenv func(string) string, home func() (string, error)) string {
	switch goos {
	case "windows":
		if dir := getenv("ProgramFiles(x86)"); dir != "" {
			return dir
		}
		if dir := getenv("ProgramFiles"); dir != "" {
			return dir
		}
		return `C:\Program Files (x86)`
	case "darwin":
		return "/Applications"
	default:
		h, err := home()
		if err != nil || h == "" {
			return filepath.Join(string(filepath.Separator), "usr", "local", "bin")
		}
		return filepath.Join(h, ".local", "bin")
	}
}
