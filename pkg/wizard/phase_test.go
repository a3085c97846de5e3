// SPDX-License-Identifier: Apache-2.0
package wizard

import (
	"errors"
	"testing"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		want Phase
	}{
		{name: "start", from: StartPhase{}, want: InstallationPhase{}},
		{name: "installation", from: InstallationPhase{}, want: SuccessPhase{}},
		{name: "success", from: SuccessPhase{}, want: FinishPhase{}},
		{name: "error", from: ErrorPhase{Err: errors.New("boom")}, want: FinishPhase{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Next(tt.from); got != tt.want {
				t.Errorf("Next(%s) = %s, want %s", tt.from, got, tt.want)
			}
		})
	}
}

func TestNext_FinishPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Next(FinishPhase{})
}

func TestErrorPhase_Detail(t *testing.T) {
	if got := (ErrorPhase{}).Detail(); got != "" {
		t.Errorf("expected empty detail, got %q", got)
	}
	if got := (ErrorPhase{Err: errors.New("disk full")}).Detail(); got != "disk full" {
		t.Errorf("expected disk full, got %q", got)
	}
}

func TestDefaultInstallDir(t *testing.T) {
	noEnv := func(string) string { return "" }
	home := func() (string, error) { return "/home/ada", nil }

	tests := []struct {
		name   string
		goos   string
		getenv func(string) string
		want   string
	}{
		{
			name: "windows program files x86",
			goos: "windows",
			getenv: func(k string) string {
				if k == "ProgramFiles(x86)" {
					return `D:\Apps`
				}
				return ""
			},
			want: `D:\Apps`,
		},
		{name: "windows fallback", goos: "windows", getenv: noEnv, want: `C:\Program Files (x86)`},
		{name: "darwin", goos: "darwin", getenv: noEnv, want: "/Applications"},
		{name: "linux", goos: "linux", getenv: noEnv, want: "/home/ada/.local/bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := defaultInstallDir(tt.goos, tt.getenv, home); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExecutableExt(t *testing.T) {
	if executableExt("windows") != ".exe" {
		t.Error("expected .exe on windows")
	}
	if executableExt("linux") != "" {
		t.Error("expected no extension on linux")
	}
}
