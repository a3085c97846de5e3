// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"strings"
	"testing"
)

func TestRootCommands(t *testing.T) {
	want := []string{"install", "info", "pack", "config", "version", "completion"}

	for _, name := range want {
		found := false
		for _, sub := range GetRootCommand().Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("expected subcommand %s", name)
		}
	}
}

func TestGenerateHelpMarkdown(t *testing.T) {
	md := GenerateHelpMarkdown(GetRootCommand())

	for _, want := range []string{"# ingot", "## Available Commands", "**install**", "## Flags", "--log-level"} {
		if !strings.Contains(md, want) {
			t.Errorf("expected %q in help markdown", want)
		}
	}
}

func TestCompletionShells(t *testing.T) {
	var completion []string
	for _, sub := range GetRootCommand().Commands() {
		if sub.Name() != "completion" {
			continue
		}
		for _, shell := range sub.Commands() {
			completion = append(completion, shell.Name())
		}
	}

	if strings.Join(completion, ",") != "bash,fish,powershell,zsh" {
		t.Errorf("unexpected completion shells %v", completion)
	}
}
