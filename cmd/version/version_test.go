// SPDX-License-Identifier: Apache-2.0
package version

import (
	"bytes"
	"testing"
)

func TestVersionCmd(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{version: "1.2.3", want: "ingot version 1.2.3\n"},
		{version: "", want: "ingot version dev\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		cmd := NewVersionCmd(tt.version)
		cmd.SetOut(&out)
		cmd.SetArgs([]string{})
		if err := cmd.Execute(); err != nil {
			t.Fatal(err)
		}
		if out.String() != tt.want {
			t.Errorf("got %q, want %q", out.String(), tt.want)
		}
	}
}
