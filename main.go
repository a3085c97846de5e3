// SPDX-License-Identifier: Apache-2.0
package main

import "github.com/Work-Fort/Ingot/cmd"

func main() {
	cmd.Execute()
}
