// SPDX-License-Identifier: Apache-2.0
package main

import "github.com/poolforge/poolforge/cmd"

func main() {
	cmd.Execute()
}
