// Copyright © 2025 The lpyac authors

package main

import "github.com/lispython/lpyac/cmd"

func main() {
	cmd.Execute()
}
