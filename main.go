package main

import "github.com/dev-mohitbeniwal/mobility/cmd"

func main() {
	cmd.Execute()
}
