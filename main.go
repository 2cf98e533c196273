package main

import "github.com/notargets/polydata/cmd"

func main() {
	cmd.Execute()
}
