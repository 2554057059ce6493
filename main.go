package main

import "github.com/xvierd/zenspace/cmd"

func main() {
	cmd.Execute()
}
