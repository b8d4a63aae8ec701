package main

import "github.com/spectle/spectle/cmd"

func main() {
	cmd.Execute()
}
