package main

import "github.com/nikas90/kids-coloring-ai/internal/cli"

func main() {
	cli.Execute()
}
