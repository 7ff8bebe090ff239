package main

import "github.com/neurotune/neurotune/pkg/cli"

func main() {
	cli.Execute()
}
