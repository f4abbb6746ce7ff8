package main

import "weave/internal/cli"

func main() {
	cli.Execute()
}
