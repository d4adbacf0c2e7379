package main

import "github.com/mcoot/banker/internal/cli"

func main() {
	cli.Execute()
}
