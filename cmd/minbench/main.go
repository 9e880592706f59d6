package main

import "github.com/dlshle/minbench/internal/cli"

func main() {
	cli.Execute()
}
