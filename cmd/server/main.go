package main

import "github.com/colombiamoda/internal/cli"

func main() {
	cli.Execute()
}
