package main

import "github.com/mcoot/randstr/internal/cli"

func main() {
	cli.Execute()
}
