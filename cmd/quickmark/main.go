package main

import "github.com/rustyeddy/quickmark/internal/cli"

func main() {
	cli.Execute()
}
