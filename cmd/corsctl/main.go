package main

import "github.com/nadavyigal/originguard/internal/cli"

func main() {
	cli.Execute()
}
