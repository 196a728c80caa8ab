package main

import "github.com/mvp-joe/pylayout/internal/cli"

func main() {
	cli.Execute()
}
