package main

import "github.com/mvp-joe/codestandard/internal/cli"

func main() {
	cli.Execute()
}
