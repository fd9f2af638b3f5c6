package main

import "paraqa/internal/cli"

func main() {
	cli.Execute()
}
