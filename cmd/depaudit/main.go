package main

import "depaudit/internal/cli"

func main() {
	cli.Execute()
}
