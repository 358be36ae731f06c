package main

import "wedding-console/cmd/consolectl/cli"

func main() {
	cli.Execute()
}
