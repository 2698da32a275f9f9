package main

import "github.com/minichain/minichain/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
