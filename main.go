package main

import "github.com/zckv/action-update-release/cmd"

func main() {
	cmd.Execute()
}
