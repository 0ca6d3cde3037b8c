package main

import (
	cmd "github.com/assetctl/cli/cmd/assetctl"
)

func main() {
	cmd.Main()
}
