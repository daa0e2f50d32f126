package main

import (
	"dex-checksum-tools/cli"
)

func main() {
	cli.Start()
}
