package main

import (
	"github.com/NVIDIA/service-b/pkg/cli"
)

func main() {
	cli.Execute()
}
