package main

import (
	"github.com/custodia-labs/quill-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
