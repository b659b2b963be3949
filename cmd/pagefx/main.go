package main

import (
	"github.com/matjam/pagefx/internal/cli"
)

func main() {
	cli.Execute()
}
