package main

import (
	"github.com/rpsgame/rpsgame-go/internal/cli"
)

func main() {
	cli.Execute()
}
