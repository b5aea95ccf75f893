package main

import (
	"os"

	"github.com/vibast-solutions/ms-go-inteliwallet-billing/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
