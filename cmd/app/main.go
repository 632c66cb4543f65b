package main

import (
	"github.com/labstack/gommon/log"

	"freight/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("freight: %v", err)
	}
}
