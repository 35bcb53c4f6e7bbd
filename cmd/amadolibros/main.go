// Package main is the entry point for the amadolibros catalog service.
package main

import (
	"os"

	"github.com/trexxeseba/amadolibros-web/cmd/amadolibros/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
