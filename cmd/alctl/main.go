// Package main is the entry point for the alctl CLI client.
package main

import (
	"github.com/trexxeseba/amadolibros-web/cmd/alctl/cmd"
)

func main() {
	cmd.Execute()
}
