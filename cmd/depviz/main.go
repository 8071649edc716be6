package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nightconcept/depviz/internal/cli/validate"
)

func newApp() *cli.App {
	return &cli.App{
		Name:    "depviz",
		Usage:   "Dependency graph visualizer prototype: validates its parameters",
		Version: "v0.1.0",
		Flags:   validate.Flags(),
		Action:  validate.Action,
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
