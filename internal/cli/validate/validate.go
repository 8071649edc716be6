package validate

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/nightconcept/depviz/internal/core/config"
	"github.com/nightconcept/depviz/internal/core/validator"
)

// ErrorsHeader precedes the list of failed rules on stderr.
const ErrorsHeader = "Errors found in parameters:"

// ConfigurationHeader precedes the accepted configuration on stdout.
const ConfigurationHeader = "Configuration:"

// Flags returns the flags understood by the validate action.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "package-name",
			Usage:    "Name of the package to analyse",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "repo-url",
			Usage:    "URL of the repository, or path to a local copy",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "mode",
			Usage:    "How the repository is accessed: local, remote or test",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "output-file",
			Usage:    "Name of the generated graph image (.png, .svg or .jpg)",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "Substring used to filter packages",
			Value: "",
		},
		&cli.StringFlag{
			Name:  "save",
			Usage: "Write the accepted configuration to this TOML file",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable verbose output",
		},
	}
}

// Action validates the flags on c. Failed rules are returned as a cli.Exit error with
// status 1; the accepted configuration is printed to the app writer otherwise.
func Action(c *cli.Context) error {
	cfg := config.Configuration{
		PackageName: c.String("package-name"),
		RepoURL:     c.String("repo-url"),
		Mode:        c.String("mode"),
		OutputFile:  c.String("output-file"),
		Filter:      c.String("filter"),
	}
	verbose := c.Bool("verbose")
	errOut := c.App.ErrWriter

	if verbose {
		fmt.Fprintf(errOut, "Validating parameters for package '%s'...\n", cfg.PackageName)
	}

	if err := validator.Err(cfg); err != nil {
		headerColor := color.New(color.FgRed, color.Bold).SprintFunc()
		return cli.Exit(fmt.Sprintf("%s\n\n%s", headerColor(ErrorsHeader), err), 1)
	}

	printConfiguration(c.App.Writer, cfg)

	if savePath := c.String("save"); savePath != "" {
		if err := config.WriteConfigToml(savePath, cfg); err != nil {
			return cli.Exit(fmt.Sprintf("Error: failed to save configuration to %s: %v", savePath, err), 1)
		}
		if verbose {
			fmt.Fprintf(errOut, "Configuration saved to %s\n", savePath)
		}
	}
	return nil
}

func printConfiguration(w io.Writer, cfg config.Configuration) {
	headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(w, headerColor(ConfigurationHeader))
	fmt.Fprintf(w, "package-name = %s\n", cfg.PackageName)
	fmt.Fprintf(w, "repo-url     = %s\n", cfg.RepoURL)
	fmt.Fprintf(w, "mode         = %s\n", cfg.Mode)
	fmt.Fprintf(w, "output-file  = %s\n", cfg.OutputFile)
	fmt.Fprintf(w, "filter       = %s\n", cfg.FilterDisplay())
}
