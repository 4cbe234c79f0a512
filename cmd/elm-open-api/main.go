package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lawik/elm-open-api-cli/internal/cli"
	"github.com/lawik/elm-open-api-cli/internal/diag"
)

const version = "0.3.0"

func main() {
	reporter := diag.Detect()
	if err := newRootCmd(reporter).Execute(); err != nil {
		reporter.Failure(err.Error())
		os.Exit(1)
	}
}

func newRootCmd(reporter *diag.Reporter) *cobra.Command {
	var configPath string
	var outputDir string
	var moduleName string
	var generateTodos string

	root := &cobra.Command{
		Use:           "elm-open-api <entryFilePath>",
		Short:         "Generate an Elm client module from an OpenAPI spec",
		Version:       version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cli.BuildConfig(cli.RunParams{
				ConfigPath:    configPath,
				EntryFilePath: args[0],
				OutputDir:     outputDir,
				ModuleName:    moduleName,
				GenerateTodos: generateTodos,
			})
			if err != nil {
				return err
			}
			return cli.RunGenerate(cfg, reporter)
		},
	}

	root.Flags().StringVarP(&configPath, "config", "c", "", "Path to elm-open-api.yaml config")
	root.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default \"generated\")")
	root.Flags().StringVar(&moduleName, "module-name", "", "Elm module name, e.g. Api or Foo.Bar")
	root.Flags().StringVar(&generateTodos, "generateTodos", "", "Emit Debug.todo stubs for unsupported operations (y/yes/true)")

	root.AddCommand(newValidateCmd())
	return root
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "validate <entryFilePath>",
		Short:         "Validate an OpenAPI spec",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.RunValidate(args[0])
		},
	}
}
