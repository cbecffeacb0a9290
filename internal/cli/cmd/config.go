package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/winshell/internal/cli/styles"
	"github.com/bnema/winshell/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the effective configuration, its path or its JSON schema.`,
}

var configShowFormat string

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.GetConfigFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configSchemaWrite bool

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print or write the JSON schema of config.toml",
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", config.FormatTOML, "output format: toml, yaml or json")
	configSchemaCmd.Flags().BoolVarP(&configSchemaWrite, "write", "w", false, "write config.schema.json next to config.toml")
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	r := styles.NewConfigRenderer(a.Theme)
	data, err := config.MarshalFormat(a.Config, configShowFormat)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), r.RenderError(err))
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), r.RenderConfig(a.Manager.Path(), data))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	if !configSchemaWrite {
		data, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	dir, err := config.GetConfigDir()
	if err != nil {
		return err
	}
	path, err := config.GenerateSchemaFile(dir)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), styles.NewConfigRenderer(styles.NewTheme()).RenderSchemaWritten(path))
	return nil
}
