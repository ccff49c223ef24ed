package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/tilepane/internal/cli/styles"
	"github.com/bnema/tilepane/internal/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, initialize and describe the tilepane configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Write config.toml with every setting at its default value.

An existing file is left untouched unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)

	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func configFilePath() (string, error) {
	if configDir != "" {
		return filepath.Join(configDir, "config.toml"), nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if _, statErr := os.Stat(path); statErr == nil && !configForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return err
	}

	theme := styles.NewTheme(config.DefaultConfig())
	fmt.Fprintln(cmd.OutOrStdout(), theme.SuccessStyle.Render("wrote "+path))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}
