package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jvanvinkenroye/cinemaquery/config"
	"github.com/jvanvinkenroye/cinemaquery/output"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage cinemaquery configuration",
	Long: `Read and write persisted configuration. Keys use dot notation:

  cinemaquery config set api.base_url https://api.cineamo.com
  cinemaquery config get defaults.per_page
  cinemaquery config show`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all resolved configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]
	if err := config.Set(cfgFile, key, value); err != nil {
		return err
	}
	fmt.Printf("Set %s\n", key)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := config.Get(cfgFile, args[0])
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	settings, err := config.All(cfgFile)
	if err != nil {
		return err
	}
	return output.PrintJSON(os.Stdout, settings)
}
