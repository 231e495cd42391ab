package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:   "schemaforge",
	Short: "Schema compiler and layout engine for relational designers",
	Long: `
 ___  ___   _  _  ___  __  __    _      ___   ___   ___   ___  ___
/ __|/ __| | || || __||  \/  |  /_\    | __| / _ \ | _ \ / __|| __|
\__ \| (__ | __ || _| | |\/| | / _ \   | _| | (_) ||   /| (_ || _|
|___/ \___||_||_||___||_|  |_|/_/ \_\  |_|   \___/ |_|_\ \___||___|

SCHEMA FORGE - SQL to model compiler, relationship inference and diagram layout
`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./schemaforge.yaml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Executable directory first, then the working directory.
		if ex, err := os.Executable(); err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}
		viper.AddConfigPath(".")

		viper.SetConfigName("schemaforge")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// Command output goes to stdout, so the config notice stays on stderr.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
