package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCmd builds the consolectl command tree around its own viper
// instance. Flags, CONSOLECTL_* env vars and the config file all feed it.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	root := &cobra.Command{
		Use:   "consolectl",
		Short: "Operator tooling for the wedding booking console",
		Long: `consolectl prices selections offline against a catalog file or the live
marketplace, applies database migrations and prunes expired booking forms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, cfgFile)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.consolectl.yaml)")

	root.AddCommand(
		newQuoteCmd(v),
		newMigrateCmd(v),
		newDraftsCmd(),
	)
	return root
}

func initConfig(cmd *cobra.Command, v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(home)
		}
		v.SetConfigType("yaml")
		v.SetConfigName(".consolectl")
	}

	v.SetEnvPrefix("CONSOLECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	} else if cfgFile != "" {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	return v.BindPFlags(cmd.Flags())
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
