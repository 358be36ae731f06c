package cli

import (
	"fmt"
	"path/filepath"

	"wedding-console/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newMigrateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending migrations with atlas",
		Long: `migrate runs "atlas migrate apply" over the migrations directory. The
database URL defaults to the DB_* environment the server uses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbURL := v.GetString("database-url")
			if dbURL == "" {
				var dbCfg config.DBConfig
				if err := envconfig.Process("", &dbCfg); err != nil {
					return fmt.Errorf("failed to process DB env config: %w", err)
				}
				dbURL = dbCfg.BuildDSN()
			}

			dir, err := filepath.Abs(v.GetString("dir"))
			if err != nil {
				return err
			}

			client, err := atlasexec.NewClient(".", v.GetString("atlas-bin"))
			if err != nil {
				return fmt.Errorf("failed to initialize atlas client: %w", err)
			}

			res, err := client.MigrateApply(cmd.Context(), &atlasexec.MigrateApplyParams{
				URL:    dbURL,
				DirURL: "file://" + dir,
			})
			if err != nil {
				return fmt.Errorf("failed to apply migrations: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), now at version %q\n", len(res.Applied), res.Target)
			return nil
		},
	}

	cmd.Flags().String("dir", "migrations", "migrations directory")
	cmd.Flags().String("database-url", "", "postgres URL (default built from DB_* env)")
	cmd.Flags().String("atlas-bin", "atlas", "atlas executable")
	return cmd
}
