package cli

import (
	"fmt"

	"wedding-console/internal/domain/booking"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/infra/db"
	"wedding-console/internal/infra/repository"
	"wedding-console/internal/infra/sqlc"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/usecase/commands"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

func newDraftsCmd() *cobra.Command {
	drafts := &cobra.Command{
		Use:   "drafts",
		Short: "Maintain stored booking forms",
	}

	drafts.AddCommand(&cobra.Command{
		Use:   "prune",
		Short: "Delete booking forms past their expiry",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var dbCfg config.DBConfig
			if err := envconfig.Process("", &dbCfg); err != nil {
				return fmt.Errorf("failed to process DB env config: %w", err)
			}

			pool, cleanup, err := db.Connect(dbCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			clk := clock.NewRealClock()
			services := booking.NewServices(clk, pricing.NewDefaultCalculator())
			repo := repository.NewDraftRepository(sqlc.New(), pool, services)

			n, err := commands.NewDraftCleanupCommands(repo, clk).PruneExpired(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pruned %d expired booking form(s)\n", n)
			return nil
		},
	})
	return drafts
}
