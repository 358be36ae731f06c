package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"wedding-console/internal/domain/catalog"
	"wedding-console/internal/domain/pricing"
	"wedding-console/internal/infra/marketplace"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newQuoteCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a selection against a catalog file or the live marketplace",
		Example: `  consolectl quote --catalog catalog.yaml --venue <id> --guests 120 --car <id> --car <id>
  consolectl quote --marketplace-url http://localhost:8000 --venue <id> --returning`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuote(cmd.Context(), v, cmd.OutOrStdout())
		},
	}

	cmd.Flags().String("catalog", "", "catalog file (yaml or json)")
	cmd.Flags().String("marketplace-url", "", "load the catalog from this marketplace instead of a file")
	cmd.Flags().String("venue", "", "venue id")
	cmd.Flags().String("catering", "", "catering id")
	cmd.Flags().String("decoration", "", "decoration id")
	cmd.Flags().String("promo", "", "promo id")
	cmd.Flags().StringSlice("car", nil, "car id, repeatable")
	cmd.Flags().Int("guests", pricing.MinGuestCount, "guest count")
	cmd.Flags().Bool("returning", false, "apply the returning-customer discount")
	cmd.Flags().String("at", "", "price at this instant (RFC3339, default now)")
	return cmd
}

func runQuote(ctx context.Context, v *viper.Viper, out io.Writer) error {
	at := time.Now().UTC()
	if raw := v.GetString("at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("invalid --at: %w", err)
		}
		at = t.UTC()
	}

	snapshot, err := loadSnapshot(ctx, v, at)
	if err != nil {
		return err
	}

	sel, err := selectionFromFlags(v)
	if err != nil {
		return err
	}

	loyalty := 0.0
	if v.GetBool("returning") {
		loyalty = pricing.LoyaltyDiscountRate
	}

	view := queries.QuoteView{
		Billing:         pricing.NewDefaultCalculator().Calculate(sel, snapshot, loyalty, at),
		LoyaltyDiscount: loyalty,
		CatalogLoadedAt: snapshot.LoadedAt(),
	}
	if sel.PromoID != nil {
		if p, ok := snapshot.Promo(*sel.PromoID); ok {
			view.PromoApplied = p.IsSelectableAt(at)
		}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

func loadSnapshot(ctx context.Context, v *viper.Viper, at time.Time) (*catalog.Snapshot, error) {
	if url := v.GetString("marketplace-url"); url != "" {
		client := marketplace.NewClientWithHTTP(url, &http.Client{Timeout: 10 * time.Second}, clock.NewRealClock(), slog.Default())
		return client.LoadSnapshot(ctx)
	}
	path := v.GetString("catalog")
	if path == "" {
		return nil, fmt.Errorf("one of --catalog or --marketplace-url is required")
	}
	return loadCatalogFile(path, at)
}

func selectionFromFlags(v *viper.Viper) (pricing.Selection, error) {
	venueID, err := uuid.Parse(v.GetString("venue"))
	if err != nil {
		return pricing.Selection{}, fmt.Errorf("invalid --venue: %w", err)
	}

	sel := pricing.Selection{
		VenueID:    venueID,
		GuestCount: v.GetInt("guests"),
	}
	for flag, dst := range map[string]**uuid.UUID{
		"catering":   &sel.CateringID,
		"decoration": &sel.DecorationID,
		"promo":      &sel.PromoID,
	} {
		raw := v.GetString(flag)
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return pricing.Selection{}, fmt.Errorf("invalid --%s: %w", flag, err)
		}
		*dst = &id
	}
	for _, raw := range v.GetStringSlice("car") {
		id, err := uuid.Parse(raw)
		if err != nil {
			return pricing.Selection{}, fmt.Errorf("invalid --car: %w", err)
		}
		sel.CarIDs = append(sel.CarIDs, id)
	}
	return sel, nil
}
