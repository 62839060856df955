package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/creachadair/taskgroup"
	"github.com/spf13/cobra"

	"otpmig/internal/migration"
	"otpmig/internal/otp"
	"otpmig/internal/render"
)

var (
	format  string
	issuers []string
	names   []string
)

// decode: decode one or more export URLs into account records.
func decodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode [url ...]",
		Short: "Decode migration URLs into account records",
		Long: `Decode one or more otpauth-migration:// URLs into OTP account records.

Split exports span several URLs; pass them in export order and the merged
account list keeps that order. With no arguments, one URL is read from
stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			urls := args
			if len(urls) == 0 {
				u, err := promptURL()
				if err != nil {
					return err
				}
				urls = []string{u}
			}

			exports, err := decodeAll(urls)
			if err != nil {
				return err
			}

			var accounts []otp.Account
			for i, ex := range exports {
				for _, n := range ex.Skipped {
					fmt.Fprintf(os.Stderr, "warning: url #%d entry %d has no secret, skipped\n", i+1, n)
				}
				if ex.BatchSize > 1 {
					fmt.Fprintf(os.Stderr, "url #%d: batch %d of %d (version %d, id %d)\n",
						i+1, ex.BatchIndex+1, ex.BatchSize, ex.Version, ex.BatchID)
				}
				accounts = append(accounts, ex.Accounts...)
			}

			accounts = render.NewSelection(issuers, names).Apply(accounts)
			if len(accounts) == 0 {
				fmt.Fprintln(os.Stderr, "no accounts decoded")
				return nil
			}
			return render.Render(os.Stdout, format, accounts)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatText, "output format: text, json, yaml or uri")
	cmd.Flags().StringArrayVar(&issuers, "issuer", nil, "keep only accounts with this issuer (repeatable)")
	cmd.Flags().StringArrayVar(&names, "name", nil, "keep only accounts with this name (repeatable)")
	return cmd
}

// decodeAll decodes the URLs concurrently. Results land in per-URL slots so
// argument order defines account order regardless of completion order; any
// failure fails the whole batch.
func decodeAll(urls []string) ([]*migration.Export, error) {
	exports := make([]*migration.Export, len(urls))
	g, run := taskgroup.New(nil).Limit(runtime.NumCPU())
	for i, u := range urls {
		run(func() error {
			ex, err := migration.DecodeURL(u)
			if err != nil {
				return fmt.Errorf("url #%d: %w", i+1, err)
			}
			exports[i] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return exports, nil
}
