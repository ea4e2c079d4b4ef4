package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"playbox/internal/generate"
	"playbox/internal/inventory"
	"playbox/internal/notifications"
	"playbox/internal/reconcile"
	"playbox/internal/synth"
)

func newAssetsCommand(ctx *commandContext) *cobra.Command {
	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Asset inventory pipeline",
	}

	assetsCmd.AddCommand(newAssetsStatusCommand(ctx))
	assetsCmd.AddCommand(newAssetsCheckCommand(ctx))
	assetsCmd.AddCommand(newAssetsGenerateCommand(ctx))
	assetsCmd.AddCommand(newAssetsDownloadCommand(ctx))

	return assetsCmd
}

func newAssetsStatusCommand(ctx *commandContext) *cobra.Command {
	var category string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show inventory state from the last audit",
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, store, err := ctx.openInventory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if category != "" {
				return printCategoryAssets(cmd, inv, category, jsonOutput)
			}
			return printCategorySummary(cmd, inv, store, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Limit output to one category")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}

func printCategoryAssets(cmd *cobra.Command, inv *inventory.Inventory, category string, jsonOutput bool) error {
	assets := inv.ByCategory(category)
	if len(assets) == 0 {
		return fmt.Errorf("no assets in category %q", category)
	}

	if jsonOutput {
		return writeJSON(cmd, map[string]any{"category": category, "assets": assets})
	}

	colorize := shouldColorize(cmd.OutOrStdout())
	rows := make([][]string, 0, len(assets))
	for _, a := range assets {
		status := colorizeCell(string(a.Status), assetStatusKind(a.Status), colorize)
		rows = append(rows, []string{a.Key, a.Name, string(a.Kind), status, a.Error})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"KEY", "NAME", "KIND", "STATUS", "ERROR"},
		rows,
		nil,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	return nil
}

func printCategorySummary(cmd *cobra.Command, inv *inventory.Inventory, store *inventory.Store, jsonOutput bool) error {
	counts, err := store.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("load audit summary: %w", err)
	}
	if len(counts) == 0 {
		// No audit has been persisted yet; report the expected inventory.
		counts = unauditedSummary(inv)
	}

	if jsonOutput {
		return writeJSON(cmd, map[string]any{"categories": counts})
	}

	var total inventory.CategoryCount
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{
			c.Category,
			strconv.Itoa(c.Total),
			strconv.Itoa(c.Exists),
			strconv.Itoa(c.Generated),
			strconv.Itoa(c.Pending),
			strconv.Itoa(c.Errors),
		})
		total.Total += c.Total
		total.Exists += c.Exists
		total.Generated += c.Generated
		total.Pending += c.Pending
		total.Errors += c.Errors
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"CATEGORY", "TOTAL", "EXISTS", "GENERATED", "PENDING", "ERRORS"},
		rows,
		[]string{
			"TOTAL",
			strconv.Itoa(total.Total),
			strconv.Itoa(total.Exists),
			strconv.Itoa(total.Generated),
			strconv.Itoa(total.Pending),
			strconv.Itoa(total.Errors),
		},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight},
	))
	return nil
}

// unauditedSummary counts the freshly built inventory, in display category
// order. Everything that is not yet audited counts as pending.
func unauditedSummary(inv *inventory.Inventory) []inventory.CategoryCount {
	perCategory := make(map[string]*inventory.CategoryCount)
	for _, a := range inv.Assets() {
		c := perCategory[a.Category]
		if c == nil {
			c = &inventory.CategoryCount{Category: a.Category}
			perCategory[a.Category] = c
		}
		c.Total++
		switch a.Status {
		case inventory.StatusExists:
			c.Exists++
		case inventory.StatusGenerated:
			c.Generated++
		case inventory.StatusError:
			c.Errors++
		default:
			c.Pending++
		}
	}

	out := make([]inventory.CategoryCount, 0, len(perCategory))
	for _, category := range inv.Categories() {
		if c := perCategory[category]; c != nil {
			out = append(out, *c)
		}
	}
	return out
}

func newAssetsCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Probe the content store for every expected asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.contentClient()
			if err != nil {
				return err
			}
			inv, store, err := ctx.openInventory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			reconciler := reconcile.New(inv, client,
				reconcile.WithSnapshotter(store),
				reconcile.WithProbeLimit(cfg.ContentStore.ProbeConcurrency),
				reconcile.WithLogger(ctx.ensureLogger()),
			)
			result, err := reconciler.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Checked %d assets in %s: %d present, %d missing\n",
				result.Total, result.Duration.Round(timeRounding), result.Exists, result.Pending)
			return nil
		},
	}
}

func newAssetsGenerateCommand(ctx *commandContext) *cobra.Command {
	var skipCheck bool
	var category string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate assets missing from the content store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger()
			client, err := ctx.contentClient()
			if err != nil {
				return err
			}
			inv, store, err := ctx.openInventory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			if !skipCheck {
				reconciler := reconcile.New(inv, client,
					reconcile.WithSnapshotter(store),
					reconcile.WithProbeLimit(cfg.ContentStore.ProbeConcurrency),
					reconcile.WithLogger(logger),
				)
				if _, err := reconciler.Run(cmd.Context()); err != nil {
					return err
				}
			}

			service, err := synth.NewClient(cmd.Context(), cfg.Synth, synth.WithLogger(logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			runner := generate.New(inv, service, cfg.LockPath(), cfg.GeneratedDir(),
				generate.WithCategory(category),
				generate.WithSnapshotter(store),
				generate.WithNotifier(notifications.NewService(cfg)),
				generate.WithReferenceLoader(client),
				generate.WithLogger(logger),
				generate.WithProgress(func(p generate.Progress) {
					if p.Err != nil {
						fmt.Fprintf(out, "[%d/%d] %s: %v\n", p.Current, p.Total, p.Asset.Name, p.Err)
						return
					}
					fmt.Fprintf(out, "[%d/%d] %s\n", p.Current, p.Total, p.Asset.Name)
				}),
			)
			summary, err := runner.Run(cmd.Context())
			if err != nil {
				return err
			}
			if summary.Total == 0 {
				fmt.Fprintln(out, "All assets are present; nothing to generate")
				return nil
			}
			fmt.Fprintf(out, "Batch %s: %d generated, %d failed in %s\n",
				summary.BatchID, summary.Generated, summary.Failed, summary.Duration.Round(timeRounding))
			fmt.Fprintf(out, "Payloads written to %s\n", cfg.GeneratedDir())
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Generate from the last audit without probing the store first")
	cmd.Flags().StringVar(&category, "category", "", "Limit generation to one category")
	return cmd
}

func newAssetsDownloadCommand(ctx *commandContext) *cobra.Command {
	var dest string
	var category string

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download present assets from the content store",
		RunE: func(cmd *cobra.Command, args []string) error {
			if dest == "" {
				return fmt.Errorf("--dest is required")
			}
			client, err := ctx.contentClient()
			if err != nil {
				return err
			}
			inv, store, err := ctx.openInventory(cmd.Context())
			if err != nil {
				return err
			}
			defer store.Close()

			assets := inv.Assets()
			if category != "" {
				assets = inv.ByCategory(category)
			}

			out := cmd.OutOrStdout()
			downloaded := 0
			for _, a := range assets {
				if a.Status != inventory.StatusExists {
					continue
				}
				if err := cmd.Context().Err(); err != nil {
					return err
				}
				path, err := client.Download(cmd.Context(), a, dest)
				if err != nil {
					fmt.Fprintf(out, "skip %s: %v\n", a.Key, err)
					continue
				}
				fmt.Fprintf(out, "%s -> %s\n", a.Key, path)
				downloaded++
			}
			fmt.Fprintf(out, "Downloaded %d assets\n", downloaded)
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "Destination directory")
	cmd.Flags().StringVar(&category, "category", "", "Limit downloads to one category")
	return cmd
}
