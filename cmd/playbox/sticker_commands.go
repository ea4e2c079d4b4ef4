package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"playbox/internal/sticker"
)

func newStickersCommand(ctx *commandContext) *cobra.Command {
	stickersCmd := &cobra.Command{
		Use:   "stickers",
		Short: "Sticker collection utilities",
	}
	stickersCmd.AddCommand(newStickersListCommand(ctx))
	return stickersCmd
}

func newStickersListCommand(ctx *commandContext) *cobra.Command {
	var unlockedOnly bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the sticker collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.rewardEngine()
			if err != nil {
				return err
			}

			unlocked := make(map[string]struct{})
			for _, s := range engine.Unlocked() {
				unlocked[s.ID] = struct{}{}
			}

			pool := sticker.All()
			if jsonOutput {
				type jsonSticker struct {
					ID       string `json:"id"`
					Name     string `json:"name"`
					Image    string `json:"imageUrl"`
					Unlocked bool   `json:"unlocked"`
				}
				items := make([]jsonSticker, 0, len(pool))
				for _, s := range pool {
					_, isUnlocked := unlocked[s.ID]
					if unlockedOnly && !isUnlocked {
						continue
					}
					items = append(items, jsonSticker{ID: s.ID, Name: s.Name, Image: s.Image, Unlocked: isUnlocked})
				}
				return writeJSON(cmd, map[string]any{"stickers": items})
			}

			rows := make([][]string, 0, len(pool))
			for _, s := range pool {
				_, isUnlocked := unlocked[s.ID]
				if unlockedOnly && !isUnlocked {
					continue
				}
				state := "locked"
				if isUnlocked {
					state = "unlocked"
				}
				rows = append(rows, []string{s.ID, s.Name, state})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "NAME", "STATE"},
				rows,
				nil,
				[]columnAlignment{alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d of %d stickers unlocked\n", len(unlocked), len(pool))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unlockedOnly, "unlocked", false, "Show only unlocked stickers")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON output")
	return cmd
}
