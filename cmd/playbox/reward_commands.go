package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRewardCommand(ctx *commandContext) *cobra.Command {
	rewardCmd := &cobra.Command{
		Use:   "reward",
		Short: "Reward engine utilities",
	}

	rewardCmd.AddCommand(newRewardStatusCommand(ctx))
	rewardCmd.AddCommand(newRewardAnswerCommand(ctx))
	rewardCmd.AddCommand(newRewardResetCommand(ctx))

	return rewardCmd
}

func newRewardStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show collection progress and thresholds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			engine, err := ctx.rewardEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			unlocked := engine.Unlocked()

			fmt.Fprintln(out, renderStatusLine("Stickers unlocked", statusOK,
				fmt.Sprintf("%d (%d remaining)", len(unlocked), engine.Remaining()), colorize))
			fmt.Fprintln(out, renderStatusLine("Sticker threshold", statusInfo,
				fmt.Sprintf("every %d correct answers", cfg.Reward.StickerThreshold), colorize))
			fmt.Fprintln(out, renderStatusLine("Big reward", statusInfo,
				fmt.Sprintf("every %d correct answers", cfg.Reward.BigRewardThreshold), colorize))
			return nil
		},
	}
}

func newRewardAnswerCommand(ctx *commandContext) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "answer",
		Short: "Record correct answers and report what they unlock",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("invalid answer count %d", count)
			}
			engine, err := ctx.rewardEngine()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				result := engine.OnCorrectAnswer()
				if result.Unlocked != nil {
					fmt.Fprintf(out, "Answer %d unlocked sticker: %s\n", i+1, result.Unlocked.Name)
				}
				if result.BigReward {
					fmt.Fprintf(out, "Answer %d earned the big reward!\n", i+1)
				}
			}
			forSticker, forBig := engine.Counters()
			fmt.Fprintf(out, "Progress: %d toward next sticker, %d toward big reward\n", forSticker, forBig)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "Number of correct answers to record")
	return cmd
}

func newRewardResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the sticker collection and counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := ctx.rewardEngine()
			if err != nil {
				return err
			}
			engine.Reset()
			fmt.Fprintln(cmd.OutOrStdout(), "Sticker collection reset")
			return nil
		},
	}
}
