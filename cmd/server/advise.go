package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-companion/internal/combat"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/advisor"
)

var (
	adviseAPIKey string
	adviseMaxHP  int
)

var adviseCmd = &cobra.Command{
	Use:   "advise [character-id | url | file.json] [situation...]",
	Short: "Ask for a turn plan from the terminal",
	Long: `Load a character, describe the situation and print the model's turn plan.

  advise 151075644 "Two goblins at 20ft, one wolf adjacent"`,
	Args: cobra.MinimumNArgs(2),
	RunE: runAdvise,
}

func init() {
	adviseCmd.Flags().StringVar(&adviseAPIKey, "api-key", "", "Google Gemini API key (defaults to GOOGLE_API_KEY or the secret file)")
	adviseCmd.Flags().IntVar(&adviseMaxHP, "max-hp", -1, "override the character's max HP")
}

func runAdvise(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loaderSvc, err := newLoader(cfg)
	if err != nil {
		return err
	}
	advisorSvc, err := newAdvisor(cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	doc, err := loadDocument(ctx, loaderSvc, args[0])
	if err != nil {
		return err
	}

	var override *int
	if adviseMaxHP >= 0 {
		override = &adviseMaxHP
	}
	sheet := &doc.Character
	vitality := combat.ComputeVitality(sheet, override)

	out, err := advisorSvc.Advise(ctx, &advisor.AdviseInput{
		PromptInput: advisor.PromptInput{
			Name:      sheet.Name,
			CurrentHP: vitality.CurrentHP,
			MaxHP:     vitality.MaxHP,
			Options:   combat.Classify(sheet),
			Situation: strings.Join(args[1:], " "),
		},
		APIKey: adviseAPIKey,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Strategy)
	return nil
}
