package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-companion/internal/combat"
	"github.com/KirkDiggler/combat-companion/internal/entities/ddb"
	"github.com/KirkDiggler/combat-companion/internal/orchestrators/loader"
)

var classifyFormat string

var classifyCmd = &cobra.Command{
	Use:   "classify [character-id | url | file.json]",
	Short: "Print a character's combat options",
	Long: `Load a character from D&D Beyond or a local JSON export and print the
actions, bonus actions and reactions it has in combat. Examples:

  classify 151075644
  classify https://www.dndbeyond.com/characters/151075644
  classify ./vex.json --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVar(&classifyFormat, "format", "text", "output format: text or json")
}

func runClassify(cmd *cobra.Command, args []string) error {
	if classifyFormat != "text" && classifyFormat != "json" {
		return fmt.Errorf("unknown format %q", classifyFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	loaderSvc, err := newLoader(cfg)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd.Context(), loaderSvc, args[0])
	if err != nil {
		return err
	}

	options := combat.Classify(&doc.Character)
	if classifyFormat == "json" {
		fmt.Fprintln(cmd.OutOrStdout(), options.JSON())
		return nil
	}

	vitality := combat.ComputeVitality(&doc.Character, nil)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  HP %s %s [%s]\n", doc.Character.Name, vitality.HPLine(), vitality.TempLine(), vitality.Status)
	for _, category := range combat.Categories {
		lines := options.Get(category)
		if category == combat.CategoryOther || len(lines) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n%s\n", category)
		for _, line := range lines {
			fmt.Fprintf(out, "  - %s\n", line)
		}
	}
	return nil
}

// loadDocument treats source as a file when one exists at that path and
// as a character ID or URL otherwise
func loadDocument(ctx context.Context, svc loader.Service, source string) (*ddb.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	if info, err := os.Stat(source); err == nil && !info.IsDir() {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", source, err)
		}
		defer f.Close()

		out, err := svc.ParseCharacter(ctx, &loader.ParseCharacterInput{Reader: f, Filename: source})
		if err != nil {
			return nil, err
		}
		return out.Document, nil
	}

	out, err := svc.FetchCharacter(ctx, &loader.FetchCharacterInput{CharacterID: strings.TrimSpace(source)})
	if err != nil {
		return nil, err
	}
	return out.Document, nil
}
