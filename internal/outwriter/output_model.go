package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/teamfit/teamfit/internal/contract"
	"github.com/teamfit/teamfit/schema"
)

// modelEntry pairs one model element with its display meaning.
type modelEntry struct {
	Name    string `json:"name"`
	Meaning string `json:"meaning"`
}

// modelTier is one proficiency tier keyword with its numeric level.
type modelTier struct {
	Name  string  `json:"name"`
	Level float64 `json:"level"`
}

// modelRender is the scoring-model display assembled once and rendered by
// every output format.
type modelRender struct {
	Title         string            `json:"title"`
	Formula       []string          `json:"formula"`
	Options       schema.Options    `json:"options"`
	Tiers         []modelTier       `json:"tiers"`
	Criticalities []modelEntry      `json:"criticalities"`
	Severities    []modelEntry      `json:"severities"`
	Labels        []modelEntry      `json:"labels"`
	Synonyms      map[string]string `json:"synonyms"`
}

// PrintModelDefinitions displays the formal definition of the scoring model.
// This is a static display that does not require input documents.
func PrintModelDefinitions(cfg *contract.Config) error {
	// Build the complete render model with all processed data
	renderModel := buildModelRender(cfg)

	switch cfg.Output {
	case schema.JSONOut:
		return printModelJSON(renderModel, cfg)
	case schema.CSVOut:
		return printModelCSV(renderModel, cfg)
	case schema.ParquetOut:
		return errors.New("parquet output is not available for the model display")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return printModelText(w, renderModel, cfg)
		}, "Wrote text")
	}
}

// printModelText displays the model in human-readable text format.
func printModelText(w io.Writer, renderModel *modelRender, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "%s\n", sectionHeading("📐", renderModel.Title, cfg)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "======================\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n"); err != nil {
		return err
	}
	for _, line := range renderModel.Formula {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nOptions in effect:\n"); err != nil {
		return err
	}
	opts := renderModel.Options
	if _, err := fmt.Fprintf(w, "   exclusiveAssignment: %v\n", opts.ExclusiveAssignment); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   criticalMissPenalty: %g\n", opts.CriticalMissPenalty); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   confidenceMultiplier: %g\n", opts.ConfidenceMultiplier); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   defaultCapacity: %d\n", opts.DefaultCapacity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   strict: %v\n", opts.Strict); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "   workers: %d\n", opts.Workers); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\nProficiency tiers:\n"); err != nil {
		return err
	}
	for _, tier := range renderModel.Tiers {
		if _, err := fmt.Fprintf(w, "   %s: %s\n", tier.Name, formatLevel(tier.Level)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nCriticality tiers:\n"); err != nil {
		return err
	}
	for _, entry := range renderModel.Criticalities {
		if _, err := fmt.Fprintf(w, "   %s: %s\n", entry.Name, entry.Meaning); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nGap severities:\n"); err != nil {
		return err
	}
	for _, entry := range renderModel.Severities {
		if _, err := fmt.Fprintf(w, "   %s: %s\n", entry.Name, entry.Meaning); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nMatch labels:\n"); err != nil {
		return err
	}
	for _, entry := range renderModel.Labels {
		if _, err := fmt.Fprintf(w, "   %s: %s\n", entry.Name, entry.Meaning); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nSynonyms (%d aliases):\n", len(renderModel.Synonyms)); err != nil {
		return err
	}
	for _, alias := range sortedAliases(renderModel.Synonyms) {
		if _, err := fmt.Fprintf(w, "   %s -> %s\n", alias, renderModel.Synonyms[alias]); err != nil {
			return err
		}
	}

	return nil
}

// printModelJSON displays the model in JSON format.
func printModelJSON(renderModel *modelRender, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, renderModel)
	}, "Wrote JSON")
}

// printModelCSV exports the synonym dictionary, the only naturally tabular
// part of the model, in CSV format.
func printModelCSV(renderModel *modelRender, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, []string{"alias", "canonical"}, func(csvWriter *csv.Writer) error {
			for _, alias := range sortedAliases(renderModel.Synonyms) {
				if err := csvWriter.Write([]string{alias, renderModel.Synonyms[alias]}); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// sortedAliases returns the synonym aliases in ascending order.
func sortedAliases(synonyms map[string]string) []string {
	aliases := make([]string, 0, len(synonyms))
	for alias := range synonyms {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// buildModelRender constructs the complete render model with all processed data.
func buildModelRender(cfg *contract.Config) *modelRender {
	tiers := make([]modelTier, 0, len(schema.TierLevels))
	for name, level := range schema.TierLevels {
		tiers = append(tiers, modelTier{Name: name, Level: level})
	}
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Level < tiers[j].Level })

	severities := make([]modelEntry, 0, len(schema.AllGapKinds))
	meanings := map[schema.GapKind]string{
		schema.UncoveredGap:    "no qualifying member",
		schema.SinglePointGap:  "exactly one qualifying member",
		schema.UnderLeveledGap: "best assigned claim below the confidence threshold",
	}
	for _, kind := range schema.AllGapKinds {
		severities = append(severities, modelEntry{
			Name:    string(kind),
			Meaning: fmt.Sprintf("%s (%s)", schema.GetSeverityName(kind), meanings[kind]),
		})
	}

	return &modelRender{
		Title: "Teamfit Scoring Model",
		Formula: []string{
			"score = 100 * sum(weight * coverage) / sum(weight), *penalty per missed critical requirement",
			"coverage = min(1, level / min_level); claim presence counts when min_level is 0",
			"scores clamp to [0, 100]",
		},
		Options: cfg.Options,
		Tiers:   tiers,
		Criticalities: []modelEntry{
			{Name: string(schema.NiceToHave), Meaning: "weighted scoring only; never raises gap findings"},
			{Name: string(schema.Required), Meaning: "weighted scoring plus gap analysis"},
			{Name: string(schema.Critical), Meaning: "gap analysis plus the per-miss score penalty"},
		},
		Severities: severities,
		Labels: []modelEntry{
			{Name: ">= 80", Meaning: "Strong"},
			{Name: ">= 60", Meaning: "Good"},
			{Name: ">= 40", Meaning: "Partial"},
			{Name: "< 40", Meaning: "Limited"},
		},
		Synonyms: schema.NewNormalizer(cfg.Synonyms).Entries(),
	}
}
