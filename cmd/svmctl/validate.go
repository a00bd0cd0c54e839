package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"superviseme/application/services"
	"superviseme/infrastructure/persistence/jsonfile"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a dataset file for problem rows",
	Long: `Check a dataset file the way the API would load it: parse it, drop
malformed rows, and report errored and unclassified records.`,
	RunE: runValidate,
}

// ValidateResult is the response for the validate command.
type ValidateResult struct {
	Status     string        `json:"status"`
	Path       string        `json:"path"`
	Records    int           `json:"records"`
	Classified int           `json:"classified"`
	Clusters   int           `json:"clusters"`
	Issues     []RecordIssue `json:"issues"`
}

// RecordIssue represents a single problem row found during validation.
type RecordIssue struct {
	Type   string `json:"type"`
	Name   string `json:"name"`
	Detail string `json:"detail,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	repo := jsonfile.NewDatasetRepository(datasetPath, zap.NewNop())
	records, err := repo.LoadRecords(cmd.Context())
	if err != nil {
		exitWithError(ExitDataError, "loading dataset: %v", err)
	}

	var issues []RecordIssue
	classified := 0
	for key, record := range records {
		switch {
		case record.Error != "":
			issues = append(issues, RecordIssue{Type: "pipeline_error", Name: key, Detail: record.Error})
		case len(record.PrimaryResearchAreas) == 0:
			issues = append(issues, RecordIssue{Type: "unclassified", Name: key})
		default:
			classified++
		}
	}
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Type != issues[j].Type {
			return issues[i].Type < issues[j].Type
		}
		return issues[i].Name < issues[j].Name
	})

	index, err := services.NewIndexer().BuildIndex(records)
	if err != nil {
		exitWithError(ExitDataError, "building index: %v", err)
	}

	result := ValidateResult{
		Status:     "ok",
		Path:       datasetPath,
		Records:    len(records),
		Classified: classified,
		Clusters:   len(index),
		Issues:     issues,
	}
	if len(issues) > 0 {
		result.Status = "issues"
	}

	if humanOutput {
		fmt.Printf("%s: %d records, %d classified, %d clusters\n", datasetPath, result.Records, result.Classified, result.Clusters)
		for _, issue := range issues {
			if issue.Detail != "" {
				fmt.Printf("  [%s] %s: %s\n", issue.Type, issue.Name, issue.Detail)
			} else {
				fmt.Printf("  [%s] %s\n", issue.Type, issue.Name)
			}
		}
		return nil
	}
	return outputJSON(result)
}
