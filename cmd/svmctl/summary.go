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
	summaryCmd.Flags().IntVar(&summaryTopOverlaps, "top-overlaps", 5, "Number of overlap pairs to report")
	rootCmd.AddCommand(summaryCmd)
}

var summaryTopOverlaps int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print cluster composition and overlap statistics",
	RunE:  runSummary,
}

// ClusterSummary is one research area in the summary output.
type ClusterSummary struct {
	Name           string `json:"name"`
	Supervisors    int    `json:"supervisors"`
	HighConfidence int    `json:"high_confidence"`
	Subcategories  int    `json:"subcategories"`
}

// SummaryResult is the response for the summary command.
type SummaryResult struct {
	Path             string                    `json:"path"`
	Records          int                       `json:"records"`
	Clusters         []ClusterSummary          `json:"clusters"`
	TotalSupervisors int                       `json:"total_supervisors"`
	TopOverlaps      []services.ClusterOverlap `json:"top_overlaps"`
}

func runSummary(cmd *cobra.Command, args []string) error {
	repo := jsonfile.NewDatasetRepository(datasetPath, zap.NewNop())
	records, err := repo.LoadRecords(cmd.Context())
	if err != nil {
		exitWithError(ExitDataError, "loading dataset: %v", err)
	}

	index, err := services.NewIndexer().BuildIndex(records)
	if err != nil {
		exitWithError(ExitDataError, "building index: %v", err)
	}

	clusters := make([]ClusterSummary, 0, len(index))
	totalSupervisors := 0
	for _, entry := range index {
		clusters = append(clusters, ClusterSummary{
			Name:           entry.Name,
			Supervisors:    entry.TotalSupervisors,
			HighConfidence: entry.HighConfidence,
			Subcategories:  len(entry.Subcategories),
		})
		totalSupervisors += entry.TotalSupervisors
	}
	sort.Slice(clusters, func(i, j int) bool {
		if clusters[i].Supervisors != clusters[j].Supervisors {
			return clusters[i].Supervisors > clusters[j].Supervisors
		}
		return clusters[i].Name < clusters[j].Name
	})

	report, err := services.NewOverlap().Analyze(index)
	if err != nil {
		exitWithError(ExitError, "computing overlaps: %v", err)
	}
	top := report.Pairs
	if len(top) > summaryTopOverlaps {
		top = top[:summaryTopOverlaps]
	}

	result := SummaryResult{
		Path:             datasetPath,
		Records:          len(records),
		Clusters:         clusters,
		TotalSupervisors: totalSupervisors,
		TopOverlaps:      top,
	}

	if humanOutput {
		fmt.Printf("%s: %d records, %d clusters, %d supervisor placements\n\n", datasetPath, result.Records, len(clusters), totalSupervisors)
		for _, c := range clusters {
			fmt.Printf("  %-40s %3d supervisors  %3d high  %3d subcategories\n", c.Name, c.Supervisors, c.HighConfidence, c.Subcategories)
		}
		if len(top) > 0 {
			fmt.Println("\nTop overlaps:")
			for _, p := range top {
				fmt.Printf("  %s <-> %s (%d shared)\n", p.Source, p.Target, p.SharedCount)
			}
		}
		return nil
	}
	return outputJSON(result)
}
