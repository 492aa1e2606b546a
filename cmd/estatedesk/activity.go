// Activity-log commands for the estatedesk CLI.
package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var (
	activityLimit int
	activityKeep  int
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Inspect the activity log",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show recent activity, newest first",
	Args:  cobra.NoArgs,
	RunE:  runActivityList,
}

var activityStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize activity by action and by day",
	Args:  cobra.NoArgs,
	RunE:  runActivityStats,
}

var activityPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Trim the activity log to the newest entries",
	Args:  cobra.NoArgs,
	RunE:  runActivityPrune,
}

func init() {
	activityListCmd.Flags().IntVar(&activityLimit, "limit", 20, "maximum entries to show")
	activityPruneCmd.Flags().IntVar(&activityKeep, "keep", 1000, "entries to keep")

	activityCmd.AddCommand(activityListCmd)
	activityCmd.AddCommand(activityStatsCmd)
	activityCmd.AddCommand(activityPruneCmd)
}

func runActivityList(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	records, err := eng.Activity.ListRecent(activityLimit)
	if err != nil {
		return fmt.Errorf("list activity: %w", err)
	}

	if flagJSON {
		return printJSON(records)
	}

	for _, r := range records {
		line := fmt.Sprintf("%s  %-16s  %s", r.Timestamp.Format("2006-01-02 15:04:05"), r.ActionType, r.EntityCode)
		if r.Detail != "" {
			line += "  (" + r.Detail + ")"
		}
		fmt.Println(line)
	}
	fmt.Printf("%d entr(ies)\n", len(records))
	return nil
}

func runActivityStats(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	stats, err := eng.Activity.Statistics()
	if err != nil {
		return fmt.Errorf("activity stats: %w", err)
	}

	if flagJSON {
		return printJSON(stats)
	}

	fmt.Printf("total: %d\n", stats.Total)
	fmt.Println("by action:")
	for _, k := range sortedKeys(stats.ByAction) {
		fmt.Printf("  %-20s %d\n", k, stats.ByAction[k])
	}
	fmt.Println("by day:")
	for _, k := range sortedKeys(stats.ByDay) {
		fmt.Printf("  %s  %d\n", k, stats.ByDay[k])
	}
	return nil
}

func runActivityPrune(cmd *cobra.Command, args []string) error {
	eng, err := openEngine()
	if err != nil {
		return err
	}
	defer eng.Close()

	removed, err := eng.Activity.Prune(activityKeep)
	if err != nil {
		return fmt.Errorf("prune activity: %w", err)
	}

	fmt.Printf("Pruned %d entr(ies)\n", removed)
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
