package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skystride/droneops/core/analytics"
	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/fleet"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print fleet utilization and conflict counts",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()

	var (
		report    analytics.Report
		breakdown analytics.ConflictBreakdown
	)
	svc.Store.View(func(snap *fleet.Snapshot) {
		report = analytics.Summarize(snap.Pilots(), snap.Drones(), snap.Missions())
		breakdown = analytics.BreakdownConflicts(conflict.DetectAll(snap.Pilots(), snap.Drones(), snap.Missions()))
	})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pilots:   %d total, %d assigned, %d available, %d on leave (%.0f%% utilized)\n",
		report.Pilots.Total, report.Pilots.Assigned, report.Pilots.Available, report.Pilots.Unavailable,
		report.Pilots.Rate*100)
	fmt.Fprintf(out, "Drones:   %d total, %d assigned, %d available, %d in maintenance (%.0f%% utilized)\n",
		report.Drones.Total, report.Drones.Assigned, report.Drones.Available, report.Drones.Unavailable,
		report.Drones.Rate*100)
	fmt.Fprintf(out, "Missions: %d total, %d fully staffed, %d unstaffed\n",
		report.Missions.Total, report.Missions.FullyStaffed, report.Missions.Unstaffed)
	fmt.Fprintf(out, "Conflicts: %d", breakdown.Total)
	for sev, n := range breakdown.BySeverity {
		fmt.Fprintf(out, " %s=%d", sev, n)
	}
	fmt.Fprintln(out)
	return nil
}
