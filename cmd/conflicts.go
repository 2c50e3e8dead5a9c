package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/fleet"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Scan the roster for assignment conflicts",
	RunE:  runConflicts,
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()

	var conflicts []conflict.Conflict
	svc.Store.View(func(snap *fleet.Snapshot) {
		conflicts = conflict.DetectAll(snap.Pilots(), snap.Drones(), snap.Missions())
	})

	out := cmd.OutOrStdout()
	if len(conflicts) == 0 {
		fmt.Fprintln(out, "No conflicts detected.")
		return nil
	}
	for _, c := range conflicts {
		fmt.Fprintln(out, c.String())
	}
	fmt.Fprintf(out, "%d conflict(s) found.\n", len(conflicts))
	return nil
}
