package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/matching"
)

var matchTopN int

var matchCmd = &cobra.Command{
	Use:   "match <mission-id>",
	Short: "Rank pilot and drone candidates for a mission",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().IntVarP(&matchTopN, "top", "n", matching.DefaultTopN, "number of candidates per resource")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()

	out := cmd.OutOrStdout()
	var (
		found  bool
		pilots []matching.PilotCandidate
		drones []matching.DroneCandidate
	)
	missionID := args[0]
	svc.Store.View(func(snap *fleet.Snapshot) {
		m, ok := snap.FindMission(missionID)
		if !ok {
			return
		}
		found = true
		missionID = m.ID
		pilots = svc.Match.FindBestPilots(snap.Pilots(), *m, matchTopN)
		drones = svc.Match.FindBestDrones(snap.Drones(), *m, matchTopN)
	})
	if !found {
		return fmt.Errorf("mission %q not found", args[0])
	}

	fmt.Fprintf(out, "Candidates for %s:\n", missionID)
	if len(pilots) == 0 {
		fmt.Fprintln(out, "  no available pilots")
	}
	for i, c := range pilots {
		fmt.Fprintf(out, "  %d. %s (%s) score %.3f\n", i+1, c.Pilot.Name, c.Pilot.ID, c.Score)
	}
	if len(drones) == 0 {
		fmt.Fprintln(out, "  no available drones")
	}
	for i, c := range drones {
		fmt.Fprintf(out, "  %d. %s (%s) score %.3f\n", i+1, c.Drone.Model, c.Drone.ID, c.Score)
	}
	return nil
}
