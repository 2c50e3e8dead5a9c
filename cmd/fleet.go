package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skystride/droneops/core/fleet"
)

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Fleet roster commands",
}

var fleetPilotsCmd = &cobra.Command{
	Use:   "pilots",
	Short: "List pilots",
	RunE:  runFleetPilots,
}

var fleetDronesCmd = &cobra.Command{
	Use:   "drones",
	Short: "List drones",
	RunE:  runFleetDrones,
}

var fleetMissionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "List missions",
	RunE:  runFleetMissions,
}

func init() {
	fleetCmd.AddCommand(fleetPilotsCmd, fleetDronesCmd, fleetMissionsCmd)
	rootCmd.AddCommand(fleetCmd)
}

func runFleetPilots(cmd *cobra.Command, args []string) error {
	return withRoster(cmd, func(w *tabwriter.Writer, snap *fleet.Snapshot) {
		fmt.Fprintln(w, "ID\tNAME\tSTATUS\tLOCATION\tMISSION\tSKILLS")
		for _, p := range snap.Pilots() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Name, p.Status, p.Location, orDash(p.CurrentAssignment), strings.Join(p.Skills, ","))
		}
	})
}

func runFleetDrones(cmd *cobra.Command, args []string) error {
	return withRoster(cmd, func(w *tabwriter.Writer, snap *fleet.Snapshot) {
		fmt.Fprintln(w, "ID\tMODEL\tSTATUS\tLOCATION\tMISSION\tCAPABILITIES")
		for _, d := range snap.Drones() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.Model, d.Status, d.Location, orDash(d.CurrentAssignment), strings.Join(d.Capabilities, ","))
		}
	})
}

func runFleetMissions(cmd *cobra.Command, args []string) error {
	return withRoster(cmd, func(w *tabwriter.Writer, snap *fleet.Snapshot) {
		fmt.Fprintln(w, "ID\tCLIENT\tLOCATION\tPRIORITY\tPILOT\tDRONE")
		for _, m := range snap.Missions() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				m.ID, m.Client, m.Location, m.Priority, orDash(m.AssignedPilot), orDash(m.AssignedDrone))
		}
	})
}

func withRoster(cmd *cobra.Command, fn func(*tabwriter.Writer, *fleet.Snapshot)) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
		}
	}()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	svc.Store.View(func(snap *fleet.Snapshot) { fn(w, snap) })
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
