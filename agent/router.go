package agent

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/skystride/droneops/core/audit"
	"github.com/skystride/droneops/core/conflict"
	"github.com/skystride/droneops/core/events"
	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/logger"
	"github.com/skystride/droneops/core/matching"
	"github.com/skystride/droneops/core/metrics"
	"github.com/skystride/droneops/core/model"
	"github.com/skystride/droneops/core/reassign"
)

// Agent routes operator messages to the allocation engines and renders plain
// text replies. It remembers the last suggested reassignment plans so the
// operator can confirm one by number.
type Agent struct {
	store    *fleet.Store
	match    matching.Engine
	reassign reassign.Engine
	log      logger.Logger
	sink     metrics.Sink

	mu             sync.Mutex
	pendingPlans   []reassign.SwapPlan
	pendingMission string
}

// New creates an Agent over the given store. A nil logger or sink falls back
// to the no-op implementations.
func New(store *fleet.Store, match matching.Engine, re reassign.Engine, log logger.Logger, sink metrics.Sink) *Agent {
	if log == nil {
		log = logger.Nop{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Agent{
		store:    store,
		match:    match,
		reassign: re,
		log:      log,
		sink:     sink,
	}
}

var (
	confirmAssignIDsRe = regexp.MustCompile(`(?i)\b([pd]\d+|prj\d+)\b`)
	confirmOptionRe    = regexp.MustCompile(`(?i)option\s+(\d+)`)
)

// Process handles one operator message. Confirmation commands are checked
// first, then general intent handling.
func (a *Agent) Process(ctx context.Context, message string) string {
	msg := strings.ToLower(strings.TrimSpace(message))
	switch msg {
	case "reload", "refresh", "reload data", "refresh data":
		if err := a.store.Reload(ctx); err != nil {
			return fmt.Sprintf("Reload failed: %v", err)
		}
		// Pending plans were computed against the replaced roster.
		a.mu.Lock()
		a.pendingPlans = nil
		a.pendingMission = ""
		a.mu.Unlock()
		return "Data reloaded. Pilots, drones and missions refreshed from the data source."
	}

	if strings.HasPrefix(msg, "confirm assign") {
		return a.confirmAssign(ctx, msg)
	}
	if strings.Contains(msg, "confirm reassignment") {
		return a.confirmReassignment(ctx, msg)
	}

	intent, params := DetectIntent(message)
	a.log.Debugw("intent detected", map[string]any{"intent": string(intent), "mission": params.MissionID})

	switch intent {
	case IntentQueryPilots:
		return a.queryPilots(params)
	case IntentQueryDrones:
		return a.queryDrones(params)
	case IntentQueryMissions:
		return a.queryMissions(params)
	case IntentAssign:
		return a.suggestAssignment(params)
	case IntentConflicts:
		return a.scanConflicts()
	case IntentUrgentReassign:
		return a.urgentReassign(params)
	case IntentUpdateStatus:
		return a.updateStatus(ctx, params)
	case IntentCancelMission:
		return a.cancelMission(ctx, params)
	case IntentUnassign:
		return a.unassign(ctx, params)
	case IntentResolveConflict:
		return a.resolveConflicts(params)
	case IntentHelp:
		return helpText
	default:
		return unknownText
	}
}

func (a *Agent) queryPilots(params Params) string {
	var results []model.Pilot
	a.store.View(func(s *fleet.Snapshot) {
		results = s.FilterPilots(params.Filters.pilotFilter())
	})
	if len(results) == 0 {
		return "No pilots found matching your criteria."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Pilots found (%d):\n", len(results))
	for _, p := range results {
		fmt.Fprintf(&b, "- %s (%s) | skills: %s | certs: %s | %s | %s\n",
			p.Name, p.ID, strings.Join(p.Skills, ", "),
			strings.Join(p.Certifications, ", "), p.Location, p.Status)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *Agent) queryDrones(params Params) string {
	var results []model.Drone
	a.store.View(func(s *fleet.Snapshot) {
		results = s.FilterDrones(params.Filters.droneFilter())
	})
	if len(results) == 0 {
		return "No drones found matching your criteria."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Drones found (%d):\n", len(results))
	for _, d := range results {
		line := fmt.Sprintf("- %s (%s) | capabilities: %s | %s | %s",
			d.Model, d.ID, strings.Join(d.Capabilities, ", "), d.Location, d.Status)
		if !d.MaintenanceDue.IsZero() {
			line += " | maintenance due " + model.FormatDate(d.MaintenanceDue)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *Agent) queryMissions(params Params) string {
	var results []model.Mission
	a.store.View(func(s *fleet.Snapshot) {
		results = s.FilterMissions(params.Filters.missionFilter())
	})
	if len(results) == 0 {
		return "No missions found matching your criteria."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Missions (%d):\n", len(results))
	for _, m := range results {
		pilot := m.AssignedPilot
		if pilot == "" {
			pilot = "unassigned"
		}
		drone := m.AssignedDrone
		if drone == "" {
			drone = "unassigned"
		}
		fmt.Fprintf(&b, "- %s | %s @ %s | skills: %s | %s to %s | priority %s | pilot %s | drone %s\n",
			m.ID, m.Client, m.Location, strings.Join(m.RequiredSkills, ", "),
			model.DisplayDate(m.StartDate), model.DisplayDate(m.EndDate),
			m.Priority, pilot, drone)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (a *Agent) suggestAssignment(params Params) string {
	if params.MissionID == "" {
		return "Please specify a mission ID, for example: assign best pilot and drone to PRJ001"
	}

	var (
		mission    model.Mission
		found      bool
		bestPilots []matching.PilotCandidate
		bestDrones []matching.DroneCandidate
	)
	a.store.View(func(s *fleet.Snapshot) {
		m, ok := s.FindMission(params.MissionID)
		if !ok {
			return
		}
		mission, found = *m, true
		bestPilots = a.match.FindBestPilots(s.Pilots(), mission, matching.DefaultTopN)
		bestDrones = a.match.FindBestDrones(s.Drones(), mission, matching.DefaultTopN)
	})
	if !found {
		return fmt.Sprintf("Mission %s not found.", params.MissionID)
	}

	a.recordMatchQuery(mission.ID, "pilot", bestPilots)
	a.recordDroneQuery(mission.ID, bestDrones)

	var b strings.Builder
	fmt.Fprintf(&b, "Best matches for %s (%s)\n", mission.ID, mission.Client)
	fmt.Fprintf(&b, "%s | skills: %s | certs: %s | priority %s\n\n",
		mission.Location, strings.Join(mission.RequiredSkills, ", "),
		strings.Join(mission.RequiredCerts, ", "), mission.Priority)

	b.WriteString("Top pilot candidates:\n")
	if len(bestPilots) == 0 {
		b.WriteString("  no available pilots found\n")
	}
	for i, c := range bestPilots {
		fmt.Fprintf(&b, "%d. %s (%s), score %.0f%% (skill %.0f%%, cert %.0f%%, location %.0f%%, availability %.0f%%)\n",
			i+1, c.Pilot.Name, c.Pilot.ID, c.Score*100,
			c.Breakdown.Skill*100, c.Breakdown.Cert*100,
			c.Breakdown.Location*100, c.Breakdown.Availability*100)
	}

	b.WriteString("\nTop drone candidates:\n")
	if len(bestDrones) == 0 {
		b.WriteString("  no available drones found\n")
	}
	for i, c := range bestDrones {
		fmt.Fprintf(&b, "%d. %s (%s), score %.0f%% (capability %.0f%%, location %.0f%%, maintenance %.0f%%)\n",
			i+1, c.Drone.Model, c.Drone.ID, c.Score*100,
			c.Breakdown.Capability*100, c.Breakdown.Location*100, c.Breakdown.Maintenance*100)
	}

	b.WriteString("\nType 'confirm assign <pilot_id> <drone_id> to <mission_id>' to execute.")
	return b.String()
}

func (a *Agent) scanConflicts() string {
	conflicts := a.detectConflicts()
	if len(conflicts) == 0 {
		return "No conflicts detected. All current assignments look clean."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Conflicts detected (%d):\n", len(conflicts))
	for _, c := range conflicts {
		fmt.Fprintf(&b, "- %s\n", c.String())
	}
	b.WriteString("\nTo resolve, try:\n")
	b.WriteString("- cancel mission PRJ001\n")
	b.WriteString("- unassign P001\n")
	b.WriteString("- resolve conflict for PRJ001\n")
	b.WriteString("- mark Arjun as Available")
	return b.String()
}

func (a *Agent) detectConflicts() []conflict.Conflict {
	var conflicts []conflict.Conflict
	a.store.View(func(s *fleet.Snapshot) {
		conflicts = conflict.DetectAll(s.Pilots(), s.Drones(), s.Missions())
	})
	breakdown := map[string]int{}
	critical, warning := 0, 0
	for _, c := range conflicts {
		breakdown[string(c.Type)]++
		switch c.Severity {
		case conflict.SeverityCritical:
			critical++
		case conflict.SeverityWarning:
			warning++
		}
	}
	if err := a.sink.RecordConflictScan(metrics.ConflictScanEvent{
		Total:    len(conflicts),
		Critical: critical,
		Warning:  warning,
		ByType:   breakdown,
		Time:     time.Now(),
	}); err != nil {
		a.log.Warnf("record conflict scan: %v", err)
	}
	if bus := a.store.Bus(); bus != nil {
		bus.Publish(events.ConflictScanRun{Total: len(conflicts), Critical: critical})
	}
	return conflicts
}

func (a *Agent) resolveConflicts(params Params) string {
	conflicts := a.detectConflicts()
	if params.MissionID != "" {
		var relevant []conflict.Conflict
		for _, c := range conflicts {
			if strings.Contains(c.MissionID, params.MissionID) {
				relevant = append(relevant, c)
			}
		}
		conflicts = relevant
	}
	if len(conflicts) == 0 {
		if params.MissionID != "" {
			return fmt.Sprintf("No conflicts found for %s.", params.MissionID)
		}
		return "No conflicts found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Conflict resolution (%d found):\n", len(conflicts))
	for i, c := range conflicts {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n   %s\n", i+1, c.Type, c.Severity, c.Description)
		switch c.Type {
		case conflict.DoubleBooking:
			fmt.Fprintf(&b, "   Fix: cancel one of the overlapping assignments, e.g. 'cancel mission %s' or 'unassign %s'\n",
				firstMissionOf(c), c.EntityID)
		case conflict.SkillMismatch:
			fmt.Fprintf(&b, "   Fix: 'cancel mission %s' then 'assign best pilot to %s'\n", c.MissionID, c.MissionID)
		case conflict.Maintenance:
			fmt.Fprintf(&b, "   Fix: swap the drone: 'cancel mission %s' then 'assign best drone to %s'\n", c.MissionID, c.MissionID)
		case conflict.LocationMismatch:
			fmt.Fprintf(&b, "   Fix: reassign to local resources: 'cancel mission %s' then 'assign best pilot to %s'\n", c.MissionID, c.MissionID)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// firstMissionOf splits pairwise "A & B" mission references.
func firstMissionOf(c conflict.Conflict) string {
	if i := strings.Index(c.MissionID, " & "); i >= 0 {
		return c.MissionID[:i]
	}
	return c.MissionID
}

func (a *Agent) urgentReassign(params Params) string {
	var (
		mission model.Mission
		found   bool
		plans   []reassign.SwapPlan
	)
	a.store.View(func(s *fleet.Snapshot) {
		if params.MissionID != "" {
			if m, ok := s.FindMission(params.MissionID); ok {
				mission, found = *m, true
			}
			return
		}
		// No id given: pick the first unstaffed Urgent mission.
		for _, m := range s.FilterMissions(fleet.MissionFilter{Priority: model.PriorityUrgent, Unstaffed: true}) {
			mission, found = m, true
			return
		}
	})
	if !found {
		if params.MissionID != "" {
			return fmt.Sprintf("Mission %s not found.", params.MissionID)
		}
		return "Please specify the urgent mission ID, for example: urgent reassignment for PRJ002"
	}

	a.store.View(func(s *fleet.Snapshot) {
		plans = a.reassign.Suggest(mission, s.Pilots(), s.Drones(), s.Missions())
	})

	displaced := false
	risk := 0
	if len(plans) > 0 {
		displaced = plans[0].IsSwap()
		risk = plans[0].RiskScore
	}
	if err := a.sink.RecordReassignment(metrics.ReassignmentEvent{
		MissionID: mission.ID,
		Plans:     len(plans),
		Executed:  false,
		RiskScore: risk,
		Displaced: displaced,
		Time:      time.Now(),
	}); err != nil {
		a.log.Warnf("record reassignment: %v", err)
	}

	if len(plans) == 0 {
		return fmt.Sprintf("No reassignment options for %s: no available or swappable pilots could be found.", mission.ID)
	}

	a.mu.Lock()
	a.pendingPlans = plans
	a.pendingMission = mission.ID
	a.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Urgent reassignment plans for %s\n", mission.ID)
	fmt.Fprintf(&b, "Mission: %s @ %s | skills: %s | %s to %s\n",
		mission.Client, mission.Location, strings.Join(mission.RequiredSkills, ", "),
		model.DisplayDate(mission.StartDate), model.DisplayDate(mission.EndDate))
	for i, plan := range plans {
		fmt.Fprintf(&b, "\nOption %d:\n%s\n", i+1, plan.Summary())
	}
	b.WriteString("\nType 'confirm reassignment option <number>' to execute.")
	return b.String()
}

func (a *Agent) updateStatus(ctx context.Context, params Params) string {
	if params.Name == "" {
		return "Please specify who to update, for example: mark Arjun as On Leave"
	}
	if params.NewStatus == "" {
		return fmt.Sprintf("Please specify the new status, for example: mark %s as Available", params.Name)
	}

	var pilotID, pilotName, oldStatus string
	a.store.View(func(s *fleet.Snapshot) {
		if p, ok := s.FindPilot(params.Name); ok {
			pilotID, pilotName, oldStatus = p.ID, p.Name, string(p.Status)
		}
	})
	if pilotID != "" {
		if err := a.store.SetPilotStatus(ctx, pilotID, model.PilotStatus(params.NewStatus)); err != nil {
			return fmt.Sprintf("Status update failed: %v", err)
		}
		a.save(ctx)
		return fmt.Sprintf("Status updated: %s (%s) %s to %s. Decision logged.",
			pilotName, pilotID, oldStatus, params.NewStatus)
	}

	var droneID, droneModel, oldDroneStatus string
	a.store.View(func(s *fleet.Snapshot) {
		if d, ok := s.FindDrone(params.Name); ok {
			droneID, droneModel, oldDroneStatus = d.ID, d.Model, string(d.Status)
		}
	})
	if droneID != "" {
		if err := a.store.SetDroneStatus(ctx, droneID, model.DroneStatus(params.NewStatus)); err != nil {
			return fmt.Sprintf("Status update failed: %v", err)
		}
		a.save(ctx)
		return fmt.Sprintf("Drone status updated: %s (%s) %s to %s.",
			droneModel, droneID, oldDroneStatus, params.NewStatus)
	}

	return fmt.Sprintf("Could not find pilot or drone matching %q.", params.Name)
}

func (a *Agent) cancelMission(ctx context.Context, params Params) string {
	if params.MissionID == "" {
		return "Please specify the mission to cancel, for example: cancel mission PRJ001"
	}
	var missionID string
	a.store.View(func(s *fleet.Snapshot) {
		if m, ok := s.FindMission(params.MissionID); ok {
			missionID = m.ID
		}
	})
	if missionID == "" {
		return fmt.Sprintf("Mission %s not found.", params.MissionID)
	}

	var hadAssignments bool
	a.store.View(func(s *fleet.Snapshot) {
		m, _ := s.Mission(missionID)
		hadAssignments = m.AssignedPilot != "" || m.AssignedDrone != ""
	})
	if !hadAssignments {
		return fmt.Sprintf("Mission %s has no active assignments to cancel.", missionID)
	}

	if err := a.store.CancelMission(ctx, missionID); err != nil {
		return fmt.Sprintf("Cancel failed: %v", err)
	}
	a.save(ctx)
	return fmt.Sprintf("Mission %s assignments cleared. Decision logged, data synced.", missionID)
}

func (a *Agent) unassign(ctx context.Context, params Params) string {
	var changes []string

	pilotRef := params.PilotID
	if pilotRef == "" {
		pilotRef = params.Name
	}
	if pilotRef != "" {
		var id, name, mission string
		var idle bool
		a.store.View(func(s *fleet.Snapshot) {
			if p, ok := s.FindPilot(pilotRef); ok {
				id, name, mission = p.ID, p.Name, p.CurrentAssignment
				idle = p.Status != model.PilotAssigned && mission == ""
			}
		})
		if id != "" {
			if idle {
				return fmt.Sprintf("Pilot %s has no assignment to release.", name)
			}
			if err := a.store.UnassignPilot(ctx, id); err != nil {
				return fmt.Sprintf("Unassign failed: %v", err)
			}
			changes = append(changes, fmt.Sprintf("pilot %s (%s) released from %s", name, id, mission))
		}
	}

	droneRef := params.DroneID
	if droneRef == "" && len(changes) == 0 {
		droneRef = params.Name
	}
	if droneRef != "" {
		var id, dmodel, mission string
		var idle bool
		a.store.View(func(s *fleet.Snapshot) {
			if d, ok := s.FindDrone(droneRef); ok {
				id, dmodel, mission = d.ID, d.Model, d.CurrentAssignment
				idle = d.Status != model.DroneAssigned && mission == ""
			}
		})
		if id != "" {
			if idle {
				return fmt.Sprintf("Drone %s has no assignment to release.", dmodel)
			}
			if err := a.store.UnassignDrone(ctx, id); err != nil {
				return fmt.Sprintf("Unassign failed: %v", err)
			}
			changes = append(changes, fmt.Sprintf("drone %s (%s) released from %s", dmodel, id, mission))
		}
	}

	if len(changes) == 0 {
		ref := params.PilotID
		if ref == "" {
			ref = params.DroneID
		}
		if ref == "" {
			ref = params.Name
		}
		return fmt.Sprintf("Could not find pilot or drone matching %q.", ref)
	}

	a.save(ctx)
	return "Unassignment complete: " + strings.Join(changes, "; ") + ". Decision logged, data synced."
}

func (a *Agent) confirmAssign(ctx context.Context, msg string) string {
	ids := confirmAssignIDsRe.FindAllString(msg, -1)
	if len(ids) < 3 {
		return "Usage: confirm assign <pilot_id> <drone_id> to <mission_id>"
	}
	pilotID := strings.ToUpper(ids[0])
	droneID := strings.ToUpper(ids[1])
	missionID := strings.ToUpper(ids[2])

	var pilotName, droneModel, client string
	a.store.View(func(s *fleet.Snapshot) {
		if p, ok := s.Pilot(pilotID); ok {
			pilotName = p.Name
		}
		if d, ok := s.Drone(droneID); ok {
			droneModel = d.Model
		}
		if m, ok := s.Mission(missionID); ok {
			client = m.Client
		}
	})
	var missing []string
	if pilotName == "" {
		missing = append(missing, "pilot "+pilotID)
	}
	if droneModel == "" {
		missing = append(missing, "drone "+droneID)
	}
	if client == "" {
		missing = append(missing, "mission "+missionID)
	}
	if len(missing) > 0 {
		return "Not found: " + strings.Join(missing, ", ")
	}

	if err := a.store.AssignPilot(ctx, missionID, pilotID); err != nil {
		return fmt.Sprintf("Assignment failed: %v", err)
	}
	if err := a.store.AssignDrone(ctx, missionID, droneID); err != nil {
		return fmt.Sprintf("Assignment failed: %v", err)
	}
	a.save(ctx)
	return fmt.Sprintf("Assignment confirmed: %s (%s) and %s (%s) to %s (%s). Decision logged, data synced.",
		pilotName, pilotID, droneModel, droneID, missionID, client)
}

func (a *Agent) confirmReassignment(ctx context.Context, msg string) string {
	m := confirmOptionRe.FindStringSubmatch(msg)
	if m == nil {
		return "Please specify which option, for example: confirm reassignment option 1"
	}
	idx, _ := strconv.Atoi(m[1])
	idx--

	a.mu.Lock()
	plans := a.pendingPlans
	missionID := a.pendingMission
	a.mu.Unlock()

	if len(plans) == 0 {
		return "No pending reassignment plans. Run an urgent reassignment first."
	}
	if idx < 0 || idx >= len(plans) {
		return fmt.Sprintf("Invalid option. Choose between 1 and %d.", len(plans))
	}
	plan := plans[idx]

	var changes []string
	err := a.store.Mutate(ctx, audit.Record{
		Action:    audit.ActionReassignment,
		EntityID:  planEntityID(plan),
		MissionID: missionID,
		Detail:    fmt.Sprintf("plan %s risk %d/100", plan.ID, plan.RiskScore),
	}, func(s *fleet.Snapshot) error {
		var execErr error
		changes, execErr = reassign.Execute(plan, s)
		return execErr
	})
	if err != nil {
		return fmt.Sprintf("Reassignment failed: %v", err)
	}

	a.mu.Lock()
	a.pendingPlans = nil
	a.pendingMission = ""
	a.mu.Unlock()

	if err := a.sink.RecordReassignment(metrics.ReassignmentEvent{
		MissionID: missionID,
		Plans:     1,
		Executed:  true,
		RiskScore: plan.RiskScore,
		Displaced: plan.IsSwap(),
		Time:      time.Now(),
	}); err != nil {
		a.log.Warnf("record reassignment: %v", err)
	}
	if bus := a.store.Bus(); bus != nil {
		bus.Publish(events.ReassignmentExecuted{
			MissionID: missionID,
			PlanID:    plan.ID,
			RiskScore: plan.RiskScore,
		})
	}
	a.save(ctx)

	return fmt.Sprintf("Reassignment executed:\n%s\nRisk score %d/100. Decision logged, data synced.",
		strings.Join(changes, "\n"), plan.RiskScore)
}

func planEntityID(plan reassign.SwapPlan) string {
	if plan.SuggestedPilot != nil {
		return plan.SuggestedPilot.ID
	}
	if plan.SuggestedDrone != nil {
		return plan.SuggestedDrone.ID
	}
	return ""
}

func (a *Agent) save(ctx context.Context) {
	if err := a.store.Save(ctx); err != nil {
		a.log.Errorf("save roster: %v", err)
	}
}

func (a *Agent) recordMatchQuery(missionID, kind string, candidates []matching.PilotCandidate) {
	best := 0.0
	if len(candidates) > 0 {
		best = candidates[0].Score
	}
	if err := a.sink.RecordMatchQuery(metrics.MatchQueryEvent{
		MissionID:  missionID,
		Kind:       kind,
		Candidates: len(candidates),
		BestScore:  best,
		Time:       time.Now(),
	}); err != nil {
		a.log.Warnf("record match query: %v", err)
	}
}

func (a *Agent) recordDroneQuery(missionID string, candidates []matching.DroneCandidate) {
	best := 0.0
	if len(candidates) > 0 {
		best = candidates[0].Score
	}
	if err := a.sink.RecordMatchQuery(metrics.MatchQueryEvent{
		MissionID:  missionID,
		Kind:       "drone",
		Candidates: len(candidates),
		BestScore:  best,
		Time:       time.Now(),
	}); err != nil {
		a.log.Warnf("record match query: %v", err)
	}
}

const helpText = `Drone operations coordinator. Available commands:

Pilots:    show available pilots in Bangalore
           show pilots with thermal certification
Drones:    show available drones in Mumbai
Missions:  show all missions
Assign:    assign best pilot and drone to PRJ001
           confirm assign P001 D001 to PRJ001
Conflicts: check for conflicts
Resolve:   resolve conflict for PRJ001
Cancel:    cancel mission PRJ001
Unassign:  unassign P001, free up D002
Urgent:    urgent reassignment for PRJ002
           confirm reassignment option 1
Update:    mark Arjun as On Leave
Reload:    reload data`

const unknownText = `I'm not sure what you're asking. Try one of these:
- show available pilots
- assign best pilot and drone to PRJ001
- check for conflicts
- cancel mission PRJ001
- urgent reassignment for PRJ002
- mark Arjun as On Leave
- help`
