// Package agent implements the rule-based coordinator: a deterministic
// keyword and regex intent parser routing operator messages to the
// allocation engines. No language model involved; it is fast and works
// offline.
package agent

import (
	"regexp"
	"strings"

	"github.com/skystride/droneops/core/fleet"
	"github.com/skystride/droneops/core/model"
)

// Intent identifies what the operator asked for.
type Intent string

const (
	IntentQueryPilots     Intent = "query_pilots"
	IntentQueryDrones     Intent = "query_drones"
	IntentQueryMissions   Intent = "query_missions"
	IntentAssign          Intent = "assign"
	IntentConflicts       Intent = "conflicts"
	IntentUrgentReassign  Intent = "urgent_reassign"
	IntentUpdateStatus    Intent = "update_status"
	IntentCancelMission   Intent = "cancel_mission"
	IntentUnassign        Intent = "unassign"
	IntentResolveConflict Intent = "resolve_conflict"
	IntentHelp            Intent = "help"
	IntentUnknown         Intent = "unknown"
)

// Params carries everything extracted from the message.
type Params struct {
	Raw       string
	MissionID string
	PilotID   string
	DroneID   string
	Name      string
	NewStatus string
	Filters   QueryFilters
}

// QueryFilters is the typed filter set recognized in roster queries.
type QueryFilters struct {
	Location string
	Status   string
	Skills   []string
	Certs    []string
}

var (
	missionIDRe = regexp.MustCompile(`(?i)\b((?:prj|mission|m)\d+)\b`)
	pilotIDRe   = regexp.MustCompile(`(?i)\b(p\d+)\b`)
	droneIDRe   = regexp.MustCompile(`(?i)\b(d\d+)\b`)
	nameRes     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)pilot\s+(\w+)`),
		regexp.MustCompile(`(?i)mark\s+(\w+)`),
		regexp.MustCompile(`(?i)update\s+(\w+)`),
	}
)

// Vocabulary for filter extraction. Free text beyond these is ignored rather
// than guessed at.
var (
	knownCities = []string{"bangalore", "mumbai", "delhi", "chennai", "hyderabad", "pune", "kolkata"}
	knownSkills = []string{"mapping", "survey", "inspection", "thermal", "lidar", "rgb", "photogrammetry"}
	knownCerts  = []string{"dgca", "night ops", "beyond vlos", "bvlos"}
)

func anyKeyword(msg string, kws ...string) bool {
	for _, kw := range kws {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// DetectIntent parses the operator message into an intent plus extracted
// parameters. Checks are ordered most-specific first; the first match wins.
func DetectIntent(message string) (Intent, Params) {
	msg := strings.ToLower(strings.TrimSpace(message))
	params := Params{Raw: message}

	if anyKeyword(msg, "cancel mission", "cancel assignment", "unassign mission",
		"remove assignment", "clear assignment", "abort mission") {
		params.MissionID = extractID(missionIDRe, msg)
		return IntentCancelMission, params
	}

	if anyKeyword(msg, "unassign", "free up", "release") {
		params.Name = extractName(msg)
		params.PilotID = extractID(pilotIDRe, msg)
		params.DroneID = extractID(droneIDRe, msg)
		return IntentUnassign, params
	}

	if anyKeyword(msg, "resolve", "fix conflict", "handle conflict") {
		params.MissionID = extractID(missionIDRe, msg)
		return IntentResolveConflict, params
	}

	if anyKeyword(msg, "urgent", "reassign", "swap", "emergency") {
		params.MissionID = extractID(missionIDRe, msg)
		return IntentUrgentReassign, params
	}

	if anyKeyword(msg, "conflict", "overlap", "double book", "mismatch", "issue") {
		return IntentConflicts, params
	}

	if anyKeyword(msg, "assign", "match", "best pilot", "best drone", "recommend") {
		params.MissionID = extractID(missionIDRe, msg)
		return IntentAssign, params
	}

	if anyKeyword(msg, "mark", "update", "set", "change status") {
		params.Name = extractName(msg)
		for _, status := range []string{"on leave", "available", "assigned", "inactive", "maintenance"} {
			if strings.Contains(msg, status) {
				params.NewStatus = titleCase(status)
				break
			}
		}
		return IntentUpdateStatus, params
	}

	if anyKeyword(msg, "pilot", "roster") {
		params.Filters = extractQueryFilters(msg)
		return IntentQueryPilots, params
	}

	if anyKeyword(msg, "drone", "fleet", "uav") {
		params.Filters = extractQueryFilters(msg)
		return IntentQueryDrones, params
	}

	if anyKeyword(msg, "mission", "project", "prj") {
		params.Filters = extractQueryFilters(msg)
		return IntentQueryMissions, params
	}

	if anyKeyword(msg, "help", "what can you", "how to", "commands") {
		return IntentHelp, params
	}

	return IntentUnknown, params
}

func extractID(re *regexp.Regexp, msg string) string {
	if m := re.FindStringSubmatch(msg); m != nil {
		return strings.ToUpper(m[1])
	}
	return ""
}

var nonNameWords = map[string]bool{
	"as": true, "to": true, "the": true, "status": true,
	"a": true, "an": true, "is": true,
}

func extractName(msg string) string {
	for _, re := range nameRes {
		if m := re.FindStringSubmatch(msg); m != nil {
			if !nonNameWords[strings.ToLower(m[1])] {
				return m[1]
			}
		}
	}
	return ""
}

func extractQueryFilters(msg string) QueryFilters {
	var f QueryFilters
	for _, city := range knownCities {
		if strings.Contains(msg, city) {
			f.Location = titleCase(city)
			break
		}
	}
	for _, skill := range knownSkills {
		if strings.Contains(msg, skill) {
			f.Skills = append(f.Skills, titleCase(skill))
		}
	}
	for _, cert := range knownCerts {
		if strings.Contains(msg, cert) {
			if cert == "dgca" {
				f.Certs = append(f.Certs, strings.ToUpper(cert))
			} else {
				f.Certs = append(f.Certs, titleCase(cert))
			}
		}
	}
	for _, status := range []string{"available", "assigned", "on leave", "maintenance", "inactive"} {
		if strings.Contains(msg, status) {
			f.Status = titleCase(status)
			break
		}
	}
	return f
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// pilotFilter converts the extracted filters to the fleet filter type.
func (f QueryFilters) pilotFilter() fleet.PilotFilter {
	return fleet.PilotFilter{
		Location: f.Location,
		Status:   model.PilotStatus(f.Status),
		Skills:   f.Skills,
		Certs:    f.Certs,
	}
}

func (f QueryFilters) droneFilter() fleet.DroneFilter {
	return fleet.DroneFilter{
		Location:     f.Location,
		Status:       model.DroneStatus(f.Status),
		Capabilities: f.Skills,
	}
}

func (f QueryFilters) missionFilter() fleet.MissionFilter {
	return fleet.MissionFilter{Location: f.Location}
}
