package survey

import (
	"sort"
	"strconv"
	"strings"

	"github.com/trezcool/mdpdash/core"
)

// Score class thresholds for the qualitative buckets shown on the dashboard.
const (
	ScoreClassExcellent = "excellent"
	ScoreClassGood      = "good"
	ScoreClassFair      = "fair"
	ScoreClassPoor      = "poor"
)

// ScoreClass buckets an overall score into its qualitative class.
func ScoreClass(score float64) string {
	switch {
	case score >= 4.5:
		return ScoreClassExcellent
	case score >= 4.0:
		return ScoreClassGood
	case score >= 3.0:
		return ScoreClassFair
	default:
		return ScoreClassPoor
	}
}

type (
	// Filter restricts a Report's view; all dimensions are optional and
	// combined with AND. Matching runs against raw stored values except
	// Manager, which compares normalized names.
	Filter struct {
		MDP      string `query:"mdp"`
		Function string `query:"function"`
		Manager  string `query:"manager"`
		Rotation string `query:"rotation"`
		// Search does a case-insensitive substring match on one of
		// SurveyResponse.MDPName, .Manager or .FunctionName.
		Search string `query:"search"`
	}

	// FilterOptions are the distinct values of each filter dimension,
	// derived from the full collection.
	FilterOptions struct {
		MDPs      []string `json:"mdps"`
		Functions []string `json:"functions"`
		Managers  []string `json:"managers"` // normalized
		Rotations []int    `json:"rotations"`
	}

	// Stats aggregates the currently filtered view. AverageOverall and
	// LatestRotation hold "--" when the view is empty.
	Stats struct {
		Count          int    `json:"count"`
		AverageOverall string `json:"averageOverall"`
		LatestRotation string `json:"latestRotation"`
	}

	// Report is the admin dashboard view-model: the full loaded collection
	// plus a filtered view recomputed whenever the filter changes. It is
	// built per request; there is no shared instance.
	Report struct {
		all      []SurveyResponse
		filter   Filter
		filtered []SurveyResponse
	}
)

func (f *Filter) IsEmpty() bool {
	return f.MDP == "" && f.Function == "" && f.Manager == "" && f.Rotation == "" && f.Search == ""
}

func (f *Filter) Clean() {
	f.MDP = core.CleanString(f.MDP)
	f.Function = core.CleanString(f.Function)
	f.Manager = core.CleanString(f.Manager)
	f.Rotation = core.CleanString(f.Rotation)
	f.Search = core.CleanString(f.Search)
}

func NewReport(responses []SurveyResponse) *Report {
	return &Report{all: responses, filtered: responses}
}

// SetFilter applies a filter and recomputes the view.
func (r *Report) SetFilter(f Filter) {
	f.Clean()
	r.filter = f
	if f.IsEmpty() {
		r.filtered = r.all
		return
	}

	filtered := make([]SurveyResponse, 0, len(r.all))
	for _, resp := range r.all {
		if matches(resp, f) {
			filtered = append(filtered, resp)
		}
	}
	r.filtered = filtered
}

func (r *Report) All() []SurveyResponse      { return r.all }
func (r *Report) Filtered() []SurveyResponse { return r.filtered }

func matches(resp SurveyResponse, f Filter) bool {
	if f.MDP != "" && resp.MDPName != f.MDP {
		return false
	}
	if f.Function != "" && resp.FunctionName != f.Function {
		return false
	}
	if f.Manager != "" && NormalizeName(resp.Manager) != f.Manager {
		return false
	}
	if f.Rotation != "" && strconv.Itoa(resp.Rotation) != f.Rotation {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(resp.MDPName), search) &&
			!strings.Contains(strings.ToLower(resp.Manager), search) &&
			!strings.Contains(strings.ToLower(resp.FunctionName), search) {
			return false
		}
	}
	return true
}

// Options derives the filter option sets from the full collection,
// each distinct and sorted (rotations numerically, the rest lexically).
func (r *Report) Options() FilterOptions {
	mdps := make(map[string]bool)
	functions := make(map[string]bool)
	managers := make(map[string]bool)
	rotations := make(map[int]bool)
	for _, resp := range r.all {
		mdps[resp.MDPName] = true
		functions[resp.FunctionName] = true
		managers[NormalizeName(resp.Manager)] = true
		rotations[resp.Rotation] = true
	}

	opts := FilterOptions{
		MDPs:      sortedKeys(mdps),
		Functions: sortedKeys(functions),
		Managers:  sortedKeys(managers),
		Rotations: make([]int, 0, len(rotations)),
	}
	for rot := range rotations {
		opts.Rotations = append(opts.Rotations, rot)
	}
	sort.Ints(opts.Rotations)
	return opts
}

// Stats aggregates the current filtered view.
func (r *Report) Stats() Stats {
	stats := Stats{
		Count:          len(r.filtered),
		AverageOverall: "--",
		LatestRotation: "--",
	}
	if len(r.filtered) == 0 {
		return stats
	}

	var sum float64
	var latest int
	for i := range r.filtered {
		sum += r.filtered[i].DisplayOverall()
		if r.filtered[i].Rotation > latest {
			latest = r.filtered[i].Rotation
		}
	}
	stats.AverageOverall = strconv.FormatFloat(sum/float64(len(r.filtered)), 'f', 2, 64)
	stats.LatestRotation = strconv.Itoa(latest)
	return stats
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
