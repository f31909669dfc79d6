package organizer

import (
	"sort"
)

// Label names the folder a file is relocated into.
type Label string

// NoExtensionLabel is the label for files whose name carries no extension.
const NoExtensionLabel Label = "no_extension"

// Action tags what happened to a single file.
type Action string

const (
	ActionSimulated Action = "simulated"
	ActionMoved     Action = "moved"
	ActionSkipped   Action = "skipped"
	ActionFailed    Action = "failed"
)

// Counts reports whether the action contributes to Result.Processed.
func (a Action) Counts() bool {
	return a == ActionMoved || a == ActionSimulated
}

// Outcome describes the processing of one file.
type Outcome struct {
	Source      string
	Destination string
	Label       Label
	Action      Action
	Size        int64
	Reason      string
	Err         error
}

// Options controls a single organize run.
type Options struct {
	Recursive        bool
	DryRun           bool
	KeepTopLevel     bool
	SkipLabelFolders bool
	StopOnError      bool
	// Exclude lists files (for example the active log file) that must stay put.
	Exclude []string
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{KeepTopLevel: true, SkipLabelFolders: true}
}

// Result aggregates the outcomes of an organize run.
type Result struct {
	DryRun    bool
	Scanned   int
	Processed int
	Skipped   int
	Failed    int
	Outcomes  []Outcome
}

func (r *Result) record(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	switch {
	case outcome.Action.Counts():
		r.Processed++
	case outcome.Action == ActionSkipped:
		r.Skipped++
	case outcome.Action == ActionFailed:
		r.Failed++
	}
}

// LabelSummary totals the processed files that landed in one label folder.
type LabelSummary struct {
	Label Label
	Files int
	Bytes int64
}

// Summary groups processed outcomes by label, ordered by label name.
func (r Result) Summary() []LabelSummary {
	byLabel := make(map[Label]*LabelSummary)
	for _, outcome := range r.Outcomes {
		if !outcome.Action.Counts() {
			continue
		}
		entry, ok := byLabel[outcome.Label]
		if !ok {
			entry = &LabelSummary{Label: outcome.Label}
			byLabel[outcome.Label] = entry
		}
		entry.Files++
		entry.Bytes += outcome.Size
	}
	summary := make([]LabelSummary, 0, len(byLabel))
	for _, entry := range byLabel {
		summary = append(summary, *entry)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Label < summary[j].Label })
	return summary
}

// Failures returns the outcomes whose move failed.
func (r Result) Failures() []Outcome {
	var failed []Outcome
	for _, outcome := range r.Outcomes {
		if outcome.Action == ActionFailed {
			failed = append(failed, outcome)
		}
	}
	return failed
}
