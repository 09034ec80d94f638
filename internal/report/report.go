package report

import (
	"fmt"
	"go/token"
	"sync"

	"github.com/sirkon/checkful/internal/chainrules"
)

// Engine collects advisory findings discovered during analysis.
type Engine struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single diagnostic entry.
type Report struct {
	Phase    Phase
	RuleCode chainrules.Rule
	Pos      token.Pos
	Message  string
	Details  any
}

// Phase marks the analysis stage where a report was generated.
type Phase int

const (
	_             Phase = iota
	PhaseClassify       // chain classification
	PhaseCompare        // comparability verdicts
	PhaseSuppress       // nil-dereference suppression decisions
)

func (p Phase) String() string {
	switch p {
	case PhaseClassify:
		return "classify"
	case PhaseCompare:
		return "compare"
	case PhaseSuppress:
		return "suppress"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// PhaseEngine binds an Engine to a fixed phase.
// It is used during an entire analysis pass to record findings
// without specifying the phase repeatedly.
type PhaseEngine struct {
	parent *Engine
	phase  Phase
}

// Phase returns a pointer to a phase-bound engine that automatically
// sets the given phase for all reports produced through it.
func (r *Engine) Phase(p Phase) *PhaseEngine {
	return &PhaseEngine{parent: r, phase: p}
}

// Report adds a new record to the engine.
func (r *Engine) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new finding under the bound phase.
// It accepts a chainrules.Rule, human-readable message, and source position.
func (rp *PhaseEngine) Report(rule chainrules.Rule, message string, pos token.Pos) {
	if message == "" {
		message = rule.Description()
	}
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		Message:  message,
		Pos:      pos,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Engine) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// PrintSummary prints all collected reports in a compact, human-readable form.
func (r *Engine) PrintSummary(fset *token.FileSet) {
	for _, rep := range r.Reports() {
		pos := fset.Position(rep.Pos)
		fmt.Printf("[%s] %s — %s (%s:%d)\n",
			rep.Phase,
			rep.RuleCode,
			rep.Message,
			pos.Filename,
			pos.Line,
		)
	}
}
