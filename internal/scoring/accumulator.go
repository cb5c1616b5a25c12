package scoring

import "fmt"

// HistoryEntry records one applied delta for diagnostics. History is
// append-only and never read back by the engine itself.
type HistoryEntry struct {
	AxisADelta float64 `json:"axisADelta"`
	AxisBDelta float64 `json:"axisBDelta"`
	Reason     string  `json:"reason"`
}

// State carries the running axis totals for one respondent session
// together with the currently selected value(s) per field. Totals always
// equal the sum of weights of the current selections, so removing a value
// and re-adding it reproduces the exact same totals.
type State struct {
	AxisA    float64
	AxisB    float64
	Selected map[string][]string
	History  []HistoryEntry
}

// NewState returns an empty score state.
func NewState() State {
	return State{Selected: map[string][]string{}}
}

func (s State) clone() State {
	cp := State{
		AxisA:    s.AxisA,
		AxisB:    s.AxisB,
		Selected: make(map[string][]string, len(s.Selected)),
		History:  append([]HistoryEntry(nil), s.History...),
	}
	for f, vals := range s.Selected {
		cp.Selected[f] = append([]string(nil), vals...)
	}
	return cp
}

func (s *State) add(field, value string, w Weight) {
	s.AxisA += w.AxisA
	s.AxisB += w.AxisB
	s.Selected[field] = append(s.Selected[field], value)
	s.History = append(s.History, HistoryEntry{
		AxisADelta: w.AxisA,
		AxisBDelta: w.AxisB,
		Reason:     fmt.Sprintf("%s: +%s", field, value),
	})
}

func (s *State) remove(field, value string, w Weight) {
	s.AxisA -= w.AxisA
	s.AxisB -= w.AxisB
	vals := s.Selected[field]
	for i, v := range vals {
		if v == value {
			s.Selected[field] = append(vals[:i], vals[i+1:]...)
			break
		}
	}
	s.History = append(s.History, HistoryEntry{
		AxisADelta: -w.AxisA,
		AxisBDelta: -w.AxisB,
		Reason:     fmt.Sprintf("%s: -%s", field, value),
	})
}

func (s State) isSelected(field, value string) bool {
	for _, v := range s.Selected[field] {
		if v == value {
			return true
		}
	}
	return false
}

// Accumulator applies answer changes against a weight table. It holds
// configuration only; all per-respondent state lives in State.
type Accumulator struct {
	weights WeightTable
	fields  map[string]FieldRule
}

// NewAccumulator builds an accumulator over the given rule set.
func NewAccumulator(weights WeightTable, fields map[string]FieldRule) *Accumulator {
	return &Accumulator{weights: weights, fields: fields}
}

// Default returns an accumulator over the production rule set.
func Default() *Accumulator {
	return NewAccumulator(DefaultWeights, DefaultFields)
}

// Apply records one answer change on a field and returns the updated
// state. prev is the value being replaced ("" when the field was empty),
// next the newly chosen value ("" to clear the field).
//
// For bounded multi-select fields, choosing an already-selected value
// toggles it off; selecting beyond the field's capacity returns the state
// unchanged and ok=false. All other inputs succeed: values missing from
// the weight table count as zero weight rather than erroring.
func (a *Accumulator) Apply(st State, field, prev, next string) (State, bool) {
	rule, known := a.fields[field]
	if !known {
		rule = FieldRule{Kind: Exclusive}
	}

	if rule.Kind == BoundedSet {
		return a.applyBounded(st, field, prev, next, rule.Max)
	}
	return a.applyExclusive(st, field, prev, next), true
}

// applyExclusive replaces the field's single selection in one step, so a
// caller observing only before/after states never sees both weights
// counted at once.
func (a *Accumulator) applyExclusive(st State, field, prev, next string) State {
	out := st.clone()
	if prev != "" {
		out.remove(field, prev, a.weights.Lookup(field, prev))
	}
	if next != "" && next != prev {
		out.add(field, next, a.weights.Lookup(field, next))
	}
	return out
}

func (a *Accumulator) applyBounded(st State, field, prev, next string, max int) (State, bool) {
	// Toggle: re-selecting a held value deselects it.
	if next != "" && prev == "" && st.isSelected(field, next) {
		out := st.clone()
		out.remove(field, next, a.weights.Lookup(field, next))
		return out, true
	}

	adding := next != "" && prev == ""
	if adding && len(st.Selected[field]) >= max {
		return st, false
	}

	out := st.clone()
	if prev != "" {
		out.remove(field, prev, a.weights.Lookup(field, prev))
	}
	if next != "" {
		out.add(field, next, a.weights.Lookup(field, next))
	}
	return out, true
}
