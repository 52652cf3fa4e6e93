// Package puzzle sequences the three puzzle widgets.
//
// The Manager owns the completion set and the current puzzle. Widgets report
// success with a CompletedMsg; the Manager answers with a Result that may carry
// a pending Transition. The caller schedules the transition (the TUI uses
// tea.Tick) and hands it back to Apply when the delay expires. Transitions
// superseded by a newer completion are dropped.
package puzzle
