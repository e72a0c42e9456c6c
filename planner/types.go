package planner

import (
	"errors"
	"math"
)

// InfiniteCost is the sentinel shared with the Graph collaborator for an
// impassable edge or an unreached state's g/v-value.
const InfiniteCost = math.MaxInt64 / 2

// Sentinel errors returned by Planner.
var (
	// ErrStartNotSet indicates Replan was called before SetStart.
	ErrStartNotSet = errors.New("planner: start state not set")

	// ErrGoalNotSet indicates Replan was called before SetGoal.
	ErrGoalNotSet = errors.New("planner: goal state not set")

	// ErrNegativeCost indicates the Graph collaborator produced a negative
	// edge cost; the planner requires non-negative integer costs.
	ErrNegativeCost = errors.New("planner: negative edge cost from graph")
)

// Code is a planner result code. Values match spec.md's return-code table;
// see LegacyCode for the legacy "bitwise-not" facade.
type Code int

const (
	// Success indicates a path was found satisfying the current bound.
	Success Code = iota
	// PartialSuccess indicates a partial path was extracted under a budget.
	PartialSuccess
	// StartNotSet indicates Replan was called before a start state existed.
	StartNotSet
	// GoalNotSet indicates Replan was called before a goal state existed.
	GoalNotSet
	// TimedOut indicates the time/expansion budget was exhausted.
	TimedOut
	// ExhaustedOpenList indicates OPEN emptied without reaching the goal.
	ExhaustedOpenList
)

// String renders a Code for logs and test failure messages.
func (c Code) String() string {
	switch c {
	case Success:
		return "SUCCESS"
	case PartialSuccess:
		return "PARTIAL_SUCCESS"
	case StartNotSet:
		return "START_NOT_SET"
	case GoalNotSet:
		return "GOAL_NOT_SET"
	case TimedOut:
		return "TIMED_OUT"
	case ExhaustedOpenList:
		return "EXHAUSTED_OPEN_LIST"
	default:
		return "UNKNOWN_CODE"
	}
}

// StateID is a graph-state identifier assigned by the external Graph. It is
// opaque to the planner core.
type StateID int

// parentRecord is one entry of a state's improvement history: the parent
// that produced a new best g-value, the g-value it produced, and the
// expansion step during which the record was written (the parent's E once
// that expansion finishes). Recording parentE at write time (per spec.md §9) makes "valid at step k"
// a local, O(1) comparison that survives the parent being restored later.
type parentRecord struct {
	parent StateID
	g      int64
	// parentE is the expansion step in which parent produced this record,
	// i.e. the value parent.E is set to when that expansion finishes. It is
	// distinct from re-reading parent.E later, which may have changed.
	parentE uint64
}

// searchState is one record per graph state ever touched in the current
// planning call. Field names mirror spec.md §3 (g, v, h, f, C, E, ...).
type searchState struct {
	id StateID

	g int64 // best-known path cost from start; InfiniteCost initially.
	v int64 // g frozen at last expansion; InfiniteCost initially.
	h int64 // cached heuristic to goal.
	f int64 // ordering key in OPEN; recomputed on insert/reorder.

	callNumber      uint64 // planning call in which this state was last (re)initialised.
	iterationClosed uint64 // anytime iteration in which last popped; 0 = never.
	incons          bool   // whether currently in the INCONS set.

	bestPred StateID // parent selected at last relaxation; -1 if none.
	hasPred  bool

	c uint64 // expansion step at which this state was first created.
	e uint64 // expansion step at which this state was expanded; math.MaxUint64 if never.

	parentHist []parentRecord // improvements to g, in chronological order.

	heapIndex    int    // position in the open heap's backing array; -1 if absent.
	insertionSeq uint64 // tie-break for equal f-values, in push order.
}

// noParent is the sentinel bestPred value meaning "no parent selected yet".
const noParent StateID = -1

// noStep is the sentinel expansion step meaning "not yet expanded" (E) or
// "not yet created" (C, after a restore clears it).
const noStep = ^uint64(0)
