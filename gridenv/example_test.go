package gridenv_test

import (
	"fmt"

	"github.com/dyouakim/traplanner/gridenv"
	"github.com/dyouakim/traplanner/planner"
)

// Example_threeByThree reproduces the 3×3 grid scenario: start=(0,0),
// goal=(2,2), Manhattan heuristic, eps fixed at 1. The optimal path has
// cost 4 and visits 5 cells.
func Example_threeByThree() {
	g, _ := gridenv.NewGrid([][]bool{
		{false, false, false},
		{false, false, false},
		{false, false, false},
	}, gridenv.DefaultOptions())
	_ = g.SetGoal(2, 2)

	h := gridenv.NewManhattanHeuristic(g)
	p := planner.New(g, h)

	start, _ := g.StateID(0, 0)
	goal, _ := g.StateID(2, 2)
	p.SetStart(start)
	p.SetGoal(goal)
	p.SetEpsilonSchedule(1, 1, 1)

	_, sol, err := p.Replan(planner.DefaultReplanParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", sol.Cost, "path length:", len(sol.Path))
	// Output:
	// cost: 4 path length: 5
}

// Example_threeByThreeBlocked repeats the 3×3 scenario with (1,1) blocked;
// the planner must route around it at the same total cost.
func Example_threeByThreeBlocked() {
	g, _ := gridenv.NewGrid([][]bool{
		{false, false, false},
		{false, true, false},
		{false, false, false},
	}, gridenv.DefaultOptions())
	_ = g.SetGoal(2, 2)

	h := gridenv.NewManhattanHeuristic(g)
	p := planner.New(g, h)

	start, _ := g.StateID(0, 0)
	goal, _ := g.StateID(2, 2)
	p.SetStart(start)
	p.SetGoal(goal)
	p.SetEpsilonSchedule(1, 1, 1)

	_, sol, err := p.Replan(planner.DefaultReplanParams())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", sol.Cost, "path length:", len(sol.Path))
	// Output:
	// cost: 4 path length: 5
}

// Example_fiveByFiveAnytime runs the 5×5 anytime scenario with a shrinking
// epsilon schedule (3, 2, 1) and prints the final optimal cost of 8.
func Example_fiveByFiveAnytime() {
	blocked := make([][]bool, 5)
	for y := range blocked {
		blocked[y] = make([]bool, 5)
	}
	g, _ := gridenv.NewGrid(blocked, gridenv.DefaultOptions())
	_ = g.SetGoal(4, 4)

	h := gridenv.NewManhattanHeuristic(g)
	p := planner.New(g, h)

	start, _ := g.StateID(0, 0)
	goal, _ := g.StateID(4, 4)
	p.SetStart(start)
	p.SetGoal(goal)
	p.SetEpsilonSchedule(3, 1, 1)
	p.SetSearchMode(false) // anytime-improve

	_, sol, err := p.ReplanWithTimeParameters(planner.TimeParameters{
		Type:           planner.BudgetExpansions,
		Bounded:        true,
		Improve:        true,
		MaxExpansionsInit: 1000,
		MaxExpansions:     1000,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", sol.Cost)
	// Output:
	// cost: 8
}

// Example_fiveByFiveGoalChange continues the 5×5 anytime scenario: once a
// path to (4,4) has converged, the goal moves to (0,4). The Heuristic
// Reconciler rewinds the search tree to just before the earliest
// now-inconsistent expansion instead of restarting from scratch, and the
// plan that comes out the other side is optimal for the new goal.
func Example_fiveByFiveGoalChange() {
	blocked := make([][]bool, 5)
	for y := range blocked {
		blocked[y] = make([]bool, 5)
	}
	g, _ := gridenv.NewGrid(blocked, gridenv.DefaultOptions())
	_ = g.SetGoal(4, 4)

	h := gridenv.NewManhattanHeuristic(g)
	p := planner.New(g, h)

	start, _ := g.StateID(0, 0)
	firstGoal, _ := g.StateID(4, 4)
	p.SetStart(start)
	p.SetGoal(firstGoal)
	p.SetEpsilonSchedule(3, 1, 1)

	budget := planner.TimeParameters{
		Type:              planner.BudgetExpansions,
		Bounded:           true,
		Improve:           true,
		MaxExpansionsInit: 1000,
		MaxExpansions:     1000,
	}

	_, sol, err := p.ReplanWithTimeParameters(budget)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("first cost:", sol.Cost)

	secondGoal, _ := g.StateID(0, 4)
	_ = g.SetGoal(0, 4)
	p.SetGoal(secondGoal)

	_, sol2, err := p.ReplanWithTimeParameters(budget)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("second cost:", sol2.Cost)
	// Output:
	// first cost: 8
	// second cost: 4
}
