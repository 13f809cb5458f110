// Command shrdlite is a developer-facing smoke-test harness for the
// interpreter and planner: it runs a handful of canned command trees
// against a canned world and prints the resulting plan. It is not the
// natural-language shell — that remains an external concern.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/shrdlite/core/interpret"
	"github.com/shrdlite/core/plan"
	"github.com/shrdlite/core/world"
	"github.com/shrdlite/core/xlog"
)

var (
	verbose      bool
	worldName    string
	scenarioName string
	timeout      time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "shrdlite",
	Short: "Interpret and plan a canned blocks-world command",
	RunE:  run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&worldName, "world", "w", "small", "world fixture: small|medium")
	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "take-ball", "canned command: take-ball|drop-in-box|move-onto-table")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 5*time.Second, "per-interpretation search timeout")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := xlog.New(verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	w, err := selectWorld(worldName)
	if err != nil {
		return err
	}
	command, err := selectScenario(scenarioName)
	if err != nil {
		return err
	}
	if scenarioName == "drop-in-box" {
		w = simulateAlreadyHolding(w)
	}

	parses := []interpret.Parse{{Command: command}}
	interpretations, err := interpret.Interpret(parses, w, logger)
	if err != nil {
		return fmt.Errorf("interpreting: %w", err)
	}
	fmt.Printf("%d interpretation(s) found\n", len(interpretations))

	results, err := plan.Plan(interpretations, w, timeout, logger)
	if err != nil {
		return fmt.Errorf("planning: %w", err)
	}
	for i, r := range results {
		fmt.Printf("--- result %d (cost=%d, states seen=%d, reopened=%d) ---\n", i, r.Cost, r.NodesSeen, r.Reopened)
		fmt.Println(plan.Explain(r))
	}
	return nil
}

// simulateAlreadyHolding picks up the first ball it finds on top of a
// stack, standing in for a preceding "take" command the single-command
// harness below has no way to issue itself — a ball is always small
// enough to drop legally inside some box in both fixtures.
func simulateAlreadyHolding(w world.World) world.World {
	for i, stack := range w.Stacks {
		if len(stack) == 0 {
			continue
		}
		top := stack[len(stack)-1]
		if w.Objects[top].Form != world.Ball {
			continue
		}
		w.Stacks[i] = stack[:len(stack)-1]
		w.Holding = top
		return w
	}
	return w
}

func selectWorld(name string) (world.World, error) {
	switch name {
	case "small":
		return world.SmallWorld(), nil
	case "medium":
		return world.MediumWorld(), nil
	default:
		return world.World{}, fmt.Errorf("unknown world %q", name)
	}
}

func selectScenario(name string) (world.Command, error) {
	switch name {
	case "take-ball":
		return world.TakeCommand{
			Entity: world.Entity{
				Quantifier: world.Any,
				Object:     world.SimpleObject{Form: world.Ball},
			},
		}, nil
	case "drop-in-box":
		return world.DropCommand{
			Location: world.Location{
				Relation: world.Inside,
				Entity: world.Entity{
					Quantifier: world.Any,
					Object:     world.SimpleObject{Form: world.Box},
				},
			},
		}, nil
	case "move-onto-table":
		return world.MoveCommand{
			Entity: world.Entity{
				Quantifier: world.Any,
				Object:     world.SimpleObject{Form: world.Ball},
			},
			Location: world.Location{
				Relation: world.Ontop,
				Entity: world.Entity{
					Quantifier: world.The,
					Object:     world.SimpleObject{Form: world.Table},
				},
			},
		}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q", name)
	}
}
