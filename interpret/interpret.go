// Package interpret implements §4.4's command interpreter: dispatching
// Take/Drop/Move commands to the reference resolver and quantifier
// combiner, and §6's top-level multi-parse entry point.
package interpret

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/shrdlite/core/combine"
	"github.com/shrdlite/core/resolve"
	"github.com/shrdlite/core/world"
	"github.com/shrdlite/core/xlog"
)

// Parse pairs a parsed command with whatever metadata the caller's parser
// attached to it (e.g. a parse-tree id, a confidence score); Interpret and
// plan.Plan pass Extra through untouched so the caller can correlate
// results back to its own bookkeeping.
type Parse struct {
	Command world.Command
	Extra   interface{}
}

// Interpretation is a Parse augmented with the DNF goal it produced.
type Interpretation struct {
	Parse Parse
	Goal  world.DNFFormula
}

// Interpret is §6's entry point: it interprets every parse against w,
// keeps only those that produced a non-empty, non-erroring DNF, and
// raises a single error — the distinct per-parse messages joined with
// " ; " — only if none succeeded.
func Interpret(parses []Parse, w world.World, logger *zap.Logger) ([]Interpretation, error) {
	logger = xlog.OrNop(logger)
	var ok []Interpretation
	var messages []string
	for i, p := range parses {
		goal, err := interpretOne(p.Command, w)
		if err != nil {
			logger.Debug("parse failed to interpret", zap.Int("parse", i), zap.Error(err))
			messages = append(messages, err.Error())
			continue
		}
		ok = append(ok, Interpretation{Parse: p, Goal: goal})
	}
	if len(ok) == 0 {
		return nil, fmt.Errorf("%s", strings.Join(dedupe(messages), " ; "))
	}
	return ok, nil
}

func interpretOne(cmd world.Command, w world.World) (world.DNFFormula, error) {
	cache := resolve.NewCache(w)
	switch c := cmd.(type) {
	case world.TakeCommand:
		return interpretTake(c, cache)
	case world.DropCommand:
		return interpretDrop(c, w, cache)
	case world.MoveCommand:
		return interpretMove(c, w, cache)
	default:
		return nil, fmt.Errorf("unknown command type %T", cmd)
	}
}

func interpretTake(c world.TakeCommand, cache *resolve.Cache) (world.DNFFormula, error) {
	set := cache.Resolve(c.Entity.Object)
	if len(set) == 0 {
		return nil, fmt.Errorf("Couldn't find any matching object")
	}
	if set[world.FloorID] {
		return nil, fmt.Errorf("I cannot take the floor")
	}
	if c.Entity.Quantifier != world.Any && len(set) != 1 {
		return nil, fmt.Errorf("Too many matching objects for '%s'", c.Entity.Quantifier)
	}
	var formula world.DNFFormula
	for _, id := range sortedIDs(set) {
		formula = append(formula, world.Conjunction{{Relation: world.Holding, A: id}})
	}
	return formula, nil
}

func interpretDrop(c world.DropCommand, w world.World, cache *resolve.Cache) (world.DNFFormula, error) {
	if w.Holding == "" {
		return nil, fmt.Errorf("I'm not holding anything")
	}
	b := cache.Resolve(c.Location.Entity.Object)
	a := combine.Set{w.Holding: true}
	return combine.Combine(a, world.Any, b, c.Location.Entity.Quantifier, c.Location.Relation, w)
}

func interpretMove(c world.MoveCommand, w world.World, cache *resolve.Cache) (world.DNFFormula, error) {
	a := cache.Resolve(c.Entity.Object)
	b := cache.Resolve(c.Location.Entity.Object)
	return combine.Combine(a, c.Entity.Quantifier, b, c.Location.Entity.Quantifier, c.Location.Relation, w)
}

func sortedIDs(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

func dedupe(messages []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range messages {
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}
