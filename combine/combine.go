// Package combine implements §4.3's quantifier combiner: given two
// resolved object sets, their quantifiers and a relation, produce a DNF
// goal formula.
//
// The shape of the problem — enumerate consistent combinations over two
// choice sets, discarding any combination a constraint rules out — mirrors
// the teacher's own Interpretations/choice-set machinery (ainter.go), but
// without the assumption-based backtracking: physics.Legal is a static
// predicate, not a justification that can later be retracted, so there's
// nothing here for a truth-maintenance system to maintain.
package combine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shrdlite/core/physics"
	"github.com/shrdlite/core/world"
)

// Set is a resolved, order-independent object-id set.
type Set map[string]bool

// sorted returns the set's ids in a deterministic order, for reproducible
// DNF output (the spec leaves conjunction/literal order unspecified beyond
// "ordered list", but deterministic output makes tests and idempotence
// (invariant 5) trivial to check).
func (s Set) sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Objects looks up an id's catalogue entry, treating the floor specially.
type Objects interface {
	Lookup(id string) (world.Object, bool)
}

// Combine produces a DNF formula for "A stands in relation R to B", given
// each side's resolved set and quantifier, per §4.3's pre-checks and
// per-quantifier-pair construction rules.
func Combine(a Set, qa world.Quantifier, b Set, qb world.Quantifier, relation world.Relation, objs Objects) (world.DNFFormula, error) {
	if err := precheck(a, qa, b, qb, relation); err != nil {
		return nil, err
	}

	aIDs, bIDs := a.sorted(), b.sorted()
	switch {
	case qa == world.All && qb == world.All:
		conj, err := conjunctionOverAll(aIDs, bIDs, relation, objs)
		if err != nil {
			return nil, err
		}
		return world.DNFFormula{conj}, nil

	case qa == world.All:
		return perB(aIDs, bIDs, relation, objs)

	case qb == world.All:
		return perA(aIDs, bIDs, relation, objs)

	default:
		return wideDisjunction(aIDs, bIDs, relation, objs)
	}
}

func precheck(a Set, qa world.Quantifier, b Set, qb world.Quantifier, relation world.Relation) error {
	if len(a) == 0 {
		return fmt.Errorf("Couldn't find any matching object")
	}
	if len(b) == 0 {
		return fmt.Errorf("Couldn't find any matching destination")
	}
	if qa == world.The && len(a) > 1 {
		return fmt.Errorf("Too many matching objects for 'the'")
	}
	if qb == world.The && len(b) > 1 {
		return fmt.Errorf("Too many matching destinations for 'the'")
	}
	bHasFloor := b[world.FloorID]
	if isOntopOrInside(relation) {
		if qb == world.All && len(b) > 1 && !bHasFloor {
			return fmt.Errorf("Things can only be %s exactly one object", relation)
		}
		if qa == world.All && len(a) > 1 && !bHasFloor {
			return fmt.Errorf("Only 1 thing can be %s another object", relation)
		}
	}
	return nil
}

func isOntopOrInside(r world.Relation) bool {
	return r == world.Ontop || r == world.Inside
}

// conjunctionOverAll builds the single conjunction for the all×all case:
// every (a,b) pair becomes a literal, unless any pair is illegal — in
// which case the whole conjunction is dropped.
func conjunctionOverAll(aIDs, bIDs []string, relation world.Relation, objs Objects) (world.Conjunction, error) {
	var conj world.Conjunction
	var violations []string
	for _, aID := range aIDs {
		for _, bID := range bIDs {
			if err := checkLegal(aID, bID, relation, objs); err != nil {
				violations = append(violations, err.Error())
				continue
			}
			conj = append(conj, world.Literal{Relation: relation, A: aID, B: bID})
		}
	}
	if len(conj) != len(aIDs)*len(bIDs) {
		return nil, joinedError(violations)
	}
	return conj, nil
}

// perB builds one conjunction per b, with one literal per a (qa=all).
func perB(aIDs, bIDs []string, relation world.Relation, objs Objects) (world.DNFFormula, error) {
	var formula world.DNFFormula
	var violations []string
	for _, bID := range bIDs {
		var conj world.Conjunction
		ok := true
		for _, aID := range aIDs {
			if err := checkLegal(aID, bID, relation, objs); err != nil {
				violations = append(violations, err.Error())
				ok = false
				break
			}
			conj = append(conj, world.Literal{Relation: relation, A: aID, B: bID})
		}
		if ok {
			formula = append(formula, conj)
		}
	}
	if len(formula) == 0 {
		return nil, joinedError(violations)
	}
	return formula, nil
}

// perA builds one conjunction per a, with one literal per b (qb=all).
func perA(aIDs, bIDs []string, relation world.Relation, objs Objects) (world.DNFFormula, error) {
	var formula world.DNFFormula
	var violations []string
	for _, aID := range aIDs {
		var conj world.Conjunction
		ok := true
		for _, bID := range bIDs {
			if err := checkLegal(aID, bID, relation, objs); err != nil {
				violations = append(violations, err.Error())
				ok = false
				break
			}
			conj = append(conj, world.Literal{Relation: relation, A: aID, B: bID})
		}
		if ok {
			formula = append(formula, conj)
		}
	}
	if len(formula) == 0 {
		return nil, joinedError(violations)
	}
	return formula, nil
}

// wideDisjunction builds one single-literal conjunction per legal (a,b)
// pair — the classic existential "any" reading.
func wideDisjunction(aIDs, bIDs []string, relation world.Relation, objs Objects) (world.DNFFormula, error) {
	var formula world.DNFFormula
	var violations []string
	for _, aID := range aIDs {
		for _, bID := range bIDs {
			if err := checkLegal(aID, bID, relation, objs); err != nil {
				violations = append(violations, err.Error())
				continue
			}
			formula = append(formula, world.Conjunction{{Relation: relation, A: aID, B: bID}})
		}
	}
	if len(formula) == 0 {
		return nil, joinedError(violations)
	}
	return formula, nil
}

func checkLegal(aID, bID string, relation world.Relation, objs Objects) error {
	a, aOK := objs.Lookup(aID)
	b, bOK := objs.Lookup(bID)
	if !aOK || !bOK {
		return fmt.Errorf("%s or %s is not a known object", aID, bID)
	}
	return physics.Legal(relation, aID, a, bID, b)
}

// joinedError de-duplicates and joins the distinct violation messages
// collected across all attempted pairs, per §4.3/§7.
func joinedError(violations []string) error {
	seen := map[string]bool{}
	var distinct []string
	for _, v := range violations {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	if len(distinct) == 0 {
		return fmt.Errorf("no legal combination found")
	}
	return fmt.Errorf("%s", strings.Join(distinct, "; "))
}
