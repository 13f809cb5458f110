// Package resolve implements §4.2's reference resolution: mapping an
// object description tree onto the set of world object ids it denotes.
package resolve

import (
	"github.com/shrdlite/core/physics"
	"github.com/shrdlite/core/world"
)

// Cache memoizes Resolve by the structural identity of the description node
// (Go value equality: every description type is a comparable struct, so
// equal descriptions share one entry), as suggested in §9: recursive resolution on deeply
// nested descriptions can otherwise redo the same subtree's work
// exponentially within a single command.
type Cache struct {
	w    world.World
	memo map[world.ObjectDesc]map[string]bool
}

// NewCache creates a resolver cache for one world snapshot. A Cache must
// not be reused across different worlds: entries are keyed by the
// description alone.
func NewCache(w world.World) *Cache {
	return &Cache{w: w, memo: make(map[world.ObjectDesc]map[string]bool)}
}

// Resolve returns the set of ids (as a set-shaped map) denoted by desc.
func (c *Cache) Resolve(desc world.ObjectDesc) map[string]bool {
	if cached, ok := c.memo[desc]; ok {
		return cached
	}
	var result map[string]bool
	switch d := desc.(type) {
	case world.SimpleObject:
		result = c.resolveSimple(d)
	case world.RelativeObject:
		result = c.resolveRelative(d)
	case world.ComplexObject:
		result = c.resolveComplex(d)
	default:
		result = map[string]bool{}
	}
	c.memo[desc] = result
	return result
}

func (c *Cache) resolveSimple(d world.SimpleObject) map[string]bool {
	result := map[string]bool{}
	if d.Form == world.Floor {
		result[world.FloorID] = true
		return result
	}
	for id, obj := range c.w.Objects {
		if !present(c.w, id) {
			continue
		}
		if d.Form != world.AnyForm && d.Form != obj.Form {
			continue
		}
		if d.Size != "" && d.Size != obj.Size {
			continue
		}
		if d.Color != "" && d.Color != obj.Color {
			continue
		}
		result[id] = true
	}
	return result
}

// present reports whether id currently occupies a stack or is held; the
// catalogue can in principle list objects that were never placed, and
// those aren't valid referents.
func present(w world.World, id string) bool {
	if w.Holding == id {
		return true
	}
	for _, stack := range w.Stacks {
		for _, o := range stack {
			if o == id {
				return true
			}
		}
	}
	return false
}

func (c *Cache) resolveRelative(d world.RelativeObject) map[string]bool {
	a := c.Resolve(d.Object)
	b := c.Resolve(d.Location.Entity.Object)
	result := map[string]bool{}
	for aID := range a {
		if c.witnessed(d.Location.Relation, aID, b, d.Location.Entity.Quantifier) {
			result[aID] = true
		}
	}
	return result
}

// witnessed implements the quantifier semantics over the witnessing set:
// "the"/"any" need at least one legal, positionally-true b; "all" needs
// every b in the set to witness.
func (c *Cache) witnessed(relation world.Relation, aID string, b map[string]bool, q world.Quantifier) bool {
	if len(b) == 0 {
		return false
	}
	if q == world.All {
		for bID := range b {
			if !c.holds(relation, aID, bID) {
				return false
			}
		}
		return true
	}
	for bID := range b {
		if c.holds(relation, aID, bID) {
			return true
		}
	}
	return false
}

func (c *Cache) holds(relation world.Relation, aID, bID string) bool {
	aObj, aOK := c.w.Lookup(aID)
	bObj, bOK := c.w.Lookup(bID)
	if !aOK || !bOK {
		return false
	}
	if physics.Legal(relation, aID, aObj, bID, bObj) != nil {
		return false
	}
	return Positional(c.w, relation, aID, bID)
}

func (c *Cache) resolveComplex(d world.ComplexObject) map[string]bool {
	a := c.Resolve(d.Object1)
	b := c.Resolve(d.Object2)
	result := map[string]bool{}
	switch d.Operator {
	case world.Or:
		for id := range a {
			result[id] = true
		}
		for id := range b {
			result[id] = true
		}
	case world.Except:
		for id := range a {
			if !b[id] {
				result[id] = true
			}
		}
	}
	return result
}

// Positional evaluates the spatial relation against current stack
// coordinates, independent of physical-law legality (§4.2). The floor has
// col=-1, row=-1 and is treated as lying directly below every stack for
// ontop/above purposes.
func Positional(w world.World, relation world.Relation, aID, bID string) bool {
	colA, rowA := w.Position(aID)
	if bID == world.FloorID {
		switch relation {
		case world.Ontop, world.Inside:
			return rowA == 0
		case world.Above:
			return true
		default:
			return false
		}
	}
	colB, rowB := w.Position(bID)
	switch relation {
	case world.Ontop, world.Inside:
		return colA == colB && rowA == rowB+1
	case world.Above:
		return colA == colB && rowA > rowB
	case world.Under:
		return colA == colB && rowA < rowB
	case world.LeftOf:
		return colA < colB
	case world.RightOf:
		return colA > colB
	case world.Beside:
		d := colA - colB
		return d == 1 || d == -1
	default:
		return false
	}
}
