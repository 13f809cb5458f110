// Package physics implements the static laws of the blocks world: whether
// one object may stand in a given spatial relation to another. The rule
// set is evaluated independently of where anything currently sits — it's a
// pure predicate over object descriptions (§4.1 of the spec), translated
// from the precondition/add-list/delete-list style of the teacher's own
// blocks-world operator table (Pickup/Putdown/Stack/Unstack in blocks.go)
// into a single ordered rule chain rather than a rule-engine match loop,
// since there's no dependency-directed backtracking to do here.
//
// Copyright (c) 1988-1992 Kenneth D. Forbus, Northwestern
// University, and Johan de Kleer, Xerox Corporation.
// All rights reserved.
package physics

import (
	"fmt"

	"github.com/shrdlite/core/world"
)

// Legal checks whether a may enter relation with b. aID/bID are used for
// the floor and same-object checks (rules 1-4) and in the violation
// messages; everything else looks at the catalogue entries a and b. It returns nil if legal, or a
// human-readable violation otherwise.
func Legal(relation world.Relation, aID string, a world.Object, bID string, b world.Object) error {
	// 1. the floor can't be taken or moved.
	if aID == world.FloorID {
		return fmt.Errorf("I cannot take the floor")
	}
	// 2. only ontop/above make sense with the floor as target.
	if bID == world.FloorID {
		switch relation {
		case world.Under, world.LeftOf, world.RightOf, world.Beside, world.Inside:
			return fmt.Errorf("the floor cannot be %s a target", relation)
		}
	}
	// 3. an object can't relate to itself.
	if aID == bID {
		return fmt.Errorf("%s cannot be %s itself", aID, relation)
	}
	// 4. balls roll off anything but the floor.
	if a.Form == world.Ball && relation == world.Ontop && bID != world.FloorID {
		return fmt.Errorf("%s is a ball, it can only be ontop of the floor", aID)
	}
	// 5. balls support nothing.
	if a.Form == world.Ball && relation == world.Under {
		return fmt.Errorf("%s is a ball, nothing can be under it in a stable way", aID)
	}
	// 6. nothing rests on a ball.
	if b.Form == world.Ball && (relation == world.Ontop || relation == world.Above) {
		return fmt.Errorf("%s is a ball, nothing can rest on it", bID)
	}
	// 7. only boxes have an interior.
	if relation == world.Inside && b.Form != world.Box {
		return fmt.Errorf("%s is not a box, nothing can be inside it", bID)
	}
	// 8. contents of a box go inside it, not ontop of it.
	if relation == world.Ontop && b.Form == world.Box {
		return fmt.Errorf("%s is a box, things go inside it, not ontop", bID)
	}
	// 9. a pyramid/plank/box doesn't fit in a same-size box.
	if relation == world.Inside && b.Form == world.Box &&
		(a.Form == world.Pyramid || a.Form == world.Plank || a.Form == world.Box) &&
		a.Size == b.Size {
		return fmt.Errorf("%s doesn't fit inside %s, they're the same size", aID, bID)
	}
	// 10. a box ontop a pyramid/brick is unstable.
	if a.Form == world.Box && relation == world.Ontop &&
		(b.Form == world.Pyramid || b.Form == world.Brick) {
		bothSmall := a.Size == world.Small && b.Size == world.Small
		bothLargeOnPyramid := a.Size == world.Large && b.Size == world.Large && b.Form == world.Pyramid
		if bothSmall || bothLargeOnPyramid {
			return fmt.Errorf("%s balanced ontop %s would be unstable", aID, bID)
		}
	}
	// 11. a large object can't be supported by a small one.
	if (relation == world.Inside || relation == world.Ontop) &&
		a.Size == world.Large && b.Size == world.Small {
		return fmt.Errorf("%s is too large for %s to support", aID, bID)
	}
	return nil
}

// LegalDrop is §4.5's physical-support check for the planner's drop action:
// may a physically come to rest directly above b (or the floor)? It picks
// the relation the query layer would use to describe the result — Inside
// when b is a box, Ontop otherwise — since rules 7/8 only forbid calling
// that placement "ontop" for query purposes, not forbid the placement
// itself.
func LegalDrop(a world.Object, aID string, b world.Object, bID string) error {
	if bID == world.FloorID {
		return Legal(world.Ontop, aID, a, bID, b)
	}
	if b.Form == world.Box {
		return Legal(world.Inside, aID, a, bID, b)
	}
	return Legal(world.Ontop, aID, a, bID, b)
}
