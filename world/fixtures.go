package world

// SmallWorld and MediumWorld are concrete catalogues for the scenarios
// this module's own tests exercise (and for anything external callers want
// to smoke-test against before wiring in a real parsed-world source).
//
// These are adapted from the teacher's BuildBlocksProblem/MakeBlocksBasisSet
// (bcode.go): that code enumerated every *possible* placement of a block as
// a basis set for assumption-based truth maintenance. A concrete World has
// exactly one placement per object, so the adaptation collapses "basis set
// of choices" down to "one chosen stack layout" and drops the ATMS-specific
// choice-set machinery entirely.

// SmallWorld returns a five-column world: a large blue table, a large
// white ball, a small blue box, a large yellow box holding a small black
// ball, and a large red box. The arm starts over column 0, holding
// nothing.
func SmallWorld() World {
	return World{
		Stacks: [][]string{
			{"table1"},
			{"ball1"},
			{"box1"},
			{"box2", "ball2"},
			{"box3"},
		},
		Arm:     0,
		Holding: "",
		Objects: map[string]Object{
			"table1": {Form: Table, Size: Large, Color: Blue},
			"ball1":  {Form: Ball, Size: Large, Color: White},
			"box1":   {Form: Box, Size: Small, Color: Blue},
			"box2":   {Form: Box, Size: Large, Color: Yellow},
			"ball2":  {Form: Ball, Size: Small, Color: Black},
			"box3":   {Form: Box, Size: Large, Color: Red},
		},
	}
}

// MediumWorld adds bricks, pyramids and planks so every physics rule in
// §4.1 has at least one world fixture that can exercise it.
func MediumWorld() World {
	return World{
		Stacks: [][]string{
			{"table1"},
			{"brick1", "brick2"},
			{"pyramid1"},
			{"box1"},
			{"plank1"},
			{"ball1"},
		},
		Arm:     0,
		Holding: "",
		Objects: map[string]Object{
			"table1":   {Form: Table, Size: Large, Color: Green},
			"brick1":   {Form: Brick, Size: Large, Color: Red},
			"brick2":   {Form: Brick, Size: Small, Color: Black},
			"pyramid1": {Form: Pyramid, Size: Large, Color: White},
			"box1":     {Form: Box, Size: Large, Color: Yellow},
			"plank1":   {Form: Plank, Size: Small, Color: Blue},
			"ball1":    {Form: Ball, Size: Small, Color: Green},
		},
	}
}
