package world

import (
	"strconv"
	"strings"
)

// NodeKey formats the canonical node identity: "<arm>,<holdingOrNull>,
// [[id,id],[...],...]" with literal commas, stacks listed in column order
// bottom-to-top. It is the single chokepoint the planner uses for revisit
// detection (§4.5/§6 of the spec) — derive any other identity check from
// this, never from an ad-hoc hash.
func NodeKey(w World) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(w.Arm))
	b.WriteByte(',')
	if w.Holding == "" {
		b.WriteString("null")
	} else {
		b.WriteString(w.Holding)
	}
	b.WriteString(",[")
	for i, stack := range w.Stacks {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j, id := range stack {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(id)
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}
