package board

import "github.com/vovakirdan/match3/internal/core"

// DropPlan describes one gravity pass.
type DropPlan struct {
	Moves  []Move // identities that fell, in column order, bottom first
	Spawns []int  // per column, empty slots left at the top
}

// Fallen reports whether any tile changed slot.
func (p DropPlan) Fallen() bool {
	return len(p.Moves) > 0
}

// SpawnCount returns the total number of slots awaiting a refill.
func (p DropPlan) SpawnCount() int {
	total := 0
	for _, n := range p.Spawns {
		total += n
	}
	return total
}

// Compact lets every column settle toward row 0 in place.
//
// Surviving identities keep their relative order within the column and the
// empty slots end up at the top. A column with no empty slot under an
// occupied one is left untouched.
func Compact(g *Grid) DropPlan {
	plan := DropPlan{Spawns: make([]int, g.w)}

	for x := 0; x < g.w; x++ {
		write := 0 // next row to receive a falling identity
		for read := 0; read < g.h; read++ {
			src := g.at(core.C(x, read))
			if src.Identity.IsEmpty() {
				continue
			}
			if read != write {
				g.at(core.C(x, write)).Identity = src.Identity
				plan.Moves = append(plan.Moves, Move{
					From:     core.C(x, read),
					To:       core.C(x, write),
					Identity: src.Identity,
				})
				src.Identity = Empty
			}
			write++
		}
		plan.Spawns[x] = g.h - write
	}
	return plan
}
