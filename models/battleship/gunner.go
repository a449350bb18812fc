package battleship

import (
	"math/rand"
	"time"
)

// Gunner is the computer opponent. It aims uniformly at random with no
// memory of previous shots; re-firing an already resolved cell is expected
// and resolved by Board.Fire as a miss.
type Gunner struct {
	rng *rand.Rand
}

func NewGunner(rng *rand.Rand) *Gunner {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Gunner{rng: rng}
}

// NextTarget picks the next cell to fire at.
func (g *Gunner) NextTarget() Position {
	return NewPosition(g.rng.Intn(GridSize), g.rng.Intn(GridSize))
}
