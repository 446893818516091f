// Command archprofile exercises the archecs storage engine under a CPU
// profile, the way the teacher's profile/entities and profile/query
// drivers wrap a workload in pkg/profile's defer profile.Start(...).Stop()
// idiom.
package main

import (
	"fmt"

	"github.com/pkg/profile"

	"github.com/archecs/archecs"
)

type position struct {
	X, Y float32
}

type velocity struct {
	DX, DY float32
}

const entityCount = 200_000

func main() {
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()

	r := archecs.NewRegistry(entityCount)
	entities := make([]archecs.Entity, 0, entityCount)
	for i := 0; i < entityCount; i++ {
		e := archecs.Create2(r, position{X: float32(i)}, velocity{DX: 1, DY: -1})
		entities = append(entities, e)
	}

	view := archecs.NewView2[position, velocity](r)
	view.Each(func(_ archecs.Entity, p *position, v *velocity) {
		p.X += v.DX
		p.Y += v.DY
	})

	for i := 0; i < len(entities); i += 3 {
		r.Destroy(entities[i])
	}

	fmt.Printf("live entities after culling: %d\n", view.Size())
}
