package world

import (
	"github.com/tomz197/pseudo3d/internal/config"
	"github.com/tomz197/pseudo3d/internal/draw"
	"github.com/tomz197/pseudo3d/internal/object"
)

// buildVillage places the fixed layout around the origin: a central tower,
// halls, houses and ruins, a flight of stairs on each side and the plaza.
func (w *World) buildVillage() {
	footprint := func(x, z, width, depth, height float64, roof string) object.Footprint {
		return object.Footprint{X: x, Z: z, Width: width, Depth: depth, Height: height, Roof: draw.Hex(roof)}
	}

	w.Scenery = append(w.Scenery,
		&object.Tower{Footprint: footprint(0, 0, 40, 40, 350, "#8b4513")},
		&object.AsianHall{Footprint: footprint(-200, -150, 120, 100, 80, "#d2691e")},
		&object.AsianHall{Footprint: footprint(200, -150, 100, 90, 70, "#cd853f")},
		&object.House{Footprint: footprint(-180, 180, 90, 80, 60, "#a0522d")},
		&object.House{Footprint: footprint(180, 200, 110, 95, 75, "#8b4513")},
		&object.Ruins{Footprint: footprint(350, 50, 80, 70, 50, "#b8860b")},
		&object.Ruins{Footprint: footprint(-350, 80, 85, 75, 55, "#cd853f")},
		&object.House{Footprint: footprint(100, 300, 70, 65, 45, "#a0522d")},
		&object.House{Footprint: footprint(-100, -300, 75, 70, 48, "#d2691e")},
	)

	const stairWidth, stairSteps = 60, 8
	for _, pos := range [][2]float64{{-100, 0}, {100, 0}, {0, -100}, {0, 100}} {
		w.Scenery = append(w.Scenery, &object.Stair{X: pos[0], Z: pos[1], Width: stairWidth, Steps: stairSteps})
	}

	w.Plaza = &object.Plaza{Size: config.PlazaSize}
}
