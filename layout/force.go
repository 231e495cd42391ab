package layout

import "math"

const (
	repulsionStrength = 20000.0
	springStrength    = 0.05
	springRestLength  = 200.0
	forceDamping      = 0.9
	forceStep         = 0.1
)

// ForceDirected runs a fixed-iteration spring simulation: every node pair
// repels with an inverse-square force and every edge pulls its endpoints
// toward a rest distance. The iteration count, constants and operation
// order are fixed, so the result is reproducible for the same input.
// Starting positions matter; callers usually seed them with Grid.
func ForceDirected(nodes []Node, edges []Edge, opts Options) []Node {
	o := opts.withDefaults()
	out := make([]Node, len(nodes))
	copy(out, nodes)
	if len(nodes) < 2 {
		return out
	}

	index := make(map[string]int, len(nodes))
	for i, n := range out {
		index[n.ID] = i
	}

	type spring struct{ a, b int }
	var springs []spring
	for _, e := range edges {
		a, okA := index[e.Source]
		b, okB := index[e.Target]
		if !okA || !okB || a == b {
			continue
		}
		springs = append(springs, spring{a, b})
	}

	vx := make([]float64, len(out))
	vy := make([]float64, len(out))
	fx := make([]float64, len(out))
	fy := make([]float64, len(out))

	for iter := 0; iter < o.Iterations; iter++ {
		for i := range fx {
			fx[i], fy[i] = 0, 0
		}

		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				dx := out[j].Position.X - out[i].Position.X
				dy := out[j].Position.Y - out[i].Position.Y
				dist := math.Hypot(dx, dy)
				if dist < 1 {
					dist = 1
				}
				// Coincident nodes have no direction to push along.
				f := repulsionStrength / (dist * dist)
				fx[i] -= f * dx / dist
				fy[i] -= f * dy / dist
				fx[j] += f * dx / dist
				fy[j] += f * dy / dist
			}
		}

		for _, s := range springs {
			dx := out[s.b].Position.X - out[s.a].Position.X
			dy := out[s.b].Position.Y - out[s.a].Position.Y
			dist := math.Hypot(dx, dy)
			if dist < 1 {
				dist = 1
			}
			f := springStrength * (dist - springRestLength)
			fx[s.a] += f * dx / dist
			fy[s.a] += f * dy / dist
			fx[s.b] -= f * dx / dist
			fy[s.b] -= f * dy / dist
		}

		for i := range out {
			vx[i] = (vx[i] + fx[i]) * forceDamping
			vy[i] = (vy[i] + fy[i]) * forceDamping
			out[i].Position.X += vx[i] * forceStep
			out[i].Position.Y += vy[i] * forceStep
		}
	}
	return out
}
