package box

import (
	"github.com/katalvlaran/oneloop/core"
	"github.com/katalvlaran/oneloop/kinematics"
	"github.com/katalvlaran/oneloop/specfn"
)

// softMomenta is the all-soft-momenta closed form
//
//	D₀(0,…,0; a,b,c,d) = −[a,b,c,d] t·Log t
//
// the third divided difference of t·Log t over the four internal masses.
// Masses coincident inside the on-shell threshold are merged and enter
// through the confluent (Hermite) table entries, so every coincidence
// pattern lands on its analytic limit. The renormalization scale drops
// out identically.
func softMomenta(pt kinematics.FourPoint, cfg core.Config) core.Result {
	tol := cfg.Threshold() * pt.Scale()
	nodes := clusterMasses([4]complex128{pt.M1, pt.M2, pt.M3, pt.M4}, tol)

	var tab [4][4]complex128
	for i, x := range nodes {
		tab[i][0] = xlog(x)
	}
	for j := 1; j < 4; j++ {
		for i := 0; i+j < 4; i++ {
			if nodes[i+j] == nodes[i] {
				tab[i][j] = confluent(nodes[i], j)
			} else {
				tab[i][j] = (tab[i+1][j-1] - tab[i][j-1]) / (nodes[i+j] - nodes[i])
			}
		}
	}

	return core.NewResult(-tab[0][3], 0, 0).Scaled(cfg.Normalization())
}

// clusterMasses merges masses that coincide within tol, replaces each
// group by its mean, and lists equal nodes adjacently for the Hermite
// table.
func clusterMasses(m [4]complex128, tol float64) [4]complex128 {
	var reps []complex128
	var counts []int
	for _, v := range m {
		placed := false
		for i, r := range reps {
			if kinematics.Near(v, r, tol) {
				// Running mean of the group.
				reps[i] = (r*complex(float64(counts[i]), 0) + v) /
					complex(float64(counts[i]+1), 0)
				counts[i]++
				placed = true

				break
			}
		}
		if !placed {
			reps = append(reps, v)
			counts = append(counts, 1)
		}
	}

	var nodes [4]complex128
	k := 0
	for i, r := range reps {
		for j := 0; j < counts[i]; j++ {
			nodes[k] = r
			k++
		}
	}

	return nodes
}

// confluent is the j-th derivative of t·Log t over j!, the repeated-node
// entry of the divided-difference table.
func confluent(a complex128, j int) complex128 {
	switch j {
	case 1:
		return specfn.Log(a) + 1
	case 2:
		return 1 / (2 * a)
	default:
		return -1 / (6 * a * a)
	}
}

// xlog returns z·Log(z) with the z→0 limit taken exactly.
func xlog(z complex128) complex128 {
	if z == 0 {
		return 0
	}

	return z * specfn.Log(z)
}
