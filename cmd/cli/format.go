package main

import (
	"fmt"
	"io"

	"github.com/cxd309/aero-engine/internal/cornering"
	"github.com/cxd309/aero-engine/internal/sweep"
	"github.com/cxd309/aero-engine/internal/vehicle"
)

func printCornerResult(w io.Writer, v vehicle.Vehicle, angle float64, turn cornering.Turn, res cornering.Result) {
	cd, cl := v.Coefficients(angle)

	fmt.Fprintf(w, "%s at %.2f° wing (Cd %.3f, Cl %.3f)\n", v.Name, angle, cd, cl)
	fmt.Fprintf(w, "  Turn:            r = %g m, mu = %g\n", turn.Radius, turn.Mu)
	fmt.Fprintf(w, "  Regime:          %s\n", res.Branch)
	fmt.Fprintf(w, "  Cornering speed: %.2f m/s (%.1f km/h)\n", res.Speed, res.Speed*sweep.MsToKmh)
	if res.Branch == cornering.BranchGrip {
		fmt.Fprintf(w, "  Downforce:       %.0f N\n", v.Downforce(res.Speed, angle))
		if res.Converged {
			fmt.Fprintf(w, "  Converged in %d iterations\n", res.Iterations)
		} else {
			fmt.Fprintf(w, "  WARNING: not converged after %d iterations; speed is a best-effort estimate\n", res.Iterations)
		}
	}
}
