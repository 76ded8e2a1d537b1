package opt

import "github.com/maseology/mmaths"

// Par2 maps the unit hypercube to the diet calibration space.
func Par2(u []float64) (scale, o2cap float64) {
	scale = mmaths.LogLinearTransform(.1, 10., u[0]) // global uptake multiplier
	o2cap = mmaths.LinearTransform(0., 20., u[1])    // aerobic oxygen cap [mmol/gDW/h]
	return
}
