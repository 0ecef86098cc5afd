//go:build tinygo

package main

import "github.com/itohio/ltesense/pkg/telemetry"

// boardProbes returns telemetry probes for the sensors that have a
// working driver. Probes that return ok=false contribute nothing to a
// tick, so partially wired boards degrade gracefully.
//
// TODO: wire HS3003, LPS22HB, APDS9960 and BMI270/BMM150 probes once the
// tinygo.org/x/drivers ports for the Rev2 sensor set are in.
func boardProbes() []telemetry.Probe {
	return nil
}
