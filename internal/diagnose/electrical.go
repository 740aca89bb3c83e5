package diagnose

import (
	"fmt"
	"math"

	"github.com/speedwagon-io/condmon/internal/model"
)

// Unbalance computes the NEMA MG-1 unbalance percentage: maximum deviation
// from the average over the average. An all-zero set yields 0.
func Unbalance(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	if avg == 0 {
		return 0
	}
	var maxDev float64
	for _, v := range values {
		if d := math.Abs(v - avg); d > maxDev {
			maxDev = d
		}
	}
	return maxDev / avg * 100
}

// NEMA / ANSI protection limits.
const (
	undervoltagePct   = 0.90 // ANSI 27
	overvoltagePct    = 1.10 // ANSI 59
	voltUnbalanceMax  = 3.0  // ANSI 47, NEMA MG-1
	dryRunLoadPct     = 0.40 // ANSI 37
	overloadPct       = 1.10 // ANSI 51
	ampUnbalanceMax   = 10.0 // ANSI 46
	groundFaultAmp    = 0.5  // ANSI 50G
	insulationMinMohm = 2.0  // IEEE 43, LV motor
)

// EvaluateElectrical runs the ANSI protection checks against the motor
// nameplate ratings and rolls the findings into a NORMAL/ALARM/TRIP status.
// Ground fault and overload are treated as trip conditions, everything else
// as alarms.
func EvaluateElectrical(in model.ElectricalInput, ratedVolt, flc float64) model.ElectricalResult {
	res := model.ElectricalResult{Status: model.ElecNormal}

	volts := in.Volts[:]
	amps := in.Amps[:]

	var sumV, sumI, maxI float64
	for _, v := range volts {
		sumV += v
	}
	for _, i := range amps {
		sumI += i
		if i > maxI {
			maxI = i
		}
	}
	avgV := sumV / 3
	avgI := sumI / 3

	res.VoltUnbalance = Unbalance(volts)
	res.CurrentUnbalance = Unbalance(amps)

	alarm := func(code, summary, rec string) {
		res.Findings = append(res.Findings, model.ElectricalFinding{
			ANSICode: code, Summary: summary, Recommendation: rec,
		})
		if res.Status == model.ElecNormal {
			res.Status = model.ElecAlarm
		}
	}
	trip := func(code, summary, rec string) {
		res.Findings = append(res.Findings, model.ElectricalFinding{
			ANSICode: code, Summary: summary, Recommendation: rec,
		})
		res.Status = model.ElecTrip
	}

	if ratedVolt > 0 {
		if avgV < ratedVolt*undervoltagePct {
			alarm("27", fmt.Sprintf("undervoltage: %.1f V, supply more than 10%% below rated", avgV),
				"check transformer tap and supply cabling")
		} else if avgV > ratedVolt*overvoltagePct {
			alarm("59", fmt.Sprintf("overvoltage: %.1f V, supply more than 10%% above rated", avgV),
				"check AVR on generator/transformer")
		}
	}

	if res.VoltUnbalance > voltUnbalanceMax {
		alarm("47", fmt.Sprintf("voltage unbalance %.1f%% exceeds NEMA 3%% limit", res.VoltUnbalance),
			"check for a blown fuse or loose transformer connection")
	}

	if flc > 0 {
		// avgI > 1 A distinguishes low load from a stopped motor.
		if avgI < flc*dryRunLoadPct && avgI > 1.0 {
			alarm("37", fmt.Sprintf("undercurrent: %.1f A, possible dry run or broken coupling", avgI),
				"check tank level and coupling")
		}
		if maxI > flc*overloadPct {
			trip("51", fmt.Sprintf("overload: %.1f A above 110%% of nameplate FLC", maxI),
				"check discharge valve position, bearing seizure, or winding condition")
		}
	}

	if res.CurrentUnbalance > ampUnbalanceMax {
		alarm("46", fmt.Sprintf("current unbalance %.1f%% exceeds 10%% limit", res.CurrentUnbalance),
			"check cable connections for hotspots and winding resistance")
	}

	if in.GroundAmp > groundFaultAmp {
		trip("50G", fmt.Sprintf("ground fault: %.2f A leaking to earth", in.GroundAmp),
			"stop the unit and megger the cable and motor windings")
	}

	// Standstill megger result; zero means the test was not performed.
	if in.InsulationMohm > 0 && in.InsulationMohm < insulationMinMohm {
		alarm("64", fmt.Sprintf("insulation resistance %.2f MOhm below the IEEE 43 minimum of %.0f MOhm, wet or degraded winding", in.InsulationMohm, insulationMinMohm),
			"dry out the winding and re-test before energizing")
	}

	return res
}
