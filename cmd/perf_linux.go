package cmd

import (
	perf "github.com/hodgesds/perf-utils"
	"github.com/sirupsen/logrus"
)

// runWithCounters runs f under a CPU cycle counter. Counters are unavailable without
// perf_event access, in which case f runs unmeasured.
func runWithCounters(f func() error) (err error) {
	var (
		ran  bool
		fErr error
	)
	pv, err := perf.CPUCycles(func() error {
		ran = true
		fErr = f()
		return fErr
	})
	switch {
	case !ran:
		logrus.WithError(err).Warn("perf counters unavailable")
		return f()
	case fErr != nil:
		return fErr
	case err != nil:
		logrus.WithError(err).Warn("reading perf counters")
		return nil
	}
	fields := logrus.Fields{"cpu_cycles": pv.Value}
	if pv.TimeRunning > 0 && pv.TimeRunning < pv.TimeEnabled {
		// Multiplexed counter, scale to the enabled time
		fields["cpu_cycles_scaled"] = uint64(float64(pv.Value) * float64(pv.TimeEnabled) / float64(pv.TimeRunning))
	}
	logrus.WithFields(fields).Info("perf")
	return nil
}
