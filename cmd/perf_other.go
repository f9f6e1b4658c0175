//go:build !linux

package cmd

import "github.com/sirupsen/logrus"

func runWithCounters(f func() error) error {
	logrus.Warn("perf counters are only available on Linux")
	return f()
}
