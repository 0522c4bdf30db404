package runtime

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

// TimeoutWatcher sleeps for d, then calls terminate once, unless stop is
// closed first. Intended to run in its own goroutine alongside a
// driver.Solver's Run call:
//
//	stop := make(chan struct{})
//	go runtime.TimeoutWatcher(d, solver.Terminate, stop)
//	defer close(stop)
//	solver.Run()
func TimeoutWatcher(d time.Duration, terminate func(), stop <-chan struct{}) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		terminate()
	case <-stop:
	}
}

// ObjectiveLogger polls get every interval (100ms if interval <= 0) and
// logs the returned value through logger whenever it changes, matching
// the original solver's relaxed-atomic-read logging thread. get's second
// return reports whether any incumbent has been found yet; false values
// are not logged. Returns once stop is closed.
func ObjectiveLogger(get func() (float64, bool), logger *logrus.Logger, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := math.NaN()
	for {
		select {
		case <-ticker.C:
			v, ok := get()
			if !ok {
				continue
			}
			if last != v {
				logger.Infof("incumbent objective: %.6g", v)
				last = v
			}
		case <-stop:
			return
		}
	}
}
