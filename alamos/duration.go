package alamos

import "time"

// Duration measures wall-clock durations between Start and Stop calls.
type Duration interface {
	Metric[time.Duration]
	Start()
	Stop() time.Duration
}

type duration struct {
	start time.Time
	Metric[time.Duration]
}

func (d *duration) Start() {
	if !d.start.IsZero() {
		panic("duration metric already started. please call Stop() first")
	}
	d.start = time.Now()
}

func (d *duration) Stop() time.Duration {
	if d.start.IsZero() {
		panic("duration metric not started. please call Start() first")
	}
	t := time.Since(d.start)
	d.start = time.Time{}
	d.Record(t)
	return t
}

func NewSeriesDuration(exp Experiment, key string) Duration {
	return &duration{Metric: NewSeries[time.Duration](exp, key)}
}

func NewGaugeDuration(exp Experiment, key string) Duration {
	return &duration{Metric: NewGauge[time.Duration](exp, key)}
}
