package usecase

const (
	// DefaultReportWorkers bounds how many debt schedules are simulated
	// concurrently when assembling a report. Each simulation is CPU-bound
	// and capped by the amortization iteration ceiling, so a small pool is
	// plenty.
	DefaultReportWorkers = 4
)
