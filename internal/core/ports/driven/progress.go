package driven

// ProgressReporter receives progress updates from long-running operations.
type ProgressReporter interface {
	// Start begins reporting for total units of work.
	Start(total int, description string)

	// Increment marks one unit of work as done.
	Increment(description string)

	// Finish completes reporting.
	Finish()
}
