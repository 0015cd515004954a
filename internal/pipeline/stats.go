package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Targets      int   // discovered targets
	Current      int   // 1-based index of the target being processed
	SplitFiles   int   // targets split successfully
	Records      int   // output records written across all targets
	Skipped      int   // subdirectories without the target filename
	Failed       int   // targets that hit a fatal error
	BytesWritten int64 // bytes written across all outputs
}
