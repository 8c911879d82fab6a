package port

// ErrorSink is the one feedback channel for engine failures. The
// presentation layer supplies it; every failed command is reported with the
// SQL text that failed and the engine's error. Nothing is retried and
// nothing is silently dropped.
type ErrorSink interface {
	ReportError(command string, err error)
}
