package logging

import "context"

// Error logs an unexpected error with a uniform message so that all
// failure sites are greppable by the same line.
func Error(ctx context.Context, log Logger, err error, entries ...LogEntry) {
	entries = append(entries, Entry("err", err))
	log.Error(ctx, "Unexpected error occurred.", entries...)
}
