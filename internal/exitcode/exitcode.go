// Package exitcode defines the process exit statuses of bpagen.
package exitcode

const (
	Success      = 0
	UsageError   = 1
	SourceError  = 2 // an input could not be opened or read
	MissingField = 3
	DateError    = 4
	WriteError   = 5
	DBConnError  = 6
)
