package main

// Exit codes for md2html CLI.
// Every failure shares one code: scripts only need to tell success from failure.
const (
	ExitSuccess = 0 // Output written
	ExitFailure = 1 // Usage, input, config, conversion or write error
)

// exitCodeFor returns the exit code for an error returned by runConvert.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return ExitFailure
}
