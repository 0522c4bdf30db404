// Package runtime supplies the two auxiliary goroutines the command-line
// driver runs alongside the search loop: a timeout watchdog that calls
// Terminate once a deadline passes, and an objective-progress logger that
// polls the live incumbent and logs it whenever it changes.
package runtime
