// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The tag pipeline (TagService) is pure: it performs no I/O and keeps no
// state between calls, so it may be shared across goroutines.
package services
