// Package services implements the driving port interfaces.
// Services contain the core business logic: the observation pipeline
// (fetch, extract, diff, reconcile, log, commit) and the read-only
// reporting views. They orchestrate calls to driven ports (adapters).
//
// Services are pure Go with no external infrastructure dependencies.
package services
