// Package driving defines the interfaces that core exposes to callers.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI (and any future dashboard, scheduler, or notifier) invokes
// the core exclusively through these interfaces.
package driving
