// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TextFetcher: Retrieves an upstream source as extracted text
//   - RosterExtractor: Parses roster text into booking records
//   - ReleaseExtractor: Parses the release feed into release details
//   - NameMatcher: Matches a booking name against the release feed
//   - StateStore: Snapshot and pending-queue persistence
//   - ChangeLog: Append-only audit log
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or extractor package
package driven
