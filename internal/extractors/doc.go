// Package extractors contains the parsers that turn upstream text dumps
// into domain records.
//
// Extractors implement the driven extractor ports. They are pure
// functions of their input text and never fail: the upstream formats
// are known to drift, so unparsable fields degrade to sentinel values
// (fail-soft) and the damage is reported through extraction stats.
package extractors
