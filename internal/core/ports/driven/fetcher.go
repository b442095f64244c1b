package driven

import "context"

// TextFetcher retrieves an upstream source as already-extracted text.
// Text extraction from the source's document format (HTML, PDF) is the
// adapter's concern; the core only ever sees text.
//
// There is no retry or backoff: a non-success response or transport
// error fails the call, which aborts the run.
type TextFetcher interface {
	// FetchText retrieves url and returns its extracted text content.
	FetchText(ctx context.Context, url string) (string, error)
}
