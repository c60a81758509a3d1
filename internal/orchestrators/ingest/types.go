package ingest

// RunInput defines the request for a crawl
type RunInput struct {
	// FirstID and LastID bound the crawl, inclusive. Zero values mean 1 and DefaultLastID.
	FirstID int
	LastID  int
}

// RunOutput defines the result of a crawl
type RunOutput struct {
	RunID   string
	Written int
	Skipped []Skip
}

// Skip records an id the crawl could not turn into a creature
type Skip struct {
	ID     int
	Reason string
}
