package models

// DefaultHistoryLimit is the maximum number of undo entries retained.
// The oldest entry is evicted first once the limit is reached.
const DefaultHistoryLimit = 50

// SearchResultLimit caps how many matches a board search returns.
const SearchResultLimit = 10

// ExportVersion is the semantic version stamped on JSON exports.
const ExportVersion = "1.0.0"

// DateLayout is the calendar-date format used for due dates and period
// boundaries. Civil dates only; no time component.
const DateLayout = "2006-01-02"
