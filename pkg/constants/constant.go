package constants

const (
	// HistoryPlaylistTitle is the display title given to the lazily created
	// per-user history playlist. Lookup is done by kind, never by title.
	HistoryPlaylistTitle = "History"

	// HistoryListLimit caps how many history entries a listing returns.
	HistoryListLimit = 60

	// ExpandedPlaylistPreview / CollapsedPlaylistPreview bound the number of
	// preview videos returned per playlist in listings.
	ExpandedPlaylistPreview  = 6
	CollapsedPlaylistPreview = 1

	DefaultFeedCount = 20
	MaxFeedCount     = 60

	MinMessageLen = 5
	MaxMessageLen = 300

	MaxTitleLen       = 120
	MaxDescriptionLen = 5000
)
