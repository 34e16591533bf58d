package config

// Layout constants.
const (
	// ProgressWidth is the preferred width of a timer progress bar.
	ProgressWidth = 30

	// MinProgressWidth is the smallest progress bar drawn.
	MinProgressWidth = 10

	// CompactModeThreshold triggers compact rendering below this width.
	CompactModeThreshold = 60

	// MaxNameWidth limits timer names in list rows.
	MaxNameWidth = 30

	// MaxVisibleHistory limits history rows before the oldest are hidden.
	MaxVisibleHistory = 15

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."
)

// Input constraints.
const (
	MaxNameLength     = 60
	MaxCategoryLength = 40
	MaxDurationLength = 12
)
