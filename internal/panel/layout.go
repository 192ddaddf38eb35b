package panel

// Sizing constants for the correction panel.
const (
	// Width is the fixed panel width in points.
	Width = 320

	// RowHeight is the height of one issue row in points.
	RowHeight = 44

	// Padding is the inner padding in points.
	Padding = 12

	// CornerRadius is the panel corner radius in points.
	CornerRadius = 8

	// MaxVisibleIssues caps the rows shown before the panel scrolls.
	MaxVisibleIssues = 5

	// MaxSuggestions caps the replacement candidates offered per issue.
	MaxSuggestions = 5

	// PreviewMaxLength bounds the one-line text preview shown in a row.
	PreviewMaxLength = 60

	// TooltipMaxLength bounds the tooltip sentence length.
	TooltipMaxLength = 120
)

// Display strings for the correction panel.
const (
	// Title is the panel title.
	Title = "Writing Assistant"

	// EmptyMessage is shown when no issues remain.
	EmptyMessage = "No issues found"

	// FixLineLabel is the label of the fix-current-line action.
	FixLineLabel = "Fix This Line"
)
