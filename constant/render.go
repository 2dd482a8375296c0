package constant

// Screen & Layout
const (
	// CellAspect is the height:width ratio correction for terminal
	// cells: one row covers roughly two columns of visual distance
	CellAspect = 0.5

	// WorldRadiusAU is the half-width of the viewport in AU, sized so
	// the outermost default orbit (Mars, 1.524 AU) stays on screen
	WorldRadiusAU = 1.7

	// InfoPanelWidth is the selected-body panel width in cells
	InfoPanelWidth = 38

	// SpeedHistorySize is the sample count for the info panel sparkline
	SpeedHistorySize = 120

	// SparklineHeight is the asciigraph chart height in rows
	SparklineHeight = 4

	// TrailGlyphs are trail point runes from oldest to newest
	TrailGlyphs = "·∙•"
)
