// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Window - these keys size and title the player window.
const (
	WindowWidth  = "window.width"
	WindowHeight = "window.height"
	WindowTitle  = "window.title"
)

// Seek Bar Geometry - these keys shape the track, its timing and its labels.
const (
	SeekbarPadding     = "seekbar.padding"
	SeekbarTrackHeight = "seekbar.track_height"
	SeekbarDuration    = "seekbar.duration"
	SeekbarLoadingTime = "seekbar.loading_time"
	SeekbarNudgeOffset = "seekbar.nudge_offset"
	SeekbarFontSize    = "seekbar.font_size"
	SeekbarFontPath    = "seekbar.font_path"
	SeekbarAccentColor = "seekbar.accent_color"
)

// Resources - these keys point at optional icon images and chapter files on disk.
const (
	AssetsPath   = "assets.path"
	ChaptersFile = "chapters.file"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys map terminal cells onto seek bar pixels.
const (
	TUICellWidth  = "tui.cell_width"
	TUICellHeight = "tui.cell_height"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
