package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go D-Day"
	AppID       = "com.github.oyeong011.go-dday"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	SettingsWindowWidth = 480
	DetailWinWidth      = 420
	DetailWinHeight     = 360

	// Preference Keys
	PrefTargetDate   = "target_date"
	PrefDisplayStyle = "display_style"
	PrefIconStyle    = "icon_style"
	PrefThemeColor   = "theme_color"
	PrefLanguage     = "language"
	PrefLastRun      = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "ko"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinSettings = "win_settings_title"
	TKeyWinDetail   = "win_detail_title"

	TKeyMenuDetail   = "menu_detail"
	TKeyMenuSettings = "menu_settings"
	TKeyMenuExport   = "menu_export"

	// D-Day label templates. Future/Past require Count.
	TKeyDDayToday  = "dday_today"
	TKeyDDayFuture = "dday_future"
	TKeyDDayPast   = "dday_past"

	// Remaining-time unit phrases. All require Count.
	TKeyUnitMonths = "unit_months"
	TKeyUnitDays   = "unit_days"
	TKeyUnitHours  = "unit_hours"

	// Statistics templates.
	TKeyDayOfYear    = "day_of_year"   // Requires Day, Total
	TKeyWeekOfYear   = "week_of_year"  // Requires Week
	TKeyYearTitle    = "year_title"    // Requires Year
	TKeyQuarterTitle = "quarter_title" // Requires Quarter

	// Settings form.
	TKeyLblGeneral    = "lbl_general"
	TKeyLblAppearance = "lbl_appearance"
	TKeyLblTarget     = "lbl_target_date"
	TKeyLblYear       = "lbl_year"
	TKeyLblMonth      = "lbl_month"
	TKeyLblDay        = "lbl_day"
	TKeyLblDisplay    = "lbl_display_style"
	TKeyLblIcon       = "lbl_icon_style"
	TKeyLblColor      = "lbl_theme_color"
	TKeyLblLanguage   = "lbl_language"
	TKeyHelpLanguage  = "help_language"
	TKeyHelpTarget    = "help_target_date"
	TKeyBtnSave       = "btn_save"
	TKeyBtnCancel     = "btn_cancel"
	TKeyLblFooter     = "lbl_footer"

	// Display style titles.
	TKeyStylePercent = "style_percent"
	TKeyStyleDDay    = "style_dday"

	// Icon animation style titles.
	TKeyIconPie       = "icon_pie"
	TKeyIconClock     = "icon_clock"
	TKeyIconBattery   = "icon_battery"
	TKeyIconHourglass = "icon_hourglass"
	TKeyIconMoon      = "icon_moon"

	// Theme colors.
	TKeyColorAccent = "color_accent"
	TKeyColorRed    = "color_red"
	TKeyColorOrange = "color_orange"
	TKeyColorGreen  = "color_green"
	TKeyColorBlue   = "color_blue"
	TKeyColorPurple = "color_purple"

	// Export notifications & event summary.
	TKeyNotifExportOK  = "notif_export_success"
	TKeyNotifExportErr = "notif_err_export"
	TKeyEvtSummary     = "event_summary" // Requires Date

	// Validation errors (UI).
	TKeyErrDateInvalid = "err_date_invalid"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// DatePrefLayout is the storage format of the target date preference.
	DatePrefLayout = "2006-01-02"

	// Display style codes persisted in preferences.
	StylePercent = "percent"
	StyleDDay    = "dday"

	// Icon animation style codes persisted in preferences.
	IconPie       = "pie"
	IconClock     = "clock"
	IconBattery   = "battery"
	IconHourglass = "hourglass"
	IconMoon      = "moon"

	// ThemeColorAccent is the sentinel for "use the platform accent color".
	ThemeColorAccent = ""
)

// -----------------------------------------------------------------------------
// Timers
// -----------------------------------------------------------------------------

const (
	// StatsTickInterval drives snapshot recomputation.
	StatsTickInterval = 1 * time.Second

	// AnimTickInterval drives icon frame advancement. It is deliberately
	// faster than StatsTickInterval so the glyph animates between refreshes.
	AnimTickInterval = 200 * time.Millisecond
)

// -----------------------------------------------------------------------------
// Standards: iCalendar (Export)
// -----------------------------------------------------------------------------

const (
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go D-Day//Engine//EN"
	ICalCalName   = "D-Day"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "godday"
	ICalRRule     = "FREQ=YEARLY"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRRule       = "RRULE"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	// ICalAlarmTrigger fires the display alarm at the day boundary itself.
	ICalAlarmTrigger = "PT0S"

	FormatUID = "%s-%d@%s"
	ExtICS    = ".ics"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrYearInterval    = "calendar could not produce a year interval"
	ErrQuarterInterval = "calendar could not produce a quarter interval"
	ErrSnapshotFailed  = "snapshot computation failed"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrExportFailed    = "calendar export failed"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrTrayUnsupported = "system tray not supported on this platform/driver"
	ErrLocNotInit      = "localizer not initialized"
	ErrDateParse       = "unable to parse stored target date"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	// English fallbacks used when the localizer is unavailable.
	FallbackDDayToday  = "D-Day"
	FallbackDDayFuture = "D-%d"
	FallbackDDayPast   = "D+%d"
	FallbackMonths     = "%dmo"
	FallbackDays       = "%dd"
	FallbackHours      = "%dh"
	FallbackDayOfYear  = "Day %d of %d"
	FallbackWeekOfYear = "Week %d"
	FallbackQuarter    = "Q%d"
	FallbackSummary    = "D-Day: %s"
	FallbackTrayLabel  = "Go D-Day"

	TitleExportError = "Export Error"

	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgWorkerStart   = "Tick worker started"
	MsgWorkerStop    = "Tick worker stopping due to context cancellation"
	MsgSnapshotKept  = "Keeping previous snapshot"
	MsgSnapshotDone  = "Snapshot computed"
	MsgPrefsChanged  = "Preferences changed, recomputing"
	MsgSettingsSaved = "Saving preferences"
	MsgExportDone    = "Calendar export written"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgOpenDetail    = "Opening detail window"
	MsgOpenSettings  = "Opening settings window"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyTarget    = "target"
	LogKeyStyle     = "style"
	LogKeyDays      = "days"
	LogKeyProgress  = "year_progress"
	LogKeyQuarter   = "quarter"
	LogKeyFrame     = "frame"
	LogKeyPath      = "path"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompExport = "export"
	CompWorker = "worker"
	CompMain   = "main"
	CompI18n   = "i18n"
)

// -----------------------------------------------------------------------------
// UI Layout Constants
// -----------------------------------------------------------------------------

const (
	LayoutColumnsDouble = 2
	LayoutColumnsTriple = 3
)
