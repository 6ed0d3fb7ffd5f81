package ui

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/oyeong011/go-dday/internal/config"
	"github.com/oyeong011/go-dday/internal/engine"
)

//go:embed Icon.png
var appIconData []byte

// GoDDayApp encapsulates the UI state, preferences, and background logic.
type GoDDayApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Engine *engine.Engine
	Clock  engine.Clock // Injected clock for testability (e.g. mocking time travel)

	Tray desktop.App
	Menu *fyne.Menu

	TrayStatusItem   *fyne.MenuItem
	TrayDetailItem   *fyne.MenuItem
	TrayExportItem   *fyne.MenuItem
	TraySettingsItem *fyne.MenuItem

	SupportedLanguages []string
	configChan         chan string

	// Snapshots publishes the latest ProgressSnapshot; readers never see a
	// partial update. frame is the animation counter shared by the fast
	// ticker and the settings save path.
	Snapshots engine.Holder
	frame     atomic.Int64

	detailWindow fyne.Window
	detail       *detailWidgets
}

// NewGoDDayApp constructs the application and wires dependencies.
func NewGoDDayApp(a fyne.App, ctx context.Context) *GoDDayApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	app := &GoDDayApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Clock:              engine.RealClock{}, // Default to real clock in production
		SupportedLanguages: config.SupportedLanguages,
		configChan:         make(chan string, config.ChannelBufferSize),
	}

	app.Engine = &engine.Engine{
		Clock:            app.Clock,
		Calendar:         engine.Gregorian{},
		FormatDDay:       app.buildDDayFormatter(),
		FormatUnit:       app.buildUnitFormatter(),
		FormatDayOfYear:  app.buildDayOfYearFormatter(),
		FormatWeekOfYear: app.buildWeekOfYearFormatter(),
	}

	return app
}

// Run launches the application services and the main UI loop.
func (app *GoDDayApp) Run() {
	app.SetupI18n()
	app.watchPreferences()

	if desk, ok := app.App.(desktop.App); ok {
		app.Tray = desk
		app.Tray.SetSystemTrayIcon(app.App.Icon())
		app.setupTrayMenu()
	} else {
		slog.Warn(config.ErrTrayUnsupported,
			config.LogKeyComponent, config.CompUI)
	}

	go app.tickWorker()
	app.App.Run()
}

// watchPreferences monitors changes to settings to trigger immediate updates.
func (app *GoDDayApp) watchPreferences() {
	app.Preferences.AddChangeListener(func() {
		select {
		case app.configChan <- config.PrefTargetDate:
		default:
		}
	})
}

// setupTrayMenu constructs the system tray menu.
func (app *GoDDayApp) setupTrayMenu() {
	// The status item doubles as a button to open the detail window.
	app.TrayStatusItem = fyne.NewMenuItem(config.FallbackTrayLabel, func() {
		app.ShowDetailWindow()
	})

	app.TrayDetailItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuDetail), func() {
		app.ShowDetailWindow()
	})

	app.TrayExportItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuExport), func() {
		app.exportCalendar()
	})

	app.TraySettingsItem = fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), func() {
		app.ShowSettingsWindow()
	})

	app.Menu = fyne.NewMenu(config.AppName,
		app.TrayStatusItem,
		fyne.NewMenuItemSeparator(),
		app.TrayDetailItem,
		app.TrayExportItem,
		app.TraySettingsItem,
	)

	if app.Tray != nil {
		app.Tray.SetSystemTrayMenu(app.Menu)
	}
}

// RefreshTrayMenu updates localized labels in the tray menu.
func (app *GoDDayApp) RefreshTrayMenu() {
	if app.Menu == nil {
		return
	}
	app.TrayDetailItem.Label = app.GetMsg(config.TKeyMenuDetail)
	app.TrayExportItem.Label = app.GetMsg(config.TKeyMenuExport)
	app.TraySettingsItem.Label = app.GetMsg(config.TKeyMenuSettings)
	app.Menu.Refresh()
}

// tickWorker drives the two periodic triggers: statistics recomputation on
// the slow ticker, frame advancement on the fast one. Both only read the
// current settings and replace the snapshot wholesale, so no locking is
// required beyond the holder's pointer swap.
func (app *GoDDayApp) tickWorker() {
	log := slog.With(config.LogKeyComponent, config.CompWorker)

	app.Recompute()

	statsTicker := time.NewTicker(config.StatsTickInterval)
	defer statsTicker.Stop()
	animTicker := time.NewTicker(config.AnimTickInterval)
	defer animTicker.Stop()

	log.Info(config.MsgWorkerStart)

	for {
		select {
		case <-app.Ctx.Done():
			log.Info(config.MsgWorkerStop)
			return

		case <-app.configChan:
			log.Debug(config.MsgPrefsChanged)
			app.Recompute()

		case <-statsTicker.C:
			app.Recompute()

		case <-animTicker.C:
			app.advanceAnimation()
		}
	}
}

// Recompute derives a fresh snapshot from the current settings and publishes
// it. On a calendar failure the previous snapshot is kept and the error is
// only logged; this path runs on every tick and must never be fatal.
func (app *GoDDayApp) Recompute() {
	target := app.LoadTargetDate()
	style := app.LoadIconStyle()

	snap, err := app.Engine.ComputeSnapshot(target, style, int(app.frame.Load()))
	if err != nil {
		slog.Warn(config.MsgSnapshotKept,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}

	app.Snapshots.Update(snap)
	app.updateTrayStatus(snap, snap.Glyph)
	app.updateDetail(snap)
}

// advanceAnimation moves the icon to its next frame without recomputing the
// statistics; the glyph is rederived from the last published snapshot.
func (app *GoDDayApp) advanceAnimation() {
	style := app.LoadIconStyle()
	next := engine.AdvanceFrame(style, int(app.frame.Load()))
	app.frame.Store(int64(next))

	snap := app.Snapshots.Current()
	if snap == nil {
		return
	}
	app.updateTrayStatus(snap, engine.CurrentIconFrame(style, snap.YearProgress, next))
}

// updateTrayStatus rewrites the compact tray label.
func (app *GoDDayApp) updateTrayStatus(snap *engine.Snapshot, glyph string) {
	if app.Menu == nil || app.TrayStatusItem == nil {
		return
	}
	app.TrayStatusItem.Label = compactLabel(app.LoadDisplayStyle(), snap, glyph)
	app.Menu.Refresh()
}

// compactLabel renders the one-line tray text: the animated glyph plus
// either the year percentage or the D-Day count, per the display style.
func compactLabel(style engine.DisplayStyle, snap *engine.Snapshot, glyph string) string {
	if style == engine.DisplayDDay {
		return glyph + " " + snap.DDayText
	}
	return fmt.Sprintf("%s %.1f%%", glyph, snap.YearProgress*100)
}

// -----------------------------------------------------------------------------
// Preference accessors
// -----------------------------------------------------------------------------

// LoadTargetDate reads the persisted target date. Missing or corrupt values
// silently fall back to the last day of the current year.
func (app *GoDDayApp) LoadTargetDate() time.Time {
	raw := app.Preferences.String(config.PrefTargetDate)
	if raw != "" {
		if t, err := time.ParseInLocation(config.DatePrefLayout, raw, time.Local); err == nil {
			return t
		}
		slog.Debug(config.ErrDateParse,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyTarget, raw)
	}
	return engine.DefaultTarget(app.Clock.Now())
}

// SetTargetDate persists a new target and recomputes immediately so the UI
// reflects the edit without waiting for the next tick.
func (app *GoDDayApp) SetTargetDate(target time.Time) {
	app.Preferences.SetString(config.PrefTargetDate, target.Format(config.DatePrefLayout))
	app.Recompute()
}

func (app *GoDDayApp) LoadDisplayStyle() engine.DisplayStyle {
	return engine.ParseDisplayStyle(app.Preferences.StringWithFallback(config.PrefDisplayStyle, config.StylePercent))
}

func (app *GoDDayApp) LoadIconStyle() engine.IconStyle {
	return engine.ParseIconStyle(app.Preferences.StringWithFallback(config.PrefIconStyle, config.IconPie))
}

func (app *GoDDayApp) LoadThemeColor() string {
	return app.Preferences.StringWithFallback(config.PrefThemeColor, config.ThemeColorAccent)
}

// -----------------------------------------------------------------------------
// Localized formatters injected into the engine
// -----------------------------------------------------------------------------

// buildDDayFormatter returns a closure that localizes the D-Day label.
// The closure reads app.Localizer at call time so language switches take
// effect on the next recomputation.
func (app *GoDDayApp) buildDDayFormatter() func(days int) string {
	return func(days int) string {
		if app.Localizer == nil {
			return fallbackDDay(days)
		}

		var cfg *i18n.LocalizeConfig
		switch {
		case days == 0:
			cfg = &i18n.LocalizeConfig{MessageID: config.TKeyDDayToday}
		case days > 0:
			cfg = &i18n.LocalizeConfig{
				MessageID:    config.TKeyDDayFuture,
				TemplateData: map[string]interface{}{"Count": days},
				PluralCount:  days,
			}
		default:
			cfg = &i18n.LocalizeConfig{
				MessageID:    config.TKeyDDayPast,
				TemplateData: map[string]interface{}{"Count": -days},
				PluralCount:  -days,
			}
		}

		msg, err := app.Localizer.Localize(cfg)
		if err != nil || msg == "" {
			return fallbackDDay(days)
		}
		return msg
	}
}

func fallbackDDay(days int) string {
	switch {
	case days == 0:
		return config.FallbackDDayToday
	case days > 0:
		return fmt.Sprintf(config.FallbackDDayFuture, days)
	default:
		return fmt.Sprintf(config.FallbackDDayPast, -days)
	}
}

// buildUnitFormatter returns a closure that localizes one remaining-time
// unit phrase with plural support.
func (app *GoDDayApp) buildUnitFormatter() func(unit engine.Unit, count int) string {
	keys := map[engine.Unit]string{
		engine.UnitMonths: config.TKeyUnitMonths,
		engine.UnitDays:   config.TKeyUnitDays,
		engine.UnitHours:  config.TKeyUnitHours,
	}
	fallbacks := map[engine.Unit]string{
		engine.UnitMonths: config.FallbackMonths,
		engine.UnitDays:   config.FallbackDays,
		engine.UnitHours:  config.FallbackHours,
	}

	return func(unit engine.Unit, count int) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    keys[unit],
				TemplateData: map[string]interface{}{"Count": count},
				PluralCount:  count,
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(fallbacks[unit], count)
	}
}

func (app *GoDDayApp) buildDayOfYearFormatter() func(day, total int) string {
	return func(day, total int) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyDayOfYear,
				TemplateData: map[string]interface{}{"Day": day, "Total": total},
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(config.FallbackDayOfYear, day, total)
	}
}

func (app *GoDDayApp) buildWeekOfYearFormatter() func(week int) string {
	return func(week int) string {
		if app.Localizer != nil {
			msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyWeekOfYear,
				TemplateData: map[string]interface{}{"Week": week},
			})
			if err == nil && msg != "" {
				return msg
			}
		}
		return fmt.Sprintf(config.FallbackWeekOfYear, week)
	}
}

// -----------------------------------------------------------------------------
// Calendar export
// -----------------------------------------------------------------------------

// exportCalendar writes the target date as an .ics file chosen by the user.
func (app *GoDDayApp) exportCalendar() {
	target := app.LoadTargetDate()

	summary := ""
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyEvtSummary,
			TemplateData: map[string]interface{}{"Date": target.Format(config.DatePrefLayout)},
		})
		if err == nil {
			summary = msg
		}
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyMenuExport))
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, config.DetailWinHeight))

	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		defer w.Close()
		if err != nil || wc == nil {
			return
		}
		defer func() { _ = wc.Close() }()

		data, exportErr := app.Engine.ExportICS(target, summary)
		if exportErr == nil {
			_, exportErr = wc.Write(data)
		}

		if exportErr != nil {
			slog.Error(config.ErrExportFailed,
				config.LogKeyComponent, config.CompExport,
				config.LogKeyError, exportErr)
			app.App.SendNotification(fyne.NewNotification(
				config.TitleExportError, app.GetMsg(config.TKeyNotifExportErr)))
			return
		}

		app.App.SendNotification(fyne.NewNotification(
			config.AppName, app.GetMsg(config.TKeyNotifExportOK)))
	}, w)

	d.SetFileName(config.ICalCalName + config.ExtICS)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))

	w.Show()
	d.Show()
}
