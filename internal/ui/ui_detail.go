package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/oyeong011/go-dday/internal/config"
	"github.com/oyeong011/go-dday/internal/engine"
)

// detailWidgets holds the labels and bars refreshed on every recomputation
// while the detail window is open.
type detailWidgets struct {
	dday         *widget.Label
	remaining    *widget.Label
	dayOfYear    *widget.Label
	weekOfYear   *widget.Label
	yearTitle    *widget.Label
	yearBar      *widget.ProgressBar
	quarterTitle *widget.Label
	quarterBar   *widget.ProgressBar
}

// ShowDetailWindow displays the statistics panel.
// It implements a singleton pattern: if the window is already open, it
// requests focus instead of opening a second copy.
func (app *GoDDayApp) ShowDetailWindow() {
	if app.detailWindow != nil {
		app.detailWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenDetail, config.LogKeyComponent, config.CompUI)

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinDetail))
	w.Resize(fyne.NewSize(config.DetailWinWidth, config.DetailWinHeight))
	app.detailWindow = w

	dw := &detailWidgets{
		dday:         widget.NewLabel(""),
		remaining:    widget.NewLabel(""),
		dayOfYear:    widget.NewLabel(""),
		weekOfYear:   widget.NewLabel(""),
		yearTitle:    widget.NewLabel(""),
		yearBar:      widget.NewProgressBar(),
		quarterTitle: widget.NewLabel(""),
		quarterBar:   widget.NewProgressBar(),
	}
	dw.dday.TextStyle = fyne.TextStyle{Bold: true}
	dw.dday.Alignment = fyne.TextAlignCenter
	dw.remaining.Alignment = fyne.TextAlignCenter
	dw.yearBar.TextFormatter = progressPercent(dw.yearBar)
	dw.quarterBar.TextFormatter = progressPercent(dw.quarterBar)
	app.detail = dw

	accent := canvas.NewRectangle(app.themeColor())
	accent.SetMinSize(fyne.NewSize(0, 4))

	content := container.NewPadded(container.NewVBox(
		accent,
		dw.dday,
		dw.remaining,
		widget.NewSeparator(),
		dw.dayOfYear,
		dw.weekOfYear,
		widget.NewSeparator(),
		dw.yearTitle,
		dw.yearBar,
		dw.quarterTitle,
		dw.quarterBar,
	))

	w.SetContent(content)
	w.SetOnClosed(func() {
		app.detailWindow = nil
		app.detail = nil
	})

	if snap := app.Snapshots.Current(); snap != nil {
		app.updateDetail(snap)
	}
	w.Show()
}

// updateDetail pushes a fresh snapshot into the open detail window, if any.
func (app *GoDDayApp) updateDetail(snap *engine.Snapshot) {
	dw := app.detail
	if dw == nil {
		return
	}

	dw.dday.SetText(snap.DDayText)
	dw.remaining.SetText(snap.RemainingText)
	dw.dayOfYear.SetText(snap.DayOfYearText)
	dw.weekOfYear.SetText(snap.WeekOfYearText)
	dw.yearTitle.SetText(app.yearTitle(snap.Now.Year()))
	dw.yearBar.SetValue(snap.YearProgress)
	dw.quarterTitle.SetText(app.quarterTitle(snap.Quarter))
	dw.quarterBar.SetValue(snap.QuarterProgress)
}

func (app *GoDDayApp) yearTitle(year int) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyYearTitle,
			TemplateData: map[string]interface{}{"Year": year},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return strconv.Itoa(year)
}

func (app *GoDDayApp) quarterTitle(quarter int) string {
	if app.Localizer != nil {
		msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
			MessageID:    config.TKeyQuarterTitle,
			TemplateData: map[string]interface{}{"Quarter": quarter},
		})
		if err == nil && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf(config.FallbackQuarter, quarter)
}

// progressPercent renders a bar's value as a one-decimal percentage.
func progressPercent(bar *widget.ProgressBar) func() string {
	return func() string {
		return fmt.Sprintf("%.1f%%", bar.Value*100)
	}
}

// themeColor resolves the persisted theme color, falling back to the
// platform accent when unset or unparsable.
func (app *GoDDayApp) themeColor() color.Color {
	if c, ok := parseHexColor(app.LoadThemeColor()); ok {
		return c
	}
	return theme.Color(theme.ColorNamePrimary)
}

// parseHexColor decodes a #RRGGBB string.
func parseHexColor(s string) (color.Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return nil, false
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, false
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xFF,
	}, true
}
