package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/oyeong011/go-dday/internal/config"
	"github.com/oyeong011/go-dday/internal/engine"
)

// themeColorOption pairs a translation key with the persisted color value.
type themeColorOption struct {
	titleKey string
	value    string
}

// themeColorOptions is the fixed palette offered in the settings form. The
// empty value means "platform accent".
var themeColorOptions = []themeColorOption{
	{config.TKeyColorAccent, config.ThemeColorAccent},
	{config.TKeyColorRed, "#FF3B30"},
	{config.TKeyColorOrange, "#FF9500"},
	{config.TKeyColorGreen, "#34C759"},
	{config.TKeyColorBlue, "#007AFF"},
	{config.TKeyColorPurple, "#AF52DE"},
}

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect    *widget.Select
	displaySelect *widget.Select
	iconSelect    *widget.Select
	colorSelect   *widget.Select
	entryYear     *NumericalEntry
	entryMonth    *NumericalEntry
	entryDay      *NumericalEntry
}

// ShowSettingsWindow displays the configuration dialog allowing users to manage settings.
func (app *GoDDayApp) ShowSettingsWindow() {
	if app.Window != nil {
		slog.Debug("Settings window already open, requesting focus", config.LogKeyComponent, config.CompUISet)
		app.Window.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.Window = w

	sw := &settingsWidgets{}

	// --- 1. Target Date ---
	target := app.LoadTargetDate()

	sw.entryYear = NewNumericalEntry()
	sw.entryYear.SetText(strconv.Itoa(target.Year()))
	sw.entryMonth = NewNumericalEntry()
	sw.entryMonth.SetText(strconv.Itoa(int(target.Month())))
	sw.entryDay = NewNumericalEntry()
	sw.entryDay.SetText(strconv.Itoa(target.Day()))

	dateRow := container.NewGridWithColumns(config.LayoutColumnsTriple,
		container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblYear)), sw.entryYear),
		container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblMonth)), sw.entryMonth),
		container.NewBorder(nil, nil, nil, widget.NewLabel(app.GetMsg(config.TKeyLblDay)), sw.entryDay),
	)

	itemTarget := widget.NewFormItem(app.GetMsg(config.TKeyLblTarget), dateRow)
	itemTarget.HintText = app.GetMsg(config.TKeyHelpTarget)
	targetCard := widget.NewCard(app.GetMsg(config.TKeyLblTarget), "", widget.NewForm(itemTarget))

	// --- 2. Appearance (display style, icon style, theme color) ---
	displayTitles, displayByTitle := app.displayStyleOptions()
	sw.displaySelect = widget.NewSelect(displayTitles, nil)
	sw.displaySelect.SetSelected(app.GetMsg(app.LoadDisplayStyle().TitleKey()))

	iconTitles, iconByTitle := app.iconStyleOptions()
	sw.iconSelect = widget.NewSelect(iconTitles, nil)
	sw.iconSelect.SetSelected(app.GetMsg(app.LoadIconStyle().TitleKey()))

	colorTitles, colorByTitle := app.themeColorChoices()
	sw.colorSelect = widget.NewSelect(colorTitles, nil)
	sw.colorSelect.SetSelected(app.currentColorTitle())

	appearanceForm := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblDisplay), sw.displaySelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblIcon), sw.iconSelect),
		widget.NewFormItem(app.GetMsg(config.TKeyLblColor), sw.colorSelect),
	)
	appearanceCard := widget.NewCard(app.GetMsg(config.TKeyLblAppearance), "", appearanceForm)

	// --- 3. General (language) ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang))

	// --- Actions ---
	saveAction := func() {
		newTarget, err := composeTargetDate(sw.entryYear.Text, sw.entryMonth.Text, sw.entryDay.Text)
		if err != nil {
			dialog.ShowError(errors.New(app.GetMsg(config.TKeyErrDateInvalid)), w)
			return
		}
		app.saveSettings(sw, newTarget, displayByTitle, iconByTitle, colorByTitle, w)
	}

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), saveAction)
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	// --- Footer ---
	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	paddedContent := container.NewPadded(container.NewVBox(
		targetCard,
		appearanceCard,
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.Window = nil })
	w.Show()
}

// displayStyleOptions returns the localized titles in canonical order and a
// reverse map from title back to the persisted code.
func (app *GoDDayApp) displayStyleOptions() ([]string, map[string]engine.DisplayStyle) {
	titles := make([]string, 0, len(engine.AllDisplayStyles))
	byTitle := make(map[string]engine.DisplayStyle, len(engine.AllDisplayStyles))
	for _, style := range engine.AllDisplayStyles {
		title := app.GetMsg(style.TitleKey())
		titles = append(titles, title)
		byTitle[title] = style
	}
	return titles, byTitle
}

func (app *GoDDayApp) iconStyleOptions() ([]string, map[string]engine.IconStyle) {
	titles := make([]string, 0, len(engine.AllIconStyles))
	byTitle := make(map[string]engine.IconStyle, len(engine.AllIconStyles))
	for _, style := range engine.AllIconStyles {
		title := app.GetMsg(style.TitleKey())
		titles = append(titles, title)
		byTitle[title] = style
	}
	return titles, byTitle
}

func (app *GoDDayApp) themeColorChoices() ([]string, map[string]string) {
	titles := make([]string, 0, len(themeColorOptions))
	byTitle := make(map[string]string, len(themeColorOptions))
	for _, opt := range themeColorOptions {
		title := app.GetMsg(opt.titleKey)
		titles = append(titles, title)
		byTitle[title] = opt.value
	}
	return titles, byTitle
}

// currentColorTitle maps the persisted color value back to its localized
// title; unknown values fall back to the accent entry.
func (app *GoDDayApp) currentColorTitle() string {
	current := app.LoadThemeColor()
	for _, opt := range themeColorOptions {
		if opt.value == current {
			return app.GetMsg(opt.titleKey)
		}
	}
	return app.GetMsg(config.TKeyColorAccent)
}

// composeTargetDate builds a day-boundary date from the three entry fields.
// Normalization is rejected: Feb 30 is an error, not March 2.
func composeTargetDate(yearText, monthText, dayText string) (time.Time, error) {
	year, errY := strconv.Atoi(yearText)
	month, errM := strconv.Atoi(monthText)
	day, errD := strconv.Atoi(dayText)
	if errY != nil || errM != nil || errD != nil {
		return time.Time{}, errors.New(config.ErrDateParse)
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return time.Time{}, errors.New(config.ErrDateParse)
	}
	return t, nil
}

// saveSettings persists the form and applies it immediately: localizer and
// tray labels refresh, and the snapshot is recomputed without waiting for
// the next tick.
func (app *GoDDayApp) saveSettings(
	sw *settingsWidgets,
	target time.Time,
	displayByTitle map[string]engine.DisplayStyle,
	iconByTitle map[string]engine.IconStyle,
	colorByTitle map[string]string,
	w fyne.Window,
) {
	slog.Info(config.MsgSettingsSaved, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)

	if style, ok := displayByTitle[sw.displaySelect.Selected]; ok {
		app.Preferences.SetString(config.PrefDisplayStyle, string(style))
	}
	if style, ok := iconByTitle[sw.iconSelect.Selected]; ok {
		app.Preferences.SetString(config.PrefIconStyle, string(style))
	}
	if value, ok := colorByTitle[sw.colorSelect.Selected]; ok {
		app.Preferences.SetString(config.PrefThemeColor, value)
	}

	app.Preferences.SetString(config.PrefTargetDate, target.Format(config.DatePrefLayout))

	// Trigger system-wide updates
	app.UpdateLocalizer()
	app.RefreshTrayMenu()
	app.Recompute()

	w.Close()
}
