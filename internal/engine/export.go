package engine

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/oyeong011/go-dday/internal/config"
)

// ExportICS renders the target date as a yearly recurring all-day event so
// the D-Day can be subscribed to from any calendar application. The summary
// is expected to be localized by the caller.
func (e *Engine) ExportICS(target time.Time, summary string) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := e.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID,
		fmt.Sprintf(config.FormatUID, target.Format(config.DatePrefLayout), target.Year(), config.ICalDomain))

	if summary == "" {
		summary = fmt.Sprintf(config.FallbackSummary, target.Format(config.DatePrefLayout))
	}
	event.Props.SetText(config.PropSummary, summary)

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(target)
	event.Props.Set(dtStartProp)

	// Recur yearly so the anniversary stays on the calendar after the
	// target has passed.
	rruleProp := ical.NewProp(config.PropRRule)
	rruleProp.Value = config.ICalRRule
	event.Props.Set(rruleProp)

	event.Props.Set(dtStampProp)
	addAlarm(event, config.ICalAlarmTrigger, summary)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExport,
		config.LogKeyTarget, target.Format(config.DatePrefLayout),
	)
	return buf.Bytes(), nil
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
