package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/specialistvlad/falbricator/internal/generator"
	"github.com/specialistvlad/falbricator/internal/value"
)

// Output formats of timestamp generators (`as`).
const (
	asDate        = "date"
	asISODatetime = "isoDatetime"
	asISODate     = "isoDate"
	asISOTime     = "isoTime"
	asTimestamp   = "timestamp"
)

var timestampFormats = []string{asDate, asISODatetime, asISODate, asISOTime, asTimestamp}

type timeUnit string

const (
	unitSecond  timeUnit = "SECOND"
	unitMinute  timeUnit = "MINUTE"
	unitHour    timeUnit = "HOUR"
	unitDay     timeUnit = "DAY"
	unitWeek    timeUnit = "WEEK"
	unitMonth   timeUnit = "MONTH"
	unitYear    timeUnit = "YEAR"
	unitCentury timeUnit = "CENTURY"
)

// approximate is used only to compare interval lengths.
func (u timeUnit) approximate() (time.Duration, bool) {
	const day = 24 * time.Hour
	switch u {
	case unitSecond:
		return time.Second, true
	case unitMinute:
		return time.Minute, true
	case unitHour:
		return time.Hour, true
	case unitDay:
		return day, true
	case unitWeek:
		return 7 * day, true
	case unitMonth:
		return 30 * day, true
	case unitYear:
		return 365 * day, true
	case unitCentury:
		return 36500 * day, true
	}
	return 0, false
}

// shift moves t by n units; n may be negative.
func (u timeUnit) shift(t time.Time, n int) time.Time {
	switch u {
	case unitMonth:
		return t.AddDate(0, n, 0)
	case unitYear:
		return t.AddDate(n, 0, 0)
	case unitCentury:
		return t.AddDate(100*n, 0, 0)
	}
	d, _ := u.approximate()
	return t.Add(time.Duration(n) * d)
}

func parseUnit(raw string) (timeUnit, error) {
	u := timeUnit(strings.ToUpper(raw))
	if _, ok := u.approximate(); !ok {
		return "", fmt.Errorf("unrecognized time unit '%s'", raw)
	}
	return u, nil
}

// Datetime draws an instant from [`from`, `to`] and renders it per `as`
// (default isoDatetime). Bounds are ISO strings, dates or Unix milliseconds.
func Datetime(cfg generator.Config) (generator.Func, error) {
	rawFrom, ok := cfg.Get("from")
	if !ok {
		return nil, errors.New("can't generate a timestamp - configuration property 'from' is missing")
	}
	rawTo, ok := cfg.Get("to")
	if !ok {
		return nil, errors.New("can't generate a timestamp - configuration property 'to' is missing")
	}
	from, err := parseInstant(rawFrom)
	if err != nil {
		return nil, err
	}
	to, err := parseInstant(rawTo)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, fmt.Errorf("can't generate a timestamp - 'from' (%s) is after 'to' (%s)", formatTime(from), formatTime(to))
	}
	as, err := timestampFormat(cfg)
	if err != nil {
		return nil, err
	}
	return between(from, to, as), nil
}

// DatetimeWithMargin draws an instant on one side of the anchor:
//
//	BEFORE:  [anchor - upTo, anchor - margin]
//	AFTER:   [anchor + margin, anchor + upTo]
//
// The anchor is `reference` or the compile time.
func DatetimeWithMargin(cfg generator.Config) (generator.Func, error) {
	direction, err := cfg.String("direction", "")
	if err != nil {
		return nil, err
	}
	sign := 0
	switch direction {
	case "BEFORE":
		sign = -1
	case "AFTER":
		sign = 1
	default:
		return nil, fmt.Errorf("can't generate a relative timestamp with margin - unrecognized direction (got '%s' but allowed are 'BEFORE' and 'AFTER' only)", direction)
	}

	rawUpTo, err := cfg.String("upToUnit", "")
	if err != nil {
		return nil, err
	}
	if rawUpTo == "" {
		return nil, errors.New("can't generate a relative timestamp with margin - 'upToUnit' is required")
	}
	upToUnit, err := parseUnit(rawUpTo)
	if err != nil {
		return nil, fmt.Errorf("can't generate a relative timestamp with margin - %w", err)
	}
	upToSize, err := cfg.Int("upToSize", 1)
	if err != nil {
		return nil, err
	}
	if upToSize <= 0 {
		return nil, errors.New("can't generate a relative timestamp with margin - 'upToSize' must be positive")
	}

	anchor, err := anchorTime(cfg)
	if err != nil {
		return nil, err
	}
	margin := anchor
	if cfg.Has("marginUnit") || cfg.Has("marginSize") {
		rawMargin, err := cfg.String("marginUnit", "")
		if err != nil {
			return nil, err
		}
		if rawMargin == "" {
			return nil, errors.New("can't generate a relative timestamp with margin - 'marginUnit' is required")
		}
		marginUnit, err := parseUnit(rawMargin)
		if err != nil {
			return nil, fmt.Errorf("can't generate a relative timestamp with margin - %w", err)
		}
		marginSize, err := cfg.Int("marginSize", 1)
		if err != nil {
			return nil, err
		}
		m, _ := marginUnit.approximate()
		u, _ := upToUnit.approximate()
		if time.Duration(marginSize)*m >= time.Duration(upToSize)*u {
			return nil, errors.New("can't generate a relative timestamp with margin - the margin can't be greater than the whole interval")
		}
		margin = marginUnit.shift(anchor, sign*marginSize)
	}
	upTo := upToUnit.shift(anchor, sign*upToSize)

	as, err := timestampFormat(cfg)
	if err != nil {
		return nil, err
	}
	if upTo.Before(margin) {
		return between(upTo, margin, as), nil
	}
	return between(margin, upTo, as), nil
}

// relative returns a factory drawing an instant between the anchor and n
// units before (sign -1) or after (sign 1) it.
func relative(sign int, unit timeUnit, n int) generator.Factory {
	return func(cfg generator.Config) (generator.Func, error) {
		anchor, err := anchorTime(cfg)
		if err != nil {
			return nil, err
		}
		as, err := timestampFormat(cfg)
		if err != nil {
			return nil, err
		}
		edge := unit.shift(anchor, sign*n)
		if edge.Before(anchor) {
			return between(edge, anchor, as), nil
		}
		return between(anchor, edge, as), nil
	}
}

func relativeGenerators() []generatorEntry {
	spans := []struct {
		suffix string
		unit   timeUnit
		n      int
	}{
		{"Century", unitCentury, 1},
		{"Year", unitYear, 1},
		{"5Years", unitYear, 5},
		{"10Years", unitYear, 10},
		{"15Years", unitYear, 15},
		{"20Years", unitYear, 20},
		{"50Years", unitYear, 50},
		{"Month", unitMonth, 1},
		{"3Months", unitMonth, 3},
		{"6Months", unitMonth, 6},
		{"9Months", unitMonth, 9},
		{"Week", unitWeek, 1},
		{"2Weeks", unitWeek, 2},
		{"3Weeks", unitWeek, 3},
		{"Day", unitDay, 1},
		{"Hour", unitHour, 1},
		{"6Hours", unitHour, 6},
		{"12Hours", unitHour, 12},
		{"18Hours", unitHour, 18},
		{"Minute", unitMinute, 1},
		{"10Minutes", unitMinute, 10},
		{"15Minutes", unitMinute, 15},
		{"30Minutes", unitMinute, 30},
		{"45Minutes", unitMinute, 45},
		{"Second", unitSecond, 1},
		{"10Seconds", unitSecond, 10},
		{"30Seconds", unitSecond, 30},
	}
	entries := make([]generatorEntry, 0, 2*len(spans))
	for _, s := range spans {
		entries = append(entries, generatorEntry{Name: "past" + s.suffix, Item: relative(-1, s.unit, s.n)})
	}
	for _, s := range spans {
		entries = append(entries, generatorEntry{Name: "next" + s.suffix, Item: relative(1, s.unit, s.n)})
	}
	return entries
}

func between(from, to time.Time, as string) generator.Func {
	lo, hi := from.UnixMilli(), to.UnixMilli()
	return func(ctx *generator.Context) (any, error) {
		ms, err := generator.RandomInt(ctx, int(lo), int(hi))
		if err != nil {
			return nil, err
		}
		return renderTime(time.UnixMilli(int64(ms)).UTC(), as), nil
	}
}

func renderTime(t time.Time, as string) any {
	switch as {
	case asDate:
		return t
	case asISODate:
		return t.Format(time.DateOnly)
	case asISOTime:
		return t.Format("15:04:05.000Z")
	case asTimestamp:
		return t.UnixMilli()
	default:
		return formatTime(t)
	}
}

func timestampFormat(cfg generator.Config) (string, error) {
	as, err := cfg.String("as", asISODatetime)
	if err != nil {
		return "", err
	}
	for _, f := range timestampFormats {
		if f == as {
			return as, nil
		}
	}
	return "", fmt.Errorf("can't generate a timestamp - unrecognized option of 'as' - '%s'. Try some of these: %s", as, strings.Join(timestampFormats, ","))
}

// anchorTime is `reference` when configured, otherwise the current time.
// It is evaluated once, at compile time.
func anchorTime(cfg generator.Config) (time.Time, error) {
	raw, ok := cfg.Get("reference")
	if !ok {
		return time.Now().UTC(), nil
	}
	return parseInstant(raw)
}

func parseInstant(raw any) (time.Time, error) {
	switch t := raw.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("can't parse the given date: %s", t)
	}
	if ms, ok := value.AsFloat(raw); ok {
		return time.UnixMilli(int64(ms)).UTC(), nil
	}
	return time.Time{}, fmt.Errorf("can't parse the given date: %s", value.TypeName(raw))
}
