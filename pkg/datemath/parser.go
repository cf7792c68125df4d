package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	clockPattern       = regexp.MustCompile(`(\d{1,2})[点:：](\d{1,2})?`)
	relativeDayPattern = regexp.MustCompile(`今天|明天|后天`)
	monthDayPattern    = regexp.MustCompile(`(\d{1,2})月(\d{1,2})[日号]`)
	weekdayPattern     = regexp.MustCompile(`(?:周|星期|礼拜)([一二三四五六日天])`)
	pmPeriodPattern    = regexp.MustCompile(`下午|晚上|傍晚`)
	amPeriodPattern    = regexp.MustCompile(`上午|早上|凌晨`)
)

// Parser resolves Chinese relative and absolute date-time expressions
// against an injected reference time. It never reads the wall clock, so
// results are deterministic given the same text and reference time.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "Asia/Shanghai".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Extract scans text for the first recognizable date-time expression and
// resolves it relative to now. The cascade below is ordered and
// first-match-wins; the patterns overlap (下周三 must resolve as 下周, not
// 周三), so the order must not change.
//
// Returns false when no expression is found; absence is not an error.
func (p *Parser) Extract(text string, now time.Time) (time.Time, bool) {
	now = now.In(p.location)

	// 1. Relative day words, optionally with a clock time.
	if word := relativeDayPattern.FindString(text); word != "" {
		day := now.AddDate(0, 0, relativeDayOffset[word])
		if hour, minute, ok := p.clockTime(text); ok {
			hour = p.resolveHour(text, hour, now, word == "今天")
			return p.at(day, hour, minute), true
		}
		return p.endOfDay(day), true
	}

	// 2. Week words resolve to the upcoming Sunday (or the one after).
	if strings.Contains(text, "本周") || strings.Contains(text, "这周") {
		return p.endOfDay(now.AddDate(0, 0, 7-int(now.Weekday()))), true
	}
	if strings.Contains(text, "下周") {
		return p.endOfDay(now.AddDate(0, 0, 14-int(now.Weekday()))), true
	}

	// 3. Month words resolve to the last calendar day of the month.
	if strings.Contains(text, "本月") || strings.Contains(text, "这个月") {
		return p.endOfDay(p.lastDayOfMonth(now, 0)), true
	}
	if strings.Contains(text, "下个月") || strings.Contains(text, "下月") {
		return p.endOfDay(p.lastDayOfMonth(now, 1)), true
	}

	// 4. Explicit M月D日 dates. A date already in the past rolls forward
	// one year.
	if m := monthDayPattern.FindStringSubmatch(text); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		var t time.Time
		if hour, minute, ok := p.clockTime(text); ok {
			hour = p.resolveHour(text, hour, now, false)
			t = time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, p.location)
		} else {
			t = p.endOfDay(time.Date(now.Year(), time.Month(month), day, 0, 0, 0, 0, p.location))
		}
		if t.Before(now) {
			t = t.AddDate(1, 0, 0)
		}
		return t, true
	}

	// 5. Weekday names resolve to the next occurrence strictly after today.
	if m := weekdayPattern.FindStringSubmatch(text); m != nil {
		daysToAdd := weekdayIndex[m[1]] - int(now.Weekday())
		if daysToAdd <= 0 {
			daysToAdd += 7
		}
		day := now.AddDate(0, 0, daysToAdd)
		if hour, minute, ok := p.clockTime(text); ok {
			hour = p.resolveHour(text, hour, now, false)
			return p.at(day, hour, minute), true
		}
		return p.endOfDay(day), true
	}

	// 6. Bare clock time applies to today.
	if hour, minute, ok := p.clockTime(text); ok {
		hour = p.resolveHour(text, hour, now, true)
		return p.at(now, hour, minute), true
	}

	return time.Time{}, false
}

// clockTime extracts an hour[:minute] expression. A missing minute is 0.
func (p *Parser) clockTime(text string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	return hour, minute, true
}

// resolveHour applies AM/PM resolution to an extracted hour. Explicit
// period words (下午3点) are authoritative. Without one, hours for today
// that already passed are assumed to mean the afternoon: "5点" said at
// 10:00 is 17:00, not this morning.
func (p *Parser) resolveHour(text string, hour int, now time.Time, assumePM bool) int {
	if pmPeriodPattern.MatchString(text) {
		if hour < 12 {
			return hour + 12
		}
		return hour
	}
	if amPeriodPattern.MatchString(text) {
		return hour
	}
	if assumePM && hour <= 12 && hour < now.Hour() {
		return hour + 12
	}
	return hour
}

// at returns the given clock time on day, in the parser's timezone.
func (p *Parser) at(day time.Time, hour, minute int) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location)
}

// endOfDay returns 23:59:59.999 of the given day.
func (p *Parser) endOfDay(day time.Time) time.Time {
	day = day.In(p.location)
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 999000000, p.location)
}

// lastDayOfMonth returns the last calendar day of now's month shifted by
// monthOffset, at midnight.
func (p *Parser) lastDayOfMonth(now time.Time, monthOffset int) time.Time {
	return time.Date(now.Year(), now.Month()+time.Month(monthOffset)+1, 0, 0, 0, 0, 0, p.location)
}
