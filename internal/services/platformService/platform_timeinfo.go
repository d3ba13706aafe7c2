package platformservice

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DatetimeLayout renders "%FT%TZ". The trailing Z is literal: timestamps are
// in the provider's location, not UTC.
const DatetimeLayout = "2006-01-02T15:04:05Z"

// UnderflowPolicy decides what happens when uptime is larger than the number
// of seconds since the epoch.
type UnderflowPolicy string

const (
	// UnderflowReject fails the clock query.
	UnderflowReject UnderflowPolicy = "reject"
	// UnderflowClamp reports the epoch as the boot time.
	UnderflowClamp UnderflowPolicy = "clamp"
)

func ParseUnderflowPolicy(s string) (UnderflowPolicy, error) {
	switch UnderflowPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", UnderflowReject:
		return UnderflowReject, nil
	case UnderflowClamp:
		return UnderflowClamp, nil
	default:
		return "", fmt.Errorf("invalid uptime underflow policy %q", s)
	}
}

type ClockInfo struct {
	BootDatetime    string `json:"boot-datetime" yaml:"boot-datetime"`
	CurrentDatetime string `json:"current-datetime" yaml:"current-datetime"`
}

func (c ClockInfo) Properties() []Property {
	return []Property{
		{"boot-datetime", c.BootDatetime},
		{"current-datetime", c.CurrentDatetime},
	}
}

func (c ClockInfo) Format() string {
	var builder strings.Builder

	builder.WriteString("Clock Info:\n")
	builder.WriteString(fmt.Sprintf("  Boot Time:    %s\n", c.BootDatetime))
	builder.WriteString(fmt.Sprintf("  Current Time: %s\n", c.CurrentDatetime))

	return builder.String()
}

// GetClockInfo reads the wall clock and the uptime and derives the boot time
// as now - uptime, both rendered with DatetimeLayout.
func (p *Provider) GetClockInfo() (ClockInfo, error) {
	now := p.clock().Unix()
	if now < 0 {
		return ClockInfo{}, fmt.Errorf("%w: clock is before the epoch (%d)", ErrClockQuery, now)
	}

	current, err := p.formatDatetime(now)
	if err != nil {
		return ClockInfo{}, fmt.Errorf("%w: current datetime: %w", ErrClockQuery, err)
	}

	uptime, err := p.uptime()
	if err != nil {
		return ClockInfo{}, fmt.Errorf("%w: %w", ErrUptimeQuery, err)
	}
	if uptime < 0 {
		return ClockInfo{}, fmt.Errorf("%w: negative uptime %d", ErrUptimeQuery, uptime)
	}

	boot := now - uptime
	if boot < 0 {
		if p.underflow != UnderflowClamp {
			return ClockInfo{}, fmt.Errorf("%w: %w: uptime %ds, now %d", ErrClockQuery, ErrUptimeExceedsClock, uptime, now)
		}
		boot = 0
	}

	bootDatetime, err := p.formatDatetime(boot)
	if err != nil {
		return ClockInfo{}, fmt.Errorf("%w: boot datetime: %w", ErrClockQuery, err)
	}

	return ClockInfo{
		BootDatetime:    bootDatetime,
		CurrentDatetime: current,
	}, nil
}

// formatDatetime converts epoch seconds to the provider's location. Years that
// do not fit the fixed-width layout are a conversion failure.
func (p *Provider) formatDatetime(sec int64) (string, error) {
	t := time.Unix(sec, 0).In(p.loc)
	if y := t.Year(); y < 0 || y > 9999 {
		return "", fmt.Errorf("year %d out of range", y)
	}

	return t.Format(DatetimeLayout), nil
}

// TimezoneInfo describes the zone timestamps are rendered in.
type TimezoneInfo struct {
	// IANA name, e.g. "Europe/Berlin"
	Name string `json:"timezone-name" yaml:"timezone-name"`
	// e.g. "CEST"
	Abbreviation  string `json:"abbreviation" yaml:"abbreviation"`
	OffsetSeconds int    `json:"offset-seconds" yaml:"offset-seconds"`
}

func (t TimezoneInfo) Properties() []Property {
	return []Property{
		{"timezone-name", t.Name},
		{"abbreviation", t.Abbreviation},
		{"offset-seconds", fmt.Sprintf("%d", t.OffsetSeconds)},
	}
}

// GetTimezoneInfo returns the current zone of the default provider.
func GetTimezoneInfo() TimezoneInfo {
	return defaultProvider.GetTimezoneInfo()
}

func (p *Provider) GetTimezoneInfo() TimezoneInfo {
	now := p.clock().In(p.loc)
	abbr, offset := now.Zone()

	return TimezoneInfo{
		Name:          p.zoneName(),
		Abbreviation:  abbr,
		OffsetSeconds: offset,
	}
}

// zoneName resolves the IANA name of the local zone the way the runtime picks
// it: an unset $TZ means /etc/localtime, an empty one means UTC, and an
// absolute one names a zone file. time.Local only ever calls itself "Local".
func (p *Provider) zoneName() string {
	if p.loc != time.Local {
		return p.loc.String()
	}

	tz, ok := os.LookupEnv("TZ")
	if !ok {
		if name, ok := zoneFileName(p.localtime); ok {
			return name
		}
		return p.loc.String()
	}

	tz = strings.TrimPrefix(tz, ":")
	switch {
	case tz == "":
		return "UTC"
	case filepath.IsAbs(tz):
		if name, ok := zoneFileName(tz); ok {
			return name
		}
	}
	return tz
}

// zoneFileName follows path to its zoneinfo entry and returns the part after
// "zoneinfo/".
func zoneFileName(path string) (string, bool) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		target = path
	}
	_, name, ok := strings.Cut(target, "zoneinfo/")
	return name, ok && name != ""
}
