// Copyright 2025 Kim Wittenburg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"codello.dev/asn1tree"
)

//region [UNIVERSAL 23] UTCTime and [UNIVERSAL 24] GeneralizedTime

var (
	// YYYYMMDDHH[MM[SS[.f+]]][Z|+hhmm|-hhmm]
	generalizedTimePattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})(\d{2})(?:(\d{2})(?:(\d{2})(?:[.,](\d+))?)?)?(Z|[+-]\d{4})?$`)
	// YYMMDDhhmm[ss](Z|+hhmm|-hhmm)
	utcTimePattern = regexp.MustCompile(`^(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})(\d{2})?(Z|[+-]\d{4})$`)
)

// decodeTime decodes the contents of a UTCTime or GeneralizedTime. Times without
// a zone designator are interpreted in loc. Fractional seconds are limited to
// nanosecond resolution, additional non-zero digits are not supported.
func decodeTime(kind asn1tree.Kind, b []byte, loc *time.Location) (asn1tree.Value, error) {
	var year, month, day, hour, minute, second, frac, zone string
	if kind == asn1tree.KindUTCTime {
		m := utcTimePattern.FindSubmatch(b)
		if m == nil {
			return nil, fmt.Errorf("invalid UTCTime %q", b)
		}
		year, month, day, hour, minute, second, zone = string(m[1]), string(m[2]), string(m[3]), string(m[4]), string(m[5]), string(m[6]), string(m[7])
	} else {
		m := generalizedTimePattern.FindSubmatch(b)
		if m == nil {
			return nil, fmt.Errorf("invalid GeneralizedTime %q", b)
		}
		year, month, day, hour, minute, second, frac, zone = string(m[1]), string(m[2]), string(m[3]), string(m[4]), string(m[5]), string(m[6]), string(m[7]), string(m[8])
	}

	t := asn1tree.Time{Type: kind, Precision: asn1tree.PrecisionHours}
	switch {
	case frac != "":
		t.Precision = asn1tree.PrecisionFractions
	case second != "":
		t.Precision = asn1tree.PrecisionSeconds
	case minute != "":
		t.Precision = asn1tree.PrecisionMinutes
	}

	y := atoi(year)
	if kind == asn1tree.KindUTCTime {
		// RFC 5280, Section 4.1.2.5.1
		if y < 50 {
			y += 2000
		} else {
			y += 1900
		}
	}
	mo, d, h, mi, s := atoi(month), atoi(day), atoi(hour), atoi(minute), atoi(second)
	if h == 24 {
		return nil, errors.New("midnight must be specified by 00, not 24")
	}
	if mo < 1 || mo > 12 || d < 1 || h > 23 || mi > 59 || s > 59 {
		return nil, fmt.Errorf("time %q out of range", b)
	}
	var nsec int
	if len(frac) > 9 && strings.TrimRight(frac[9:], "0") != "" {
		return nil, fmt.Errorf("%w: fractional seconds below nanoseconds", ErrNotImplemented)
	}
	if frac != "" {
		digits := (frac + "000000000")[:9]
		nsec = atoi(digits)
	}

	switch {
	case zone == "":
		t.Zone = asn1tree.ZoneLocal
	case zone == "Z":
		t.Zone = asn1tree.ZoneUTC
		loc = time.UTC
	default:
		t.Zone = asn1tree.ZoneDiff
		oh, om := atoi(zone[1:3]), atoi(zone[3:5])
		if oh > 23 || om > 59 {
			return nil, fmt.Errorf("time zone offset %q out of range", zone)
		}
		offset := oh*3600 + om*60
		if zone[0] == '-' {
			offset = -offset
		}
		loc = time.FixedZone("", offset)
	}
	t.Time = time.Date(y, time.Month(mo), d, h, mi, s, nsec, loc)
	if t.Time.Day() != d {
		return nil, fmt.Errorf("day %d out of range", d)
	}
	return t, nil
}

// formatTime returns the contents of a UTCTime or GeneralizedTime. Times in the
// local zone form are converted to loc.
func formatTime(t asn1tree.Time, loc *time.Location) ([]byte, error) {
	if !t.Type.IsTime() {
		return nil, fmt.Errorf("%v is not a time kind", t.Type)
	}
	tt := t.Time
	switch t.Zone {
	case asn1tree.ZoneUTC:
		tt = tt.UTC()
	case asn1tree.ZoneLocal:
		tt = tt.In(loc)
	case asn1tree.ZoneDiff:
	default:
		return nil, fmt.Errorf("invalid zone %v", t.Zone)
	}

	var b strings.Builder
	if t.Type == asn1tree.KindUTCTime {
		if t.Precision != asn1tree.PrecisionMinutes && t.Precision != asn1tree.PrecisionSeconds {
			return nil, fmt.Errorf("UTCTime cannot use precision %v", t.Precision)
		}
		if t.Zone == asn1tree.ZoneLocal {
			return nil, errors.New("UTCTime requires a zone designator")
		}
		if tt.Year() < 1950 || tt.Year() > 2049 {
			return nil, fmt.Errorf("year %d out of range for UTCTime", tt.Year())
		}
		b.WriteString(itoaN(tt.Year()%100, 2))
	} else {
		if tt.Year() < 0 || tt.Year() > 9999 {
			return nil, fmt.Errorf("year %d out of range for GeneralizedTime", tt.Year())
		}
		b.WriteString(itoaN(tt.Year(), 4))
	}
	b.WriteString(itoaN(int(tt.Month()), 2))
	b.WriteString(itoaN(tt.Day(), 2))
	b.WriteString(itoaN(tt.Hour(), 2))

	switch t.Precision {
	case asn1tree.PrecisionHours:
	case asn1tree.PrecisionMinutes:
		b.WriteString(itoaN(tt.Minute(), 2))
	case asn1tree.PrecisionSeconds, asn1tree.PrecisionFractions:
		b.WriteString(itoaN(tt.Minute(), 2))
		b.WriteString(itoaN(tt.Second(), 2))
		if t.Precision == asn1tree.PrecisionFractions {
			if frac := strings.TrimRight(itoaN(tt.Nanosecond(), 9), "0"); frac != "" {
				b.WriteByte('.')
				b.WriteString(frac)
			}
		}
	default:
		return nil, fmt.Errorf("invalid precision %v", t.Precision)
	}

	switch t.Zone {
	case asn1tree.ZoneUTC:
		b.WriteByte('Z')
	case asn1tree.ZoneDiff:
		_, offset := tt.Zone()
		offset /= 60
		if offset < 0 {
			b.WriteByte('-')
			offset = -offset
		} else {
			b.WriteByte('+')
		}
		b.WriteString(itoaN(offset/60, 2))
		b.WriteString(itoaN(offset%60, 2))
	}
	return []byte(b.String()), nil
}

// atoi parses a string of ASCII digits. The empty string is 0.
func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

// itoaN formats i as a decimal with at least n digits.
func itoaN(i int, n int) string {
	s := strconv.Itoa(i)
	if len(s) >= n {
		return s
	}
	return strings.Repeat("0", n-len(s)) + s
}

//endregion
