package expiry

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DaysPerMonth is the month length used when pushing an expiry date forward.
const DaysPerMonth = 30

var defaultLoc = time.UTC

// SetDefaultExpiryLocation sets the location used when checking a YYMM expiry
// (fallback UTC). Formatting always uses the location of the given time.
func SetDefaultExpiryLocation(loc *time.Location) {
	if loc != nil {
		defaultLoc = loc
	}
}

// AddApproxMonths moves t forward by months, counting every month as DaysPerMonth
// days of t's calendar.
func AddApproxMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, 0, months*DaysPerMonth)
}

// Month returns the two-digit month of t.
func Month(t time.Time) string {
	return fmt.Sprintf("%02d", int(t.Month()))
}

// Year2 returns the two-digit year of t.
func Year2(t time.Time) string {
	return fmt.Sprintf("%02d", t.Year()%100)
}

// Year4 returns the four-digit year of t.
func Year4(t time.Time) string {
	return fmt.Sprintf("%04d", t.Year())
}

// CardFace returns expiry as MM/YY for card imprint.
func CardFace(t time.Time) string {
	return Month(t) + "/" + Year2(t)
}

// YYMM returns expiry in YYMM, the ISO 8583 field 14 form.
func YYMM(t time.Time) string {
	return Year2(t) + Month(t)
}

// ParseYYMMEndOfMonth parses YYMM into the last instant of that month in loc.
func ParseYYMMEndOfMonth(yymm string, loc *time.Location) (time.Time, error) {
	if err := ValidateYYMM(yymm); err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = defaultLoc
	}
	yy, _ := strconv.Atoi(yymm[:2])
	mm, _ := strconv.Atoi(yymm[2:])
	firstNext := time.Date(2000+yy, time.Month(mm), 1, 0, 0, 0, 0, loc).AddDate(0, 1, 0)
	return firstNext.Add(-time.Nanosecond), nil
}

// IsExpired reports whether time 'at' is strictly after the end of YYMM month in loc.
func IsExpired(yymm string, at time.Time, loc *time.Location) (bool, error) {
	end, err := ParseYYMMEndOfMonth(yymm, loc)
	if err != nil {
		return false, err
	}
	return at.In(end.Location()).After(end), nil
}

// ParseCardFace accepts "MM/YY" or "MMYY" and returns YYMM.
func ParseCardFace(in string) (string, error) {
	s := strings.TrimSpace(in)
	s = strings.ReplaceAll(s, "/", "")
	if len(s) != 4 {
		return "", fmt.Errorf("card face must be MM/YY or MMYY")
	}
	for i := 0; i < 4; i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", fmt.Errorf("card face must be digits")
		}
	}
	mm, _ := strconv.Atoi(s[:2])
	if mm < 1 || mm > 12 {
		return "", fmt.Errorf("month must be 01..12")
	}
	return s[2:] + s[:2], nil
}

// ValidateYYMM checks that yymm is four digits with a month in 01..12.
func ValidateYYMM(yymm string) error {
	if len(yymm) != 4 {
		return fmt.Errorf("expiry must be YYMM (4 digits)")
	}
	for i := 0; i < 4; i++ {
		if yymm[i] < '0' || yymm[i] > '9' {
			return fmt.Errorf("expiry must be digits: YYMM")
		}
	}
	mm := int(yymm[2]-'0')*10 + int(yymm[3]-'0')
	if mm < 1 || mm > 12 {
		return fmt.Errorf("expiry month must be 01..12")
	}
	return nil
}
