package expiry

import (
	"testing"
	"time"
)

func TestFormats_Rollover(t *testing.T) {
	issue := time.Date(2029, time.December, 15, 0, 0, 0, 0, time.UTC)
	exp := AddApproxMonths(issue, 1)
	if got := YYMM(exp); got != "3001" {
		t.Fatalf("YYMM got %s want %s", got, "3001")
	}
	if got := CardFace(exp); got != "01/30" {
		t.Fatalf("CardFace got %s want %s", got, "01/30")
	}
	if got := Year4(exp); got != "2030" {
		t.Fatalf("Year4 got %s want %s", got, "2030")
	}
}

func TestAddApproxMonths_ThirtyDayMonths(t *testing.T) {
	issue := time.Date(2026, time.January, 31, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		months int
		want   time.Time
	}{
		{1, time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)},
		{12, time.Date(2027, time.January, 26, 12, 0, 0, 0, time.UTC)},
		{24, time.Date(2028, time.January, 21, 12, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := AddApproxMonths(issue, c.months)
		if !got.Equal(c.want) {
			t.Fatalf("AddApproxMonths(%d) = %v want %v", c.months, got, c.want)
		}
	}
}

func TestFormats_UseTimeLocation(t *testing.T) {
	SetDefaultExpiryLocation(time.UTC)
	est := time.FixedZone("EST", -5*60*60)
	issue := time.Date(2026, time.October, 1, 22, 0, 0, 0, est)

	exp := AddApproxMonths(issue, 1)
	if got := CardFace(exp); got != "10/26" {
		t.Fatalf("CardFace got %s want %s", got, "10/26")
	}
	if exp.Location() != est {
		t.Fatalf("location got %v want %v", exp.Location(), est)
	}
}

func TestMonthAndYearDigits(t *testing.T) {
	ts := time.Date(2031, time.February, 3, 0, 0, 0, 0, time.UTC)
	if got := Month(ts); got != "02" {
		t.Fatalf("Month got %s", got)
	}
	if got := Year2(ts); got != "31" {
		t.Fatalf("Year2 got %s", got)
	}
	if got := Year4(ts); got != "2031" {
		t.Fatalf("Year4 got %s", got)
	}
}

func TestParseYYMMEndOfMonth(t *testing.T) {
	// 2030-02 (non-leap): expect 28th 23:59:59.999999999
	ts, err := ParseYYMMEndOfMonth("3002", time.UTC)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}

	ts, err = ParseYYMMEndOfMonth("2802", time.UTC)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want = time.Date(2028, time.February, 29, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}
}

func TestValidateYYMM(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"3002", true}, {"9912", true}, {"0001", true},
		{"123", false}, {"12a4", false}, {"3013", false}, {"0000", false},
	}
	for _, c := range cases {
		err := ValidateYYMM(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ValidateYYMM(%s) ok=%v got err=%v", c.in, c.ok, err)
		}
	}
}

func TestIsExpired(t *testing.T) {
	yymm := "3002"
	end, _ := ParseYYMMEndOfMonth(yymm, time.UTC)

	expired, err := IsExpired(yymm, end, time.UTC)
	if err != nil || expired {
		t.Fatalf("expected not expired at end, got expired=%v err=%v", expired, err)
	}
	expired, err = IsExpired(yymm, end.Add(time.Nanosecond), time.UTC)
	if err != nil || !expired {
		t.Fatalf("expected expired after %v, got expired=%v err=%v", end, expired, err)
	}
	if _, err := IsExpired("3013", end, time.UTC); err == nil {
		t.Fatalf("expected error for bad month")
	}
}

func TestParseCardFace(t *testing.T) {
	yymm, err := ParseCardFace("10/30")
	if err != nil || yymm != "3010" {
		t.Fatalf("ParseCardFace 10/30 got %s err=%v", yymm, err)
	}
	yymm, err = ParseCardFace("1030")
	if err != nil || yymm != "3010" {
		t.Fatalf("ParseCardFace 1030 got %s err=%v", yymm, err)
	}
	if _, err := ParseCardFace("13/30"); err == nil {
		t.Fatalf("expected error for 13/30")
	}
	if _, err := ParseCardFace("1/30"); err == nil {
		t.Fatalf("expected error for 1/30")
	}
}
