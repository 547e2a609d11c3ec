package calendar

import (
	"math"
	"testing"
)

func gd(y, m, d int) Fixed {
	return FixedFromGregorian(GregorianDate{y, m, d})
}

// -----------------------------------------------------------------
// Arithmetic helpers
// -----------------------------------------------------------------

func TestQuotientAndMod(t *testing.T) {
	tests := []struct {
		m, n     int
		wantQ    int
		wantMod  int
		wantAmod int
	}{
		{7, 3, 2, 1, 1},
		{-7, 3, -3, 2, 2},
		{6, 3, 2, 0, 3},
		{-6, 3, -2, 0, 3},
		{0, 7, 0, 0, 7},
	}

	for _, tt := range tests {
		if got := Quotient(tt.m, tt.n); got != tt.wantQ {
			t.Errorf("Quotient(%d, %d) = %d, want %d", tt.m, tt.n, got, tt.wantQ)
		}
		if got := imod(tt.m, tt.n); got != tt.wantMod {
			t.Errorf("imod(%d, %d) = %d, want %d", tt.m, tt.n, got, tt.wantMod)
		}
		if got := amod(tt.m, tt.n); got != tt.wantAmod {
			t.Errorf("amod(%d, %d) = %d, want %d", tt.m, tt.n, got, tt.wantAmod)
		}
	}
}

func TestClockFromMoment(t *testing.T) {
	h, m, s := ClockFromMoment(Moment(737448.75))
	if h != 18 || m != 0 || s > 1e-6 {
		t.Errorf("ClockFromMoment(.75) = %d:%d:%f, want 18:00:00", h, m, s)
	}
}

// -----------------------------------------------------------------
// Gregorian and ISO
// -----------------------------------------------------------------

func TestFixedFromGregorian(t *testing.T) {
	tests := []struct {
		date GregorianDate
		want Fixed
	}{
		{GregorianDate{1, 1, 1}, 1},
		{GregorianDate{1945, 11, 12}, 710347},
		{GregorianDate{2000, 1, 1}, 730120},
		{GregorianDate{2020, 1, 1}, 737425},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			if got := FixedFromGregorian(tt.date); got != tt.want {
				t.Errorf("FixedFromGregorian(%v) = %d, want %d", tt.date, got, tt.want)
			}
			if got := GregorianFromFixed(tt.want); got != tt.date {
				t.Errorf("GregorianFromFixed(%d) = %v, want %v", tt.want, got, tt.date)
			}
		})
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	// Spans dates before the common era, which take the arithmetic path.
	for d := Fixed(-800000); d < 800000; d += 997 {
		if got := FixedFromGregorian(GregorianFromFixed(d)); got != d {
			t.Fatalf("round trip of %d gave %d", d, got)
		}
	}
}

func TestDayOfWeekFromFixed(t *testing.T) {
	if got := DayOfWeekFromFixed(1); got != Monday {
		t.Errorf("R.D. 1 weekday = %d, want Monday", got)
	}
	if got := DayOfWeekFromFixed(gd(2020, 1, 1)); got != Wednesday {
		t.Errorf("2020-01-01 weekday = %d, want Wednesday", got)
	}
}

func TestNthKday(t *testing.T) {
	// First Thursday of 2020.
	if got := NthKday(1, Thursday, GregorianDate{2020, 1, 1}); got != gd(2020, 1, 2) {
		t.Errorf("first Thursday of 2020 = %v", GregorianFromFixed(got))
	}
	// Last Monday of May 2020.
	if got := NthKday(-1, Monday, GregorianDate{2020, 5, 31}); got != gd(2020, 5, 25) {
		t.Errorf("last Monday of May 2020 = %v", GregorianFromFixed(got))
	}
}

func TestISO(t *testing.T) {
	tests := []struct {
		date GregorianDate
		want ISODate
	}{
		{GregorianDate{2019, 12, 30}, ISODate{2020, 1, 1}},
		{GregorianDate{2020, 1, 1}, ISODate{2020, 1, 3}},
		{GregorianDate{2021, 1, 3}, ISODate{2020, 53, 7}},
		{GregorianDate{1945, 11, 12}, ISODate{1945, 46, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.date.String(), func(t *testing.T) {
			f := FixedFromGregorian(tt.date)
			if got := ISOFromFixed(f); got != tt.want {
				t.Errorf("ISOFromFixed(%v) = %+v, want %+v", tt.date, got, tt.want)
			}
			if got := FixedFromISO(tt.want); got != f {
				t.Errorf("FixedFromISO(%+v) = %d, want %d", tt.want, got, f)
			}
		})
	}

	if !ISOLongYear(2020) || !ISOLongYear(2015) || ISOLongYear(2019) {
		t.Error("ISOLongYear disagrees for 2015, 2019 or 2020")
	}
}

// -----------------------------------------------------------------
// Hebrew and Islamic
// -----------------------------------------------------------------

func TestHebrew(t *testing.T) {
	tests := []struct {
		date Fixed
		want HebrewDate
	}{
		{710347, HebrewDate{5706, Kislev, 7}},
		{gd(2019, 9, 30), HebrewDate{5780, Tishri, 1}},
		{gd(2020, 1, 1), HebrewDate{5780, Tevet, 4}},
		{gd(2020, 4, 9), HebrewDate{5780, Nisan, 15}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := HebrewFromFixed(tt.date); got != tt.want {
				t.Errorf("HebrewFromFixed(%d) = %+v, want %+v", tt.date, got, tt.want)
			}
			if got := FixedFromHebrew(tt.want); got != tt.date {
				t.Errorf("FixedFromHebrew(%+v) = %d, want %d", tt.want, got, tt.date)
			}
		})
	}
}

func TestHebrewYearLengths(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	for y := 5700; y < 5900; y++ {
		n := DaysInHebrewYear(y)
		if !valid[n] {
			t.Fatalf("DaysInHebrewYear(%d) = %d", y, n)
		}
		if HebrewLeapYear(y) != (n > 380) {
			t.Fatalf("year %d: leap = %v with %d days", y, HebrewLeapYear(y), n)
		}
	}
}

func TestHebrewRoundTrip(t *testing.T) {
	for d := gd(1900, 1, 1); d < gd(2100, 1, 1); d++ {
		h := HebrewFromFixed(d)
		if h.Month < Nisan || h.Month > LastMonthOfHebrewYear(h.Year) {
			t.Fatalf("HebrewFromFixed(%v) = %+v, month out of range", GregorianFromFixed(d), h)
		}
		if got := FixedFromHebrew(h); got != d {
			t.Fatalf("round trip of %v gave %v", GregorianFromFixed(d), GregorianFromFixed(got))
		}
	}
}

func TestHebrewNewYearBoundary(t *testing.T) {
	for y := 5660; y < 5860; y++ {
		rh := HebrewNewYear(y)
		if got := HebrewFromFixed(rh); got != (HebrewDate{y, Tishri, 1}) {
			t.Fatalf("HebrewFromFixed(1 Tishri %d) = %+v", y, got)
		}
		eve := HebrewFromFixed(rh - 1)
		if eve.Year != y-1 || eve.Month != Elul || eve.Day != 29 {
			t.Fatalf("day before 1 Tishri %d = %+v, want %d-6-29", y, eve, y-1)
		}
	}
}

func TestMolad(t *testing.T) {
	rh := HebrewNewYear(5780)
	molad := Molad(Tishri, 5780)
	if diff := rh - molad.Fixed(); diff < 0 || diff > 2 {
		t.Errorf("molad of Tishri 5780 on %v, Rosh Hashanah on %v",
			GregorianFromFixed(molad.Fixed()), GregorianFromFixed(rh))
	}
	// Consecutive molads are one mean month apart.
	next := Molad(Marheshvan, 5780)
	if got := float64(next - molad); math.Abs(got-(29+12.0/24+793.0/25920)) > 1e-9 {
		t.Errorf("molad interval = %f", got)
	}
}

func TestIslamic(t *testing.T) {
	tests := []struct {
		date Fixed
		want IslamicDate
	}{
		{710347, IslamicDate{1364, 12, 6}},
		{gd(2020, 1, 1), IslamicDate{1441, 5, 5}},
		{IslamicEpoch, IslamicDate{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := IslamicFromFixed(tt.date); got != tt.want {
				t.Errorf("IslamicFromFixed(%d) = %+v, want %+v", tt.date, got, tt.want)
			}
			if got := FixedFromIslamic(tt.want); got != tt.date {
				t.Errorf("FixedFromIslamic(%+v) = %d, want %d", tt.want, got, tt.date)
			}
		})
	}
}

func TestIslamicRoundTrip(t *testing.T) {
	for d := gd(1900, 1, 1); d < gd(2100, 1, 1); d++ {
		i := IslamicFromFixed(d)
		if i.Month < 1 || i.Month > 12 || i.Day < 1 || i.Day > 30 {
			t.Fatalf("IslamicFromFixed(%v) = %+v out of range", GregorianFromFixed(d), i)
		}
		if got := FixedFromIslamic(i); got != d {
			t.Fatalf("round trip of %v gave %v", GregorianFromFixed(d), GregorianFromFixed(got))
		}
	}
}

func TestEpochs(t *testing.T) {
	if HebrewEpoch != -1373427 {
		t.Errorf("HebrewEpoch = %d", HebrewEpoch)
	}
	if IslamicEpoch != 227015 {
		t.Errorf("IslamicEpoch = %d", IslamicEpoch)
	}
	if ChineseEpoch != -963099 {
		t.Errorf("ChineseEpoch = %d", ChineseEpoch)
	}
}

// -----------------------------------------------------------------
// Astronomy
// -----------------------------------------------------------------

func TestNthNewMoon(t *testing.T) {
	// New moon of 2020-01-24 at about 21:42 UT.
	got := NthNewMoon(24972)
	if got.Fixed() != gd(2020, 1, 24) {
		t.Fatalf("NthNewMoon(24972) on %v, want 2020-01-24", GregorianFromFixed(got.Fixed()))
	}
	h, m, _ := ClockFromMoment(got)
	if mins := h*60 + m; mins < 21*60+30 || mins > 21*60+55 {
		t.Errorf("NthNewMoon(24972) at %02d:%02d, want about 21:42", h, m)
	}
}

func TestNewMoonSearch(t *testing.T) {
	tee := gd(2020, 1, 10).Moment()
	after := NewMoonAtOrAfter(tee)
	if after.Fixed() != gd(2020, 1, 24) {
		t.Errorf("NewMoonAtOrAfter = %v", GregorianFromFixed(after.Fixed()))
	}
	before := NewMoonBefore(tee)
	if before.Fixed() != gd(2019, 12, 26) {
		t.Errorf("NewMoonBefore = %v", GregorianFromFixed(before.Fixed()))
	}
	if NewMoonAtOrAfter(after) != after {
		t.Error("NewMoonAtOrAfter is not inclusive")
	}
	if NewMoonBefore(after) == after {
		t.Error("NewMoonBefore is not strict")
	}
}

func TestSolarLongitude(t *testing.T) {
	// June solstice 2020 was 21:43 UT on June 20.
	solstice := SolarLongitudeAfter(Summer, gd(2020, 6, 1).Moment())
	if solstice.Fixed() != gd(2020, 6, 20) {
		t.Errorf("solstice on %v, want 2020-06-20", GregorianFromFixed(solstice.Fixed()))
	}
	if lon := SolarLongitude(solstice); math.Abs(lon-Summer) > 0.001 {
		t.Errorf("SolarLongitude at solstice = %f", lon)
	}

	// Searching from New Year's Day finds each season of that year.
	jan1 := GregorianNewYear(2020).Moment()
	for lambda, want := range map[float64]Fixed{
		Spring: gd(2020, 3, 20),
		Autumn: gd(2020, 9, 22),
		Winter: gd(2020, 12, 21),
	} {
		if got := SolarLongitudeAfter(lambda, jan1).Fixed(); got != want {
			t.Errorf("SolarLongitudeAfter(%.0f) on %v, want %v", lambda, GregorianFromFixed(got), GregorianFromFixed(want))
		}
	}
}

func TestLunarLongitudeAtNewMoon(t *testing.T) {
	// At conjunction the sun and moon share a longitude.
	tee := NthNewMoon(24972)
	diff := math.Abs(LunarLongitude(tee) - SolarLongitude(tee))
	if diff > 180 {
		diff = 360 - diff
	}
	if diff > 0.1 {
		t.Errorf("sun and moon %f degrees apart at new moon", diff)
	}
}

func TestSiderealLunarLongitude(t *testing.T) {
	tee := NthNewMoon(24972)
	got := SiderealLunarLongitude(tee)
	if got < 0 || got >= 360 {
		t.Fatalf("SiderealLunarLongitude = %f out of range", got)
	}
	// Sidereal longitude trails tropical by the ayanamsha, about 24 degrees today.
	shift := math.Mod(LunarLongitude(tee)-got+360, 360)
	if shift < 20 || shift > 28 {
		t.Errorf("tropical minus sidereal = %f", shift)
	}
}

// -----------------------------------------------------------------
// Chinese
// -----------------------------------------------------------------

func TestChineseNewYear(t *testing.T) {
	tests := []struct {
		year int
		want Fixed
	}{
		{2020, gd(2020, 1, 25)},
		{2021, gd(2021, 2, 12)},
		{2023, gd(2023, 1, 22)},
	}

	for _, tt := range tests {
		if got := ChineseNewYear(tt.year); got != tt.want {
			t.Errorf("ChineseNewYear(%d) = %v, want %v",
				tt.year, GregorianFromFixed(got), GregorianFromFixed(tt.want))
		}
	}
}

func TestChineseFromFixed(t *testing.T) {
	tests := []struct {
		date Fixed
		want ChineseDate
	}{
		{710347, ChineseDate{77, 22, 10, false, 8}},
		{gd(1984, 2, 2), ChineseDate{78, 1, 1, false, 1}},
		{gd(2020, 1, 24), ChineseDate{78, 36, 12, false, 30}},
		{gd(2020, 1, 25), ChineseDate{78, 37, 1, false, 1}},
		{gd(2020, 5, 22), ChineseDate{78, 37, 4, false, 30}},
		{gd(2020, 5, 23), ChineseDate{78, 37, 4, true, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := ChineseFromFixed(tt.date); got != tt.want {
				t.Errorf("ChineseFromFixed(%v) = %+v, want %+v", GregorianFromFixed(tt.date), got, tt.want)
			}
			if got := FixedFromChinese(tt.want); got != tt.date {
				t.Errorf("FixedFromChinese(%+v) = %v, want %v", tt.want, GregorianFromFixed(got), GregorianFromFixed(tt.date))
			}
		})
	}
}

func TestChineseRoundTrip(t *testing.T) {
	for d := gd(2019, 12, 1); d < gd(2021, 3, 1); d += 17 {
		if got := FixedFromChinese(ChineseFromFixed(d)); got != d {
			t.Fatalf("round trip of %v gave %v", GregorianFromFixed(d), GregorianFromFixed(got))
		}
	}
}

// -----------------------------------------------------------------
// Key dates
// -----------------------------------------------------------------

func TestKeyDates(t *testing.T) {
	tests := []struct {
		name string
		got  Fixed
		want Fixed
	}{
		{"Easter 2019", Easter(2019), gd(2019, 4, 21)},
		{"Easter 2020", Easter(2020), gd(2020, 4, 12)},
		{"Advent 2019", Advent(2019), gd(2019, 12, 1)},
		{"Advent 2020", Advent(2020), gd(2020, 11, 29)},
		{"Passover 2020", Passover(2020), gd(2020, 4, 9)},
		{"Rosh Hashanah 2019", RoshHashanah(2019), gd(2019, 9, 30)},
		{"1 Muharram 2020", IslamicNewYear(2020), gd(2020, 8, 20)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %v, want %v", tt.name, GregorianFromFixed(tt.got), GregorianFromFixed(tt.want))
			}
		})
	}
}

func TestYearSpans(t *testing.T) {
	if a, b := HebrewYearSpan(2020); a != 5780 || b != 5781 {
		t.Errorf("HebrewYearSpan(2020) = %d, %d", a, b)
	}
	if a, b := IslamicYearSpan(2020); a != 1441 || b != 1442 {
		t.Errorf("IslamicYearSpan(2020) = %d, %d", a, b)
	}
}
