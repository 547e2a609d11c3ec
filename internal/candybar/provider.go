package candybar

import "github.com/zapponejosh/candybar/internal/calendar"

// Provider supplies the calendrical conversions the engine is built on.
// calendar.Standard is the production implementation.
type Provider interface {
	FixedFromGregorian(g calendar.GregorianDate) calendar.Fixed
	GregorianFromFixed(date calendar.Fixed) calendar.GregorianDate
	ISOFromFixed(date calendar.Fixed) calendar.ISODate
	HebrewFromFixed(date calendar.Fixed) calendar.HebrewDate
	IslamicFromFixed(date calendar.Fixed) calendar.IslamicDate
	ChineseFromFixed(date calendar.Fixed) calendar.ChineseDate
	NthKday(n, k int, g calendar.GregorianDate) calendar.Fixed
	NthNewMoon(n int) calendar.Moment
	SiderealLunarLongitude(tee calendar.Moment) float64
	Molad(month, year int) calendar.Moment
}

var _ Provider = calendar.Standard{}
