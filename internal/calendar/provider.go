package calendar

// Standard exposes the package functions as a value so callers can depend
// on an interface and substitute their own conversions in tests.
type Standard struct{}

func (Standard) FixedFromGregorian(g GregorianDate) Fixed    { return FixedFromGregorian(g) }
func (Standard) GregorianFromFixed(date Fixed) GregorianDate { return GregorianFromFixed(date) }
func (Standard) ISOFromFixed(date Fixed) ISODate             { return ISOFromFixed(date) }
func (Standard) HebrewFromFixed(date Fixed) HebrewDate       { return HebrewFromFixed(date) }
func (Standard) IslamicFromFixed(date Fixed) IslamicDate     { return IslamicFromFixed(date) }
func (Standard) ChineseFromFixed(date Fixed) ChineseDate     { return ChineseFromFixed(date) }
func (Standard) Molad(month, year int) Moment                { return Molad(month, year) }
func (Standard) NthNewMoon(n int) Moment                     { return NthNewMoon(n) }

func (Standard) SiderealLunarLongitude(tee Moment) float64 { return SiderealLunarLongitude(tee) }

func (Standard) NthKday(n, k int, g GregorianDate) Fixed { return NthKday(n, k, g) }
