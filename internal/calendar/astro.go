package calendar

import "math"

const (
	// MeanSynodicMonth is the mean time between new moons, in days.
	MeanSynodicMonth = 29.530588861
	// MeanTropicalYear is the mean time between vernal equinoxes, in days.
	MeanTropicalYear = 365.242189

	// J2000 is noon on January 1, 2000 (Gregorian).
	J2000 Moment = 730120.5
)

// Solar longitudes of the seasons, in degrees.
const (
	Spring = 0.0
	Summer = 90.0
	Autumn = 180.0
	Winter = 270.0
)

// EphemerisCorrection returns the difference between dynamical time and
// universal time at tee, as a fraction of a day.
func EphemerisCorrection(tee Moment) float64 {
	year := GregorianYearFromFixed(tee.Fixed())
	fy := float64(year)
	c := float64(GregorianDateDifference(GregorianDate{1900, January, 1}, GregorianDate{year, July, 1})) / 36525

	switch {
	case year >= 2051 && year <= 2150:
		return (-20 + 32*math.Pow((fy-1820)/100, 2) + 0.5628*(2150-fy)) / 86400
	case year >= 2006 && year <= 2050:
		return poly(fy-2000, []float64{62.92, 0.32217, 0.005589}) / 86400
	case year >= 1987 && year <= 2005:
		return poly(fy-2000, []float64{63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599}) / 86400
	case year >= 1900 && year <= 1986:
		return poly(c, []float64{-0.00002, 0.000297, 0.025184, -0.181133, 0.553040, -0.861938, 0.677066, -0.212591})
	case year >= 1800 && year <= 1899:
		return poly(c, []float64{-0.000009, 0.003844, 0.083563, 0.865736, 4.867575, 15.845535, 31.332267, 38.291999, 28.316289, 11.636204, 2.043794})
	case year >= 1700 && year <= 1799:
		return poly(fy-1700, []float64{8.118780842, -0.005092142, 0.003336121, -0.0000266484}) / 86400
	case year >= 1600 && year <= 1699:
		return poly(fy-1600, []float64{120, -0.9808, -0.01532, 0.000140272128}) / 86400
	case year >= 500 && year <= 1599:
		return poly((fy-1000)/100, []float64{1574.2, -556.01, 71.23472, 0.319781, -0.8503463, -0.005050998, 0.0083572073}) / 86400
	case year > -500 && year < 500:
		return poly(fy/100, []float64{10583.6, -1014.41, 33.78311, -5.952053, -0.1798452, 0.022174192, 0.0090316521}) / 86400
	default:
		return poly((fy-1820)/100, []float64{-20, 0, 32}) / 86400
	}
}

func dynamicalFromUniversal(tee Moment) Moment {
	return tee + Moment(EphemerisCorrection(tee))
}

func universalFromDynamical(tee Moment) Moment {
	return tee - Moment(EphemerisCorrection(tee))
}

// julianCenturies returns dynamical time since J2000 in Julian centuries.
func julianCenturies(tee Moment) float64 {
	return float64(dynamicalFromUniversal(tee)-J2000) / 36525
}

// solarTerm is one periodic term of the solar longitude series.
type solarTerm struct{ x, y, z float64 }

var solarTerms = [...]solarTerm{
	{403406, 270.54861, 0.9287892},
	{195207, 340.19128, 35999.1376958},
	{119433, 63.91854, 35999.4089666},
	{112392, 331.26220, 35998.7287385},
	{3891, 317.843, 71998.20261},
	{2819, 86.631, 71998.4403},
	{1721, 240.052, 36000.35726},
	{660, 310.26, 71997.4812},
	{350, 247.23, 32964.4678},
	{334, 260.87, -19.4410},
	{314, 297.82, 445267.1117},
	{268, 343.14, 45036.8840},
	{242, 166.79, 3.1008},
	{234, 81.53, 22518.4434},
	{158, 3.50, -19.9739},
	{132, 132.75, 65928.9345},
	{129, 182.95, 9038.0293},
	{114, 162.03, 3034.7684},
	{99, 29.8, 33718.148},
	{93, 266.4, 3034.448},
	{86, 249.2, -2280.773},
	{78, 157.6, 29929.992},
	{72, 257.8, 31556.493},
	{68, 185.1, 149.588},
	{64, 69.9, 9037.750},
	{46, 8.0, 107997.405},
	{38, 197.1, -4444.176},
	{37, 250.4, 151.771},
	{32, 65.3, 67555.316},
	{29, 162.7, 31556.080},
	{28, 341.5, -4561.540},
	{27, 291.6, 107996.706},
	{27, 98.5, 1221.655},
	{25, 146.7, 62894.167},
	{24, 110.0, 31437.369},
	{21, 5.2, 14578.298},
	{21, 342.6, -31931.757},
	{20, 230.9, 34777.243},
	{18, 256.1, 1221.999},
	{17, 45.3, 62894.511},
	{14, 242.9, -4442.039},
	{13, 115.2, 107997.909},
	{13, 151.8, 119.066},
	{13, 285.3, 16859.071},
	{12, 53.3, -4.578},
	{10, 126.6, 26895.292},
	{10, 205.7, -39.127},
	{10, 85.9, 12297.536},
	{10, 146.1, 90073.778},
}

// SolarLongitude returns the apparent longitude of the sun at tee, in
// degrees in [0, 360).
func SolarLongitude(tee Moment) float64 {
	c := julianCenturies(tee)
	sum := 0.0
	for _, t := range solarTerms {
		sum += t.x * sinDeg(t.y+t.z*c)
	}
	lambda := 282.7771834 + 36000.76953744*c + 0.000005729577951308232*sum
	return fmod(lambda+aberration(tee)+nutation(tee), 360)
}

func nutation(tee Moment) float64 {
	c := julianCenturies(tee)
	a := poly(c, []float64{124.90, -1934.134, 0.002063})
	b := poly(c, []float64{201.11, 72001.5377, 0.00057})
	return -0.004778*sinDeg(a) - 0.0003667*sinDeg(b)
}

func aberration(tee Moment) float64 {
	c := julianCenturies(tee)
	return 0.0000974*cosDeg(177.63+35999.01848*c) - 0.005575
}

// EstimatePriorSolarLongitude returns a moment shortly before tee at which
// the sun's longitude was approximately lambda.
func EstimatePriorSolarLongitude(lambda float64, tee Moment) Moment {
	rate := MeanTropicalYear / 360
	tau := float64(tee) - rate*fmod(SolarLongitude(tee)-lambda, 360)
	delta := fmod(SolarLongitude(Moment(tau))-lambda+180, 360) - 180
	return Moment(math.Min(float64(tee), tau-rate*delta))
}

// SolarLongitudeAfter returns the first moment at or after tee when the
// sun's longitude is lambda.
func SolarLongitudeAfter(lambda float64, tee Moment) Moment {
	rate := MeanTropicalYear / 360
	tau := float64(tee) + rate*fmod(lambda-SolarLongitude(tee), 360)
	lo := math.Max(float64(tee), tau-5)
	hi := tau + 5
	for hi-lo > 1e-5 {
		mid := (lo + hi) / 2
		if fmod(SolarLongitude(Moment(mid))-lambda, 360) < 180 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return Moment((lo + hi) / 2)
}

// lunarTerm is one periodic term of the lunar longitude series: multiples
// of the elongation, solar anomaly, lunar anomaly and argument of latitude,
// and the sine coefficient in millionths of a degree.
type lunarTerm struct {
	d, m, mp, f int
	v           float64
}

var lunarTerms = [...]lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994},
	{4, 0, 0, 0, 3861},
	{2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689},
	{2, 0, -1, 2, -2602},
	{2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348},
	{2, -2, 0, 0, 2236},
	{0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069},
	{2, -2, -1, 0, 2048},
	{2, 0, 1, -2, -1773},
	{2, 0, 0, 2, -1595},
	{4, -1, -1, 0, 1215},
	{0, 0, 2, 2, -1110},
	{3, 0, -1, 0, -892},
	{2, 1, 1, 0, -810},
	{4, -1, -2, 0, 759},
	{0, 2, -1, 0, -713},
	{2, 2, -1, 0, -700},
	{2, 1, -2, 0, 691},
	{2, -1, 0, -2, 596},
	{4, 0, 1, 0, 549},
	{0, 0, 4, 0, 537},
	{4, -1, 0, 0, 520},
	{1, 0, -2, 0, -487},
	{2, 1, 0, -2, -399},
	{0, 0, 2, -2, -381},
	{1, 1, 1, 0, 351},
	{3, 0, -2, 0, -340},
	{4, 0, -3, 0, 330},
	{2, -1, 2, 0, 327},
	{0, 2, 1, 0, -323},
	{1, 1, -1, 0, 299},
	{2, 0, 3, 0, 294},
}

// LunarLongitude returns the geocentric longitude of the moon at tee, in
// degrees in [0, 360).
func LunarLongitude(tee Moment) float64 {
	c := julianCenturies(tee)
	meanLon := fmod(poly(c, []float64{218.3164477, 481267.88123421, -0.0015786, 1.0 / 538841, -1.0 / 65194000}), 360)
	elong := poly(c, []float64{297.8501921, 445267.1114034, -0.0018819, 1.0 / 545868, -1.0 / 113065000})
	solarAnom := poly(c, []float64{357.5291092, 35999.0502909, -0.0001536, 1.0 / 24490000})
	lunarAnom := poly(c, []float64{134.9633964, 477198.8675055, 0.0087414, 1.0 / 69699, -1.0 / 14712000})
	node := poly(c, []float64{93.2720950, 483202.0175233, -0.0036539, -1.0 / 3526000, 1.0 / 863310000})
	e := poly(c, []float64{1, -0.002516, -0.0000074})

	sum := 0.0
	for _, t := range lunarTerms {
		arg := float64(t.d)*elong + float64(t.m)*solarAnom + float64(t.mp)*lunarAnom + float64(t.f)*node
		sum += t.v * math.Pow(e, math.Abs(float64(t.m))) * sinDeg(arg)
	}
	correction := sum / 1000000
	venus := 3958.0 / 1000000 * sinDeg(119.75+c*131.849)
	jupiter := 318.0 / 1000000 * sinDeg(53.09+c*479264.29)
	flatEarth := 1962.0 / 1000000 * sinDeg(meanLon-node)

	return fmod(meanLon+correction+venus+jupiter+flatEarth+nutation(tee), 360)
}

// newMoonTerm is one periodic correction to the mean new moon: the power of
// the eccentricity factor, multiples of the solar anomaly, lunar anomaly and
// argument of latitude, and the coefficient in days.
type newMoonTerm struct {
	e, m, mp, f int
	v           float64
}

var newMoonTerms = [...]newMoonTerm{
	{0, 0, 1, 0, -0.40720},
	{1, 1, 0, 0, 0.17241},
	{0, 0, 2, 0, 0.01608},
	{0, 0, 0, 2, 0.01039},
	{1, -1, 1, 0, 0.00739},
	{1, 1, 1, 0, -0.00514},
	{2, 2, 0, 0, 0.00208},
	{0, 0, 1, -2, -0.00111},
	{0, 0, 1, 2, -0.00057},
	{1, 1, 2, 0, 0.00056},
	{0, 0, 3, 0, -0.00042},
	{1, 1, 0, 2, 0.00042},
	{1, 1, 0, -2, 0.00038},
	{1, -1, 2, 0, -0.00024},
	{0, 2, 1, 0, -0.00007},
	{0, 0, 2, -2, 0.00004},
	{0, 3, 0, 0, 0.00004},
	{0, 1, 1, -2, 0.00003},
	{0, 0, 2, 2, 0.00003},
	{0, 1, 1, 2, -0.00003},
	{0, -1, 1, 2, 0.00003},
	{0, -1, 1, -2, -0.00002},
	{0, 1, 3, 0, -0.00002},
	{0, 0, 4, 0, 0.00002},
}

// planetaryTerm is one of the additional new moon corrections: phase,
// rate per lunation and amplitude in days.
type planetaryTerm struct{ i, j, l float64 }

var planetaryTerms = [...]planetaryTerm{
	{251.88, 0.016321, 0.000165},
	{251.83, 26.651886, 0.000164},
	{349.42, 36.412478, 0.000126},
	{84.66, 18.206239, 0.000110},
	{141.74, 53.303771, 0.000062},
	{207.14, 2.453732, 0.000060},
	{154.84, 7.306860, 0.000056},
	{34.52, 27.261239, 0.000047},
	{207.19, 0.121824, 0.000042},
	{291.34, 1.844379, 0.000040},
	{161.72, 24.198154, 0.000037},
	{239.56, 25.513099, 0.000035},
	{331.55, 3.592518, 0.000023},
}

// lunationJ2000 is the number of new moons between R.D. 0 and January 2000.
const lunationJ2000 = 24724

// NthNewMoon returns the moment (UT) of the n-th new moon after the new moon
// of January 11, 1 C.E., which is lunation 0.
func NthNewMoon(n int) Moment {
	k := float64(n - lunationJ2000)
	c := k / 1236.85
	approx := float64(J2000) + poly(c, []float64{5.09766, MeanSynodicMonth * 1236.85, 0.00015437, -0.000000150, 0.00000000073})
	e := poly(c, []float64{1, -0.002516, -0.0000074})
	solarAnom := poly(c, []float64{2.5534, 1236.85 * 29.10535670, -0.0000014, -0.00000011})
	lunarAnom := poly(c, []float64{201.5643, 385.81693528 * 1236.85, 0.0107582, 0.00001238, -0.000000058})
	moonArg := poly(c, []float64{160.7108, 390.67050284 * 1236.85, -0.0016118, -0.00000227, 0.000000011})
	omega := poly(c, []float64{124.7746, -1.56375588 * 1236.85, 0.0020672, 0.00000215})

	correction := -0.00017 * sinDeg(omega)
	for _, t := range newMoonTerms {
		arg := float64(t.m)*solarAnom + float64(t.mp)*lunarAnom + float64(t.f)*moonArg
		correction += t.v * math.Pow(e, float64(t.e)) * sinDeg(arg)
	}
	extra := 0.000325 * sinDeg(poly(c, []float64{299.77, 132.8475848, -0.009173}))
	additional := 0.0
	for _, t := range planetaryTerms {
		additional += t.l * sinDeg(t.i+t.j*k)
	}
	return universalFromDynamical(Moment(approx + correction + extra + additional))
}

// LunationNear returns the lunation whose mean new moon is nearest tee.
// The true new moon of that lunation is within a day of tee's estimate.
func LunationNear(tee Moment) int {
	return int(math.Round(float64(tee-NthNewMoon(0)) / MeanSynodicMonth))
}

// NewMoonAtOrAfter returns the moment of the first new moon at or after tee.
func NewMoonAtOrAfter(tee Moment) Moment {
	n := LunationNear(tee) - 2
	for NthNewMoon(n) < tee {
		n++
	}
	return NthNewMoon(n)
}

// NewMoonBefore returns the moment of the last new moon strictly before tee.
func NewMoonBefore(tee Moment) Moment {
	n := LunationNear(tee) + 2
	for NthNewMoon(n) >= tee {
		n--
	}
	return NthNewMoon(n)
}

// Precession returns the precession of the equinoxes at tee since the
// epoch J2000, in degrees.
func Precession(tee Moment) float64 {
	c := julianCenturies(tee)
	eta := fmod(poly(c, []float64{0, secs(47.0029), secs(-0.03302), secs(0.000060)}), 360)
	bigP := fmod(poly(c, []float64{174.876384, secs(-869.8089), secs(0.03536)}), 360)
	p := fmod(poly(c, []float64{0, secs(5029.0966), secs(1.11113), secs(0.000006)}), 360)
	a := cosDeg(eta) * sinDeg(bigP)
	b := cosDeg(bigP)
	return fmod(p+bigP-arctanDeg(a, b), 360)
}

// siderealStart is the precession at the vernal equinox of 285 C.E., where
// the sidereal zodiac is taken to coincide with the tropical one.
var siderealStart = Precession(FixedFromJulian(285, March, 21).Moment())

// SiderealLunarLongitude returns the moon's longitude at tee measured from
// the sidereal zodiac.
func SiderealLunarLongitude(tee Moment) float64 {
	return fmod(LunarLongitude(tee)-Precession(tee)+siderealStart, 360)
}
