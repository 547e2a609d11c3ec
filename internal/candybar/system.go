package candybar

import (
	"fmt"
	"strings"
)

// System identifies one of the calendars a week can be annotated in.
type System int

const (
	Gregorian System = iota
	Hebrew
	Islamic
	Chinese
)

// Systems lists every supported calendar in table order.
var Systems = []System{Gregorian, Hebrew, Islamic, Chinese}

func (s System) String() string {
	switch s {
	case Gregorian:
		return "gregorian"
	case Hebrew:
		return "hebrew"
	case Islamic:
		return "islamic"
	case Chinese:
		return "chinese"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Valid reports whether s is one of the supported calendars.
func (s System) Valid() bool {
	switch s {
	case Gregorian, Hebrew, Islamic, Chinese:
		return true
	default:
		return false
	}
}

// ParseSystem converts a calendar name such as "hebrew" to a System.
func ParseSystem(name string) (System, error) {
	for _, s := range Systems {
		if strings.EqualFold(strings.TrimSpace(name), s.String()) {
			return s, nil
		}
	}
	return 0, &UnsupportedCalendarSystemError{Name: name}
}

// MarshalText stores the system by name so cache files stay readable.
func (s System) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &UnsupportedCalendarSystemError{Name: s.String()}
	}
	return []byte(s.String()), nil
}

func (s *System) UnmarshalText(text []byte) error {
	parsed, err := ParseSystem(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var (
	gregorianMonths = [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	hebrewMonths = [...]string{
		"Nisan", "Iyyar", "Sivan", "Tammuz", "Av", "Elul",
		"Tishri", "Marheshvan", "Kislev", "Tevet", "Shevat", "Adar", "Adar II",
	}
	islamicMonths = [...]string{
		"Muharram", "Safar", "Rabi' I", "Rabi' II", "Jumada I", "Jumada II",
		"Rajab", "Sha'ban", "Ramadan", "Shawwal", "Dhu al-Qa'da", "Dhu al-Hijja",
	}
)

// MonthName returns the display name of a month in the system. In a Hebrew
// leap year Adar is shown as Adar I. Chinese months are numbered.
func (s System) MonthName(month int, leap bool) string {
	var names []string
	switch s {
	case Gregorian:
		names = gregorianMonths[:]
	case Hebrew:
		if leap && month == 12 {
			return "Adar I"
		}
		names = hebrewMonths[:]
	case Islamic:
		names = islamicMonths[:]
	case Chinese:
		if leap {
			return fmt.Sprintf("Leap %d", month)
		}
		return fmt.Sprintf("Month %d", month)
	}
	if month < 1 || month > len(names) {
		return fmt.Sprintf("%d", month)
	}
	return names[month-1]
}
