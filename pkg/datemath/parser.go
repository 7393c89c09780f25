package datemath

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Parser resolves natural-language date phrases (English, Roman Urdu and
// Urdu script) found anywhere inside a message into absolute time.Time values.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Karachi"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// weekday holds the bilingual names for one day of the week.
// Roman Urdu spellings follow common transliteration.
type weekday struct {
	day   time.Weekday
	latin []string // English + Roman Urdu, matched on word boundaries
	urdu  string   // Urdu script, matched by substring
}

// weekdays is an ordered list; earlier entries win when a message names
// several days.
var weekdays = []weekday{
	{time.Monday, []string{"monday", "pir", "somwar"}, "پیر"},
	{time.Tuesday, []string{"tuesday", "mangal"}, "منگل"},
	{time.Wednesday, []string{"wednesday", "budh"}, "بدھ"},
	{time.Thursday, []string{"thursday", "jumerat"}, "جمعرات"},
	{time.Friday, []string{"friday", "jumma"}, "جمعہ"},
	{time.Saturday, []string{"saturday", "hafta"}, "ہفتہ"},
	{time.Sunday, []string{"sunday", "itwar"}, "اتوار"},
}

var (
	todayWords    = []string{"today", "aaj"}
	tomorrowWords = []string{"tomorrow", "kal"}
	nextWeekWords = []string{"next week", "agle hafte", "agley haftey"}

	todayScript    = "آج"
	tomorrowScript = "کل"
	nextWeekScript = "اگلے ہفتے"

	isoDateRe = regexp.MustCompile(`\b(\d{4})-(\d{2})-(\d{2})\b`)
)

// Parse finds the first date phrase in text and resolves it against now.
// The match order is a deliberate priority: today, tomorrow, next week,
// named weekday (Latin then Urdu script), literal YYYY-MM-DD. A message
// naming both "tomorrow" and a weekday resolves to tomorrow.
// Returns false when no phrase matches; that is not an error.
func (p *Parser) Parse(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return time.Time{}, false
	}

	if containsWord(lower, todayWords) || strings.Contains(lower, todayScript) {
		return now, true
	}

	if containsWord(lower, tomorrowWords) || strings.Contains(lower, tomorrowScript) {
		return now.AddDate(0, 0, 1), true
	}

	if containsPhrase(lower, nextWeekWords) || strings.Contains(lower, nextWeekScript) {
		return now.AddDate(0, 0, 7), true
	}

	// Named weekday, English or Roman Urdu.
	for _, wd := range weekdays {
		if containsWord(lower, wd.latin) {
			return p.nextWeekday(now, wd.day), true
		}
	}

	// Named weekday in Urdu script.
	for _, wd := range weekdays {
		if strings.Contains(lower, wd.urdu) {
			return p.nextWeekday(now, wd.day), true
		}
	}

	// Literal YYYY-MM-DD at midnight UTC.
	if m := isoDateRe.FindString(lower); m != "" {
		if t, err := time.Parse("2006-01-02", m); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// nextWeekday returns the next occurrence of target strictly after now.
// A bare weekday never resolves to today: if now falls on the target
// weekday, the result rolls forward a full week.
func (p *Parser) nextWeekday(now time.Time, target time.Weekday) time.Time {
	daysUntil := int(target - now.In(p.location).Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}
	return now.AddDate(0, 0, daysUntil)
}

// StartOfDay returns midnight at the start of the given day in the parser's
// timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

func containsWord(text string, words []string) bool {
	for _, w := range words {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(w) + `\b`)
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func containsPhrase(text string, phrases []string) bool {
	for _, ph := range phrases {
		if strings.Contains(text, ph) {
			return true
		}
	}
	return false
}
