package language

import "unicode"

// Language is the detected language family of a message.
type Language string

const (
	English Language = "english"
	Urdu    Language = "urdu"
)

// urduThreshold is the fraction of non-whitespace characters that must fall
// in the Arabic-script block before a message counts as Urdu.
const urduThreshold = 0.30

// Detect classifies text as Urdu or English by character-range ratio.
// Characters in U+0600-U+06FF (Arabic script, used for Urdu) are counted
// against all non-whitespace characters; above 30% the text is Urdu.
// Empty or whitespace-only input is English. Pure function, never fails.
func Detect(text string) Language {
	total := 0
	urdu := 0

	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if r >= 0x0600 && r <= 0x06FF {
			urdu++
		}
	}

	if total == 0 {
		return English
	}

	if float64(urdu)/float64(total) > urduThreshold {
		return Urdu
	}
	return English
}
