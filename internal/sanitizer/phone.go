package sanitizer

import "regexp"

type PhoneSanitizer struct{}

// Американские форматы: вендор работает в US.
var phonePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\+1[-.\s]?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	regexp.MustCompile(`\b\(?\d{3}\)?[-.\s]\d{3}[-.\s]?\d{4}\b`),
	regexp.MustCompile(`(?i)(phone)"?\s*[:=]\s*["']?([+\d\s\-\(\)]{7,})["']?`),
}

func (s *PhoneSanitizer) Sanitize(text string) string {
	for _, pattern := range phonePatterns {
		text = pattern.ReplaceAllString(text, `[FILTERED_PHONE]`)
	}
	return text
}
