// Package sanitizer маскирует чувствительные данные перед записью в
// логи и журнал аудита: номера карт, CVV, сроки действия, email и
// телефоны. Аргументы place_order не должны попадать на диск в
// открытом виде.
package sanitizer

import "encoding/json"

type DataSanitizer struct {
	rules []SanitizerRule
}

type SanitizerRule interface {
	Sanitize(text string) string
}

func New() *DataSanitizer {
	return &DataSanitizer{
		rules: []SanitizerRule{
			&CardSanitizer{},
			&EmailSanitizer{},
			&PhoneSanitizer{},
		},
	}
}

func (s *DataSanitizer) Sanitize(text string) string {
	if text == "" {
		return text
	}
	result := text
	for _, rule := range s.rules {
		result = rule.Sanitize(result)
	}
	return result
}

// SanitizeArgs сериализует аргументы инструмента и маскирует их одной
// строкой, пригодной для журнала.
func (s *DataSanitizer) SanitizeArgs(args map[string]any) string {
	raw, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return s.Sanitize(string(raw))
}
