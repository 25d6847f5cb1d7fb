package bot

// Language selects which side of the bilingual catalog is consulted.
type Language string

const (
	English Language = "english"
	Swahili Language = "swahili"
)

// IsValidLanguage checks if a language is supported
func IsValidLanguage(lang string) bool {
	return Language(lang) == English || Language(lang) == Swahili
}
