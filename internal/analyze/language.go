package analyze

import (
	"math"
	"unicode"
)

type Language struct {
	Language     string  `json:"language"`
	LanguageName string  `json:"language_name"`
	Confidence   float64 `json:"confidence"`
}

var languageNames = map[string]string{
	"en": "English", "es": "Spanish", "fr": "French", "de": "German",
	"it": "Italian", "pt": "Portuguese", "ru": "Russian", "ja": "Japanese",
	"ko": "Korean", "zh": "Chinese", "ar": "Arabic", "hi": "Hindi",
	"nl": "Dutch", "sv": "Swedish", "da": "Danish", "no": "Norwegian",
	"fi": "Finnish", "tr": "Turkish", "pl": "Polish", "cs": "Czech",
}

// Function-word profiles for Latin-script languages. Detection scores
// each profile by token hits; highly ambiguous tokens are simply
// present in several profiles and cancel out.
var languageProfiles = []struct {
	code  string
	words map[string]bool
}{
	{"en", set("the", "and", "is", "are", "was", "were", "of", "to", "in", "that", "it", "with", "for", "you", "this", "have", "not", "on", "they", "but")},
	{"es", set("el", "la", "los", "las", "de", "que", "y", "es", "en", "un", "una", "por", "con", "para", "como", "está", "muy", "pero", "más", "hoy")},
	{"fr", set("le", "la", "les", "de", "des", "et", "est", "en", "un", "une", "que", "qui", "dans", "pour", "vous", "je", "suis", "très", "bonjour", "comment", "allez", "aujourd'hui", "pas")},
	{"de", set("der", "die", "das", "und", "ist", "nicht", "ein", "eine", "mit", "für", "auf", "ich", "sie", "wir", "aber", "auch", "sehr", "heute", "haben", "sind")},
	{"it", set("il", "lo", "la", "gli", "di", "che", "è", "e", "un", "una", "per", "con", "non", "sono", "come", "molto", "oggi", "ma", "questo", "del")},
	{"pt", set("o", "a", "os", "as", "de", "que", "e", "é", "um", "uma", "para", "com", "não", "muito", "mais", "hoje", "está", "como", "por", "isso")},
	{"nl", set("de", "het", "een", "en", "van", "is", "dat", "niet", "met", "voor", "zijn", "maar", "ook", "heel", "vandaag", "ik", "je", "dit", "aan", "op")},
	{"sv", set("och", "att", "det", "som", "en", "ett", "är", "jag", "inte", "på", "med", "för", "har", "den", "idag", "mycket", "men", "av", "om", "så")},
	{"da", set("og", "at", "det", "er", "en", "et", "jeg", "ikke", "på", "med", "til", "har", "den", "i", "dag", "meget", "men", "af", "om", "så")},
	{"pl", set("i", "w", "nie", "na", "to", "jest", "się", "że", "do", "z", "jak", "ale", "bardzo", "dzisiaj", "co", "tak", "po", "ja", "być", "dla")},
	{"tr", set("bir", "ve", "bu", "için", "ile", "çok", "ben", "değil", "ama", "gibi", "daha", "bugün", "ne", "var", "olarak", "da", "de", "en", "mi", "o")},
	{"fi", set("ja", "on", "ei", "että", "se", "en", "minä", "mutta", "myös", "hyvin", "tänään", "olla", "kanssa", "kun", "niin", "tämä", "mitä", "hän", "me", "te")},
	{"cs", set("a", "je", "to", "se", "na", "že", "nen", "ale", "jak", "velmi", "dnes", "co", "tak", "po", "já", "být", "pro", "s", "v", "do")},
}

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

var unknownLanguage = Language{Language: "unknown", LanguageName: "Unknown", Confidence: 0}

// DetectLanguage identifies the language of text. Non-Latin scripts
// are resolved from their Unicode ranges; Latin-script languages are
// scored against function-word profiles.
func DetectLanguage(text string) Language {
	words := Words(text)

	var wordChars int
	for _, w := range words {
		wordChars += len([]rune(w))
	}
	if wordChars < 3 {
		return unknownLanguage
	}

	confidence := math.Min(0.9, 0.5+float64(len(text))/1000)

	if code := detectScript(text); code != "" {
		return Language{Language: code, LanguageName: languageNames[code], Confidence: round3(confidence)}
	}

	best, bestHits := "", 0
	for _, p := range languageProfiles {
		hits := 0
		for _, w := range words {
			if p.words[w] {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = p.code, hits
		}
	}
	if best == "" {
		return unknownLanguage
	}

	name := languageNames[best]
	return Language{Language: best, LanguageName: name, Confidence: round3(confidence)}
}

func detectScript(text string) string {
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Cyrillic, r):
			return "ru"
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			return "ja"
		case unicode.Is(unicode.Hangul, r):
			return "ko"
		case unicode.Is(unicode.Han, r):
			return "zh"
		case unicode.Is(unicode.Arabic, r):
			return "ar"
		case unicode.Is(unicode.Devanagari, r):
			return "hi"
		}
	}
	return ""
}
