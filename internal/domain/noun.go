package domain

// GeneratedNounData is a complete vocabulary entry for a Greek noun,
// ready to be turned into flashcards.
type GeneratedNounData struct {
	Lemma               string      `json:"lemma"`
	PartOfSpeech        string      `json:"part_of_speech"`
	TranslationEN       string      `json:"translation_en"`
	TranslationENPlural *string     `json:"translation_en_plural"`
	TranslationRU       string      `json:"translation_ru"`
	Pronunciation       string      `json:"pronunciation"`
	GrammarData         GrammarData `json:"grammar_data"`
	Examples            []Example   `json:"examples"`
}

// GrammarData holds gender, declension class and the full case paradigm.
type GrammarData struct {
	Gender          Gender          `json:"gender"`
	DeclensionGroup DeclensionGroup `json:"declension_group"`
	Cases           Cases           `json:"cases"`
}

// Cases holds singular and plural case forms, each with its definite article.
type Cases struct {
	Singular CaseForms `json:"singular"`
	Plural   CaseForms `json:"plural"`
}

// CaseForms holds the four case forms of one number.
type CaseForms struct {
	Nominative string `json:"nominative"`
	Genitive   string `json:"genitive"`
	Accusative string `json:"accusative"`
	Vocative   string `json:"vocative"`
}

// Example is one usage sentence with translations.
type Example struct {
	ID      int    `json:"id"`
	Greek   string `json:"greek"`
	English string `json:"english"`
	Russian string `json:"russian"`
}
