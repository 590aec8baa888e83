package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  σπίτι  ", want: "σπίτι"},
		{name: "lowercase", input: "Σπίτι", want: "σπίτι"},
		{name: "final sigma", input: "ΑΝΘΡΩΠΟΣ", want: "ανθρωπος"},
		{name: "final sigma per word", input: "ΟΙ ΔΡΟΜΟΣ ΚΑΙ", want: "οι δρομος και"},
		{name: "compress multiple spaces", input: "ο   άνθρωπος", want: "ο άνθρωπος"},
		{name: "decomposed accent composed", input: "σπίτι", want: "σπίτι"},
		{name: "latin preserved", input: "Hello World", want: "hello world"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "tabs and spaces", input: "\t λέξη \t", want: "λέξη"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsGreekText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"σπίτι", true},
		{"ο άνθρωπος", true},
		{"ἄνθρωπος", true},
		{"σπίτι", true},
		{"ΣΠΙΤΙ", true},
		{"house", false},
		{"σπίτι1", false},
		{"σπίτι!", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsGreekText(tt.input); got != tt.want {
			t.Errorf("IsGreekText(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestStripArticle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"ο άνθρωπος", "άνθρωπος"},
		{"  Η γυναίκα ", "γυναίκα"},
		{"το\tσπίτι", "σπίτι"},
		{"του ανθρώπου", "ανθρώπου"},
		{"τους ανθρώπους", "ανθρώπους"},
		{"άνθρωπος", "άνθρωπος"},
		{"το", "το"},
		{"ωραίο σπίτι", "ωραίο σπίτι"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := StripArticle(tt.input); got != tt.want {
			t.Errorf("StripArticle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStripAccents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"άνθρωπος", "ανθρωπος"},
		{"μαθητής", "μαθητης"},
		{"Πρόβλημα", "προβλημα"},
		{"προϊόν", "προιον"},
		{"ἄνθρωπος", "ανθρωπος"},
		{"ής", "ης"},
	}
	for _, tt := range tests {
		if got := StripAccents(tt.input); got != tt.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
