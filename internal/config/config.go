package config

import "time"

// Config is the root application configuration.
type Config struct {
	LLM        LLMConfig        `yaml:"llm"`
	Lexicon    LexiconConfig    `yaml:"lexicon"`
	Spell      SpellConfig      `yaml:"spell"`
	Generation GenerationConfig `yaml:"generation"`
	Log        LogConfig        `yaml:"log"`
}

// LLMConfig holds completion gateway settings.
type LLMConfig struct {
	APIKey           string        `yaml:"api_key"            env:"LLM_API_KEY"`
	BaseURL          string        `yaml:"base_url"           env:"LLM_BASE_URL"           env-default:"https://api.openai.com/v1"`
	AnthropicAPIKey  string        `yaml:"anthropic_api_key"  env:"LLM_ANTHROPIC_API_KEY"`
	AnthropicBaseURL string        `yaml:"anthropic_base_url" env:"LLM_ANTHROPIC_BASE_URL"`
	DefaultModel     string        `yaml:"default_model"      env:"LLM_DEFAULT_MODEL"      env-default:"gpt-4o-mini"`
	SecondaryModel   string        `yaml:"secondary_model"    env:"LLM_SECONDARY_MODEL"    env-default:"gpt-4o"`
	Timeout          time.Duration `yaml:"timeout"            env:"LLM_TIMEOUT"            env-default:"60s"`
	MaxTokens        int           `yaml:"max_tokens"         env:"LLM_MAX_TOKENS"         env-default:"2048"`
	Temperature      float64       `yaml:"temperature"        env:"LLM_TEMPERATURE"        env-default:"0.3"`
	MaxAttempts      int           `yaml:"max_attempts"       env:"LLM_MAX_ATTEMPTS"       env-default:"3"`
	BackoffRaw       string        `yaml:"backoff"            env:"LLM_BACKOFF"            env-default:"1s,2s"`

	// Backoff is parsed from BackoffRaw during validation.
	Backoff []time.Duration `yaml:"-" env:"-"`
}

// LexiconConfig points at the morphological lexicon. Empty Path with the yaml
// format uses the embedded bootstrap lexicon; the wiktextract format reads a
// Kaikki.org JSONL dump and requires Path.
type LexiconConfig struct {
	Path   string `yaml:"path"   env:"LEXICON_PATH"`
	Format string `yaml:"format" env:"LEXICON_FORMAT" env-default:"yaml"`
}

// SpellConfig selects and configures the spelling oracle.
type SpellConfig struct {
	Source         string        `yaml:"source"          env:"SPELL_SOURCE"          env-default:"wordlist"`
	WordListPath   string        `yaml:"wordlist_path"   env:"SPELL_WORDLIST_PATH"`
	WordListFormat string        `yaml:"wordlist_format" env:"SPELL_WORDLIST_FORMAT" env-default:"text"`
	BaseURL        string        `yaml:"base_url"        env:"SPELL_BASE_URL"`
	Timeout        time.Duration `yaml:"timeout"         env:"SPELL_TIMEOUT"         env-default:"10s"`
}

// GenerationConfig controls the word generation pipeline.
type GenerationConfig struct {
	Verify         bool `yaml:"verify"          env:"GENERATION_VERIFY"          env-default:"true"`
	ParallelVerify bool `yaml:"parallel_verify" env:"GENERATION_PARALLEL_VERIFY" env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Lexicon formats. An empty format means LexiconFormatYAML.
const (
	LexiconFormatYAML        = "yaml"
	LexiconFormatWiktextract = "wiktextract"
)

// Word list formats. An empty format means WordListFormatText. The
// wiktextract format falls back to the lexicon dump when WordListPath is empty.
const (
	WordListFormatText        = "text"
	WordListFormatWiktextract = "wiktextract"
)

// Spell oracle sources.
const (
	SpellSourceWordList = "wordlist"
	SpellSourceHTTP     = "http"
)
