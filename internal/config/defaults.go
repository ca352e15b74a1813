package config

// DefaultEscalationMessage is returned after repeated unanswered queries.
const DefaultEscalationMessage = "Sorry, I couldn't find an answer to your recent questions. Please contact our support team so a human can help you."

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Corpus.Source == "" {
		cfg.Corpus.Source = "file"
	}
	if cfg.Corpus.Path == "" {
		cfg.Corpus.Path = "/usr/local/var/kotae/data/faq.txt"
	}
	if cfg.Corpus.DatabasePath == "" {
		cfg.Corpus.DatabasePath = "/usr/local/var/kotae/data/faq.db"
	}
	if cfg.Match.Strong == 0 {
		cfg.Match.Strong = 0.3
	}
	if cfg.Match.Weak == 0 {
		cfg.Match.Weak = 0.2
	}
	if cfg.Match.Gap == 0 {
		cfg.Match.Gap = 0.08
	}
	if cfg.Match.FuzzyAccept == 0 {
		cfg.Match.FuzzyAccept = 0.4
	}
	if cfg.Match.AmbiguityEpsilon == 0 {
		cfg.Match.AmbiguityEpsilon = 0.05
	}
	if cfg.Match.FailLimit == 0 {
		cfg.Match.FailLimit = 3
	}
	if cfg.Match.TopK == 0 {
		cfg.Match.TopK = 3
	}
	if cfg.Match.EscalationMessage == "" {
		cfg.Match.EscalationMessage = DefaultEscalationMessage
	}
	if cfg.Fuzzy.MaxScore == 0 {
		cfg.Fuzzy.MaxScore = 0.45
	}
	if cfg.Fuzzy.MaxTokenEdits == 0 {
		cfg.Fuzzy.MaxTokenEdits = 2
	}
	if cfg.Fuzzy.MinTokenLength == 0 {
		cfg.Fuzzy.MinTokenLength = 3
	}
	if cfg.Synonym.Provider == "" {
		cfg.Synonym.Provider = "none"
	}
	if cfg.Synonym.Param == "" {
		cfg.Synonym.Param = "rel_syn"
	}
	if cfg.Synonym.TimeoutMs == 0 {
		cfg.Synonym.TimeoutMs = 800
	}
}
