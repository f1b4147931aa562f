package types

// CorrectionField names a geometry value that a correction may replace.
type CorrectionField string

const (
	CorrectionFieldPitchX CorrectionField = "pitch_x"
	CorrectionFieldPitchY CorrectionField = "pitch_y"
)

// Correction replaces a known-bad value read from one model's definition.
// The correction only fires when the file carries exactly the When value.
type Correction struct {
	Model  string          `yaml:"model" mapstructure:"model"`
	Field  CorrectionField `yaml:"field" mapstructure:"field"`
	When   float64         `yaml:"when" mapstructure:"when"`
	Value  float64         `yaml:"value" mapstructure:"value"`
	Reason string          `yaml:"reason" mapstructure:"reason"`
}

// FileAlias rewrites part of a definition filename when deriving the name of
// its companion .ctr file.
type FileAlias struct {
	Match   string `yaml:"match" mapstructure:"match"`
	Replace string `yaml:"replace" mapstructure:"replace"`
}
