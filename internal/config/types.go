package config

// Config is the schema of .quizdesk/config.yml.
type Config struct {
	Version  int            `yaml:"version"`
	DataFile string         `yaml:"data_file"`
	UI       UIConfig       `yaml:"ui"`
	Messages MessagesConfig `yaml:"messages"`
}

// UIConfig selects and tunes the front end.
type UIConfig struct {
	Mode    string `yaml:"mode"`
	NoColor bool   `yaml:"no_color"`
	Title   string `yaml:"title"`
}

// MessagesConfig overrides user-facing text.
type MessagesConfig struct {
	Complete      string `yaml:"complete"`
	CorrectPrefix string `yaml:"correct_prefix"`
	WrongPrefix   string `yaml:"wrong_prefix"`
	HintPrefix    string `yaml:"hint_prefix"`
}

// UI modes accepted by ui.mode and --ui.
const (
	UIModeAuto  = "auto"
	UIModeLive  = "live"
	UIModePlain = "plain"
)
