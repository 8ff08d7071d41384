package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagOutput  = flag.String("o", "", "Write generated code to file instead of stdout")
	flagName    = flag.String("name", "", "Base palette name")
	flagAuthor  = flag.String("author", "", "Credit line emitted above the palette")
	flagPreview = flag.String("preview", "", "Write a PNG preview of the gradient")
	flagLogFile = flag.String("log-file", "", "Also write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOutput != "" {
		cfg.Output.Path = *flagOutput
	}
	if *flagName != "" {
		cfg.Palette.Name = *flagName
		cfg.Palette.Blocks = nil
	}
	if *flagAuthor != "" {
		cfg.Palette.Author = *flagAuthor
	}
	if *flagPreview != "" {
		cfg.Output.Preview = *flagPreview
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
