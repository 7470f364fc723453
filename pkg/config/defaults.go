package config

// Default returns the configuration written on first run and used whenever
// the user's file cannot be loaded.
func Default() *Config {
	title := "Applications"
	return &Config{
		MenuTitle: &title,
		Entries: []EntryConfig{
			{Key: "f", Label: "Firefox", Command: "firefox"},
			{Key: "p", Label: "Firefox Private", Command: "firefox --private-window"},
			{Key: "m", Label: "MPV", Command: "mpv"},
			{Key: "v", Label: "MPV (clipboard)", Command: `mpv "$(xclip -o)"`},
			{Key: "t", Label: "Terminal", Command: "x-terminal-emulator"},
		},
	}
}
