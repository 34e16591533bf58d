package config

import "time"

// Timer behaviour.
const (
	TickInterval = time.Second

	// HistoryTimeLayout renders completion timestamps like an en-US locale string.
	HistoryTimeLayout = "1/2/2006, 3:04:05 PM"
)

// Storage keys.
const (
	TimersKey  = "timers"
	HistoryKey = "timerHistory"
)

// Application files.
const (
	AppName           = "multitimer"
	DBFileName        = "multitimer.db"
	LogFileName       = "multitimer.log"
	ConfigFileName    = "config"
	HistoryExportName = "timer_history"
	EnvPrefix         = "MULTITIMER"
)

// Themes.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
