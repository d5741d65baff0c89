package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"listen_addr":       ":8080",
		"store":             "file",
		"state_dir":         "~/.tasklist/state",
		"database_url":      "",
		"reference_url":     "",
		"reference_timeout": 10,
		"reference_rate":    5.0,
		"log_level":         "info",
		"log_format":        "text",
	}
}
