package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample builds an example settings document from the yaml tags
// on Settings, so it stays in sync when fields are added
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]
		example[name] = exampleValue(name)
	}

	return example
}

func exampleValue(name string) any {
	switch name {
	case "archive":
		return true
	case "await_timeout":
		return DefaultAwaitTimeout.String()
	case "ca_certs":
		return "~/.lurker/cert.pem"
	case "debug":
		return false
	case "dial_timeout":
		return DefaultDialTimeout.String()
	case "endpoint":
		return DefaultEndpoint
	case "farewell":
		return DefaultFarewell
	case "logout_grace":
		return DefaultLogoutGrace.String()
	case "max_log_files":
		return DefaultMaxLogFiles
	case "min_level":
		return 0
	case "tick_period":
		return DefaultTickPeriod.String()
	case "write_timeout":
		return DefaultWriteTimeout.String()
	default:
		return "example"
	}
}
