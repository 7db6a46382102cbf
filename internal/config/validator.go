package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion must match ENV_SCHEMA_VERSION in .env
const ExpectedEnvSchemaVersion = "1.0"

// PostgresEnvVars must be set unless STORAGE_DRIVER is sqlite
var PostgresEnvVars = []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}

// RequiredEnvVars returns the variables the selected storage driver needs
func RequiredEnvVars() []string {
	required := []string{"ENV_SCHEMA_VERSION"}
	if !strings.EqualFold(os.Getenv("STORAGE_DRIVER"), StorageDriverSQLite) {
		required = append(required, PostgresEnvVars...)
	}
	return required
}

// ValidateEnv fails on an outdated .env or a missing required variable
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set, add it to .env (expected %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; your .env may be outdated", ExpectedEnvSchemaVersion, v)
	}

	var missing []string
	for _, key := range RequiredEnvVars() {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// envWarning flags a setting that works but leaves a feature off or insecure
type envWarning struct {
	key     string
	applies func(value string) bool
	message string
}

func equals(s string) func(string) bool { return func(v string) bool { return v == s } }

var envWarnings = []envWarning{
	{"DB_PASSWORD", equals("change_this_secure_password"), "DB_PASSWORD is still the example value, set a real password"},
	{"ADMIN_API_KEY", equals(""), "ADMIN_API_KEY is not set, admin endpoints are disabled"},
	{"ADMIN_API_KEY", equals("generate_with_openssl_rand_hex_32"), "ADMIN_API_KEY is still the example value, generate one with: openssl rand -hex 32"},
	{"WINE_API_URL", equals(""), "WINE_API_URL is not set, wine search, quiz and stats report the service as unavailable"},
}

// ValidateEnvWithWarnings runs ValidateEnv and then lists soft problems in a fixed order
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies(os.Getenv(w.key)) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}
