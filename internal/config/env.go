package config

import (
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var durationType = reflect.TypeOf(time.Duration(0))

// LoadEnv overlays environment variables onto config.
// Every field carrying an `env:"NAME"` tag is replaced when NAME is set.
func LoadEnv(config *AppConfig) error {
	sections := []struct {
		name   string
		target interface{}
	}{
		{"app", &config.App},
		{"server", &config.Server},
		{"logging", &config.Logging},
		{"cors", &config.CORS},
		{"gdpr_logging", &config.GDPRLogging},
		{"reset", &config.Reset},
		{"log_function", &config.LogFunction},
	}

	applied := 0
	for _, section := range sections {
		n, err := processStructEnv(section.target)
		if err != nil {
			return fmt.Errorf("%s: %w", section.name, err)
		}
		applied += n
	}

	log.Debug().Int("variables", applied).Msg("Environment overrides applied")
	return nil
}

// processStructEnv sets the env-tagged fields of the struct s points to.
// It returns how many fields were taken from the environment.
func processStructEnv(s interface{}) (int, error) {
	val := reflect.ValueOf(s).Elem()
	typ := val.Type()

	applied := 0
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		envName := field.Tag.Get("env")
		if envName == "" || !val.Field(i).CanSet() {
			continue
		}

		envValue, exists := os.LookupEnv(envName)
		if !exists {
			continue
		}

		if err := setFromEnv(val.Field(i), envValue); err != nil {
			return applied, fmt.Errorf("invalid value for %s: %w", envName, err)
		}
		applied++
	}

	return applied, nil
}

// setFromEnv parses raw into field according to the field's type.
// Durations use time.ParseDuration; string slices are comma separated.
func setFromEnv(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		values := strings.Split(raw, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}
		field.Set(reflect.ValueOf(values))
	default:
		return fmt.Errorf("unsupported field type %s", field.Type())
	}

	return nil
}
