package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/leofalp/prefsjson/core/prefs"
	"github.com/leofalp/prefsjson/internal/utils"
	"github.com/leofalp/prefsjson/providers/render"
)

// Input formats accepted in PREFSJSON_INPUT_FORMAT.
const (
	inputXML   = "xml"
	inputPlist = "plist"
)

// config is read from the environment (and .env, via godotenv) once at
// startup. The binary takes no flags.
type config struct {
	inputFormat      string
	outputFormat     render.Format
	indent           int
	keyPrefix        string
	repair           bool
	flutterEncodings bool
	skipMissingName  bool
}

// loadConfig reads PREFSJSON_* variables through lookup, which has the
// signature of os.LookupEnv.
func loadConfig(lookup func(string) (string, bool)) (config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := config{
		inputFormat: inputXML,
		indent:      render.DefaultIndent,
		keyPrefix:   prefs.DefaultKeyPrefix,
	}

	switch in := strings.ToLower(strings.TrimSpace(get("PREFSJSON_INPUT_FORMAT"))); in {
	case "", inputXML:
	case inputPlist:
		cfg.inputFormat = inputPlist
	default:
		return config{}, fmt.Errorf("PREFSJSON_INPUT_FORMAT: unknown input format %q", in)
	}

	out, err := render.ParseFormat(get("PREFSJSON_OUTPUT_FORMAT"))
	if err != nil {
		return config{}, fmt.Errorf("PREFSJSON_OUTPUT_FORMAT: %w", err)
	}
	cfg.outputFormat = out

	if v := strings.TrimSpace(get("PREFSJSON_INDENT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return config{}, fmt.Errorf("PREFSJSON_INDENT: want a non-negative integer, got %q", v)
		}
		cfg.indent = n
	}

	// An explicitly empty prefix disables key rewriting.
	if v, ok := lookup("PREFSJSON_KEY_PREFIX"); ok {
		cfg.keyPrefix = v
	}

	bools := []struct {
		env string
		dst *bool
	}{
		{"PREFSJSON_REPAIR_JSON", &cfg.repair},
		{"PREFSJSON_FLUTTER_ENCODINGS", &cfg.flutterEncodings},
		{"PREFSJSON_SKIP_MISSING_NAME", &cfg.skipMissingName},
	}
	for _, b := range bools {
		v, err := utils.ParseBool(get(b.env))
		if err != nil {
			return config{}, fmt.Errorf("%s: %w", b.env, err)
		}
		*b.dst = v
	}

	return cfg, nil
}

// converterOptions maps the configuration onto prefs options.
func (c config) converterOptions() []prefs.Option {
	policy := prefs.MissingNameFail
	if c.skipMissingName {
		policy = prefs.MissingNameSkip
	}
	return []prefs.Option{
		prefs.WithKeyPrefix(c.keyPrefix),
		prefs.WithRepair(c.repair),
		prefs.WithFlutterEncodings(c.flutterEncodings),
		prefs.WithMissingNamePolicy(policy),
	}
}
