package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DotReplitLanguage is a [languages.<name>] table.
type DotReplitLanguage struct {
	Pattern string `toml:"pattern"`
	Syntax  string `toml:"syntax"`
}

// DotReplit is the parsed .replit workspace file.
type DotReplit struct {
	// Run is the run command as argv. A string run command becomes
	// ["sh", "-c", cmd].
	Run        []string
	Language   string
	Entrypoint string
	Hidden     []string
	Env        map[string]string
	Languages  map[string]DotReplitLanguage
}

type dotReplitFile struct {
	Run        interface{}                  `toml:"run"`
	Language   string                       `toml:"language"`
	Entrypoint string                       `toml:"entrypoint"`
	Hidden     []string                     `toml:"hidden"`
	Env        map[string]string            `toml:"env"`
	Languages  map[string]DotReplitLanguage `toml:"languages"`
}

// LoadDotReplit reads a .replit file. A missing file yields an empty
// configuration.
func LoadDotReplit(path string) (*DotReplit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &DotReplit{}, nil
		}
		return nil, err
	}
	return ParseDotReplit(data)
}

// ParseDotReplit parses .replit TOML.
func ParseDotReplit(data []byte) (*DotReplit, error) {
	var raw dotReplitFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse .replit: %w", err)
	}

	run, err := runArgs(raw.Run)
	if err != nil {
		return nil, err
	}

	return &DotReplit{
		Run:        run,
		Language:   raw.Language,
		Entrypoint: raw.Entrypoint,
		Hidden:     raw.Hidden,
		Env:        raw.Env,
		Languages:  raw.Languages,
	}, nil
}

func runArgs(v interface{}) ([]string, error) {
	switch run := v.(type) {
	case nil:
		return nil, nil
	case string:
		if run == "" {
			return nil, nil
		}
		return []string{"sh", "-c", run}, nil
	case []interface{}:
		args := make([]string, 0, len(run))
		for _, a := range run {
			s, ok := a.(string)
			if !ok {
				return nil, fmt.Errorf(".replit: run entries must be strings, got %T", a)
			}
			args = append(args, s)
		}
		return args, nil
	default:
		return nil, fmt.Errorf(".replit: run must be a string or an array, got %T", v)
	}
}
