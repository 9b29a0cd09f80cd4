// Package parser puts positional os.Args and the environment into model.Config
package parser

import (
	"fmt"
	"strings"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/spf13/viper"
)

// Environment reports whether a variable is present, regardless of its value
type Environment interface {
	IsSet(key string) bool
}

// NewEnvironment returns the process environment as seen by Resolve.
// Empty values are allowed, so CASE_INSENSITIVE= counts as set.
func NewEnvironment() (*viper.Viper, error) {
	v := viper.New()
	v.AllowEmptyEnv(true)
	if err := v.BindEnv(model.CaseInsensitiveEnv); err != nil {
		return nil, fmt.Errorf("failed to bind %s: %w", model.CaseInsensitiveEnv, err)
	}
	return v, nil
}

// Resolve builds model.Config from args (program name excluded).
func Resolve(args []string, env Environment) (model.Config, error) {
	if len(args) < 2 {
		return model.Config{}, model.ErrInsufficientArguments
	}

	return resolve(argIterator(args), env)
}

// resolve takes arguments one by one; missing query/filename are reported even though Resolve checks the count first
func resolve(next func() (string, bool), env Environment) (model.Config, error) {
	query, ok := next()
	if !ok {
		return model.Config{}, model.ErrMissingQuery
	}

	filename, ok := next()
	if !ok {
		return model.Config{}, model.ErrMissingFilename
	}

	// явный третий аргумент имеет приоритет над переменной окружения
	caseSensitive := true
	if token, ok := next(); ok {
		caseSensitive = ParseBool(token)
	} else if env != nil && env.IsSet(model.CaseInsensitiveEnv) {
		caseSensitive = false
	}

	return model.Config{
		Query:         query,
		Filename:      filename,
		CaseSensitive: caseSensitive,
	}, nil
}

// ParseBool is truthy by default: only "false", "no" and "0" (any case) are false.
func ParseBool(s string) bool {
	switch strings.ToLower(s) {
	case "false", "no", "0":
		return false
	default:
		return true
	}
}

func argIterator(args []string) func() (string, bool) {
	i := 0
	return func() (string, bool) {
		if i >= len(args) {
			return "", false
		}
		i++
		return args[i-1], true
	}
}
