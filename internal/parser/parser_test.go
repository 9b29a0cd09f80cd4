package parser_test

import (
	"os"
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/stretchr/testify/require"
)

type fakeEnv map[string]string

func (f fakeEnv) IsSet(key string) bool {
	_, ok := f[key]
	return ok
}

func TestResolve(t *testing.T) {
	setEnv := fakeEnv{model.CaseInsensitiveEnv: "whatever"}
	emptyEnv := fakeEnv{}

	cases := []struct {
		name    string
		args    []string
		env     parser.Environment
		wantCfg model.Config
		wantErr error
	}{
		{
			name:    "Negative - no args",
			args:    nil,
			env:     emptyEnv,
			wantErr: model.ErrInsufficientArguments,
		},
		{
			name:    "Negative - only query",
			args:    []string{"foo"},
			env:     emptyEnv,
			wantErr: model.ErrInsufficientArguments,
		},
		{
			name:    "Positive - env unset",
			args:    []string{"foo", "bar.txt"},
			env:     emptyEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: true},
		},
		{
			name:    "Positive - env set",
			args:    []string{"foo", "bar.txt"},
			env:     setEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: false},
		},
		{
			name:    "Positive - env set to empty value",
			args:    []string{"foo", "bar.txt"},
			env:     fakeEnv{model.CaseInsensitiveEnv: ""},
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: false},
		},
		{
			name:    "Positive - explicit no wins over unset env",
			args:    []string{"foo", "bar.txt", "no"},
			env:     emptyEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: false},
		},
		{
			name:    "Positive - explicit no with env set",
			args:    []string{"foo", "bar.txt", "no"},
			env:     setEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: false},
		},
		{
			name:    "Positive - explicit true wins over env",
			args:    []string{"foo", "bar.txt", "true"},
			env:     setEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: true},
		},
		{
			name:    "Positive - unknown token is truthy",
			args:    []string{"foo", "bar.txt", "nope"},
			env:     setEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: true},
		},
		{
			name:    "Positive - extra args ignored",
			args:    []string{"foo", "bar.txt", "0", "extra"},
			env:     emptyEnv,
			wantCfg: model.Config{Query: "foo", Filename: "bar.txt", CaseSensitive: false},
		},
		{
			name:    "Positive - empty query is allowed",
			args:    []string{"", "bar.txt"},
			env:     nil,
			wantCfg: model.Config{Query: "", Filename: "bar.txt", CaseSensitive: true},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Resolve(tt.args, tt.env)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Equal(t, model.Config{}, cfg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantCfg, cfg)
		})
	}
}

func TestResolveProcessEnvironment(t *testing.T) {
	args := []string{"foo", "bar.txt"}

	t.Run("unset", func(t *testing.T) {
		// t.Setenv регистрирует восстановление значения, после чего переменную можно удалить
		t.Setenv(model.CaseInsensitiveEnv, "")
		require.NoError(t, os.Unsetenv(model.CaseInsensitiveEnv))

		env, err := parser.NewEnvironment()
		require.NoError(t, err)

		cfg, err := parser.Resolve(args, env)
		require.NoError(t, err)
		require.True(t, cfg.CaseSensitive)
	})

	t.Run("set", func(t *testing.T) {
		t.Setenv(model.CaseInsensitiveEnv, "1")

		env, err := parser.NewEnvironment()
		require.NoError(t, err)

		cfg, err := parser.Resolve(args, env)
		require.NoError(t, err)
		require.False(t, cfg.CaseSensitive)
	})

	t.Run("set empty", func(t *testing.T) {
		t.Setenv(model.CaseInsensitiveEnv, "")

		env, err := parser.NewEnvironment()
		require.NoError(t, err)

		cfg, err := parser.Resolve(args, env)
		require.NoError(t, err)
		require.False(t, cfg.CaseSensitive)
	})
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"false", "FaLsE", "no", "NO", "0"} {
		require.False(t, parser.ParseBool(v), "value %q", v)
	}
	for _, v := range []string{"true", "yes", "1", "", "anything", "off"} {
		require.True(t, parser.ParseBool(v), "value %q", v)
	}
}
