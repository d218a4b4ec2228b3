package envstruct_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/liftplan/internal/envstruct"
	"github.com/myrjola/liftplan/internal/errors"
)

type serverConfig struct {
	Addr      string `env:"ADDR" envDefault:":8080"`
	SqliteURL string `env:"SQLITE_URL"`
	Unrelated string
}

func noEnv(_ string) (string, bool) { return "", false }

func TestPopulate(t *testing.T) {
	env := map[string]string{
		"SQLITE_URL": ":memory:",
	}
	lookup := func(name string) (string, bool) {
		val, ok := env[name]
		return val, ok
	}

	var cfg serverConfig
	if err := envstruct.Populate(&cfg, lookup); err != nil {
		t.Fatalf("Populate() unexpected error = %v", err)
	}

	want := serverConfig{Addr: ":8080", SqliteURL: ":memory:", Unrelated: ""}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Populate() mismatch (-want +got):\n%s", diff)
	}
}

func TestPopulate_EnvOverridesDefault(t *testing.T) {
	lookup := func(name string) (string, bool) { return strings.ToLower(name), true }

	var cfg serverConfig
	if err := envstruct.Populate(&cfg, lookup); err != nil {
		t.Fatalf("Populate() unexpected error = %v", err)
	}

	if cfg.Addr != "addr" || cfg.SqliteURL != "sqlite_url" {
		t.Errorf("Populate() = %+v, want env values over defaults", cfg)
	}
	if cfg.Unrelated != "" {
		t.Errorf("untagged field was populated: %q", cfg.Unrelated)
	}
}

func TestPopulate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		v       any
		wantErr error
	}{
		{
			name:    "nil",
			v:       nil,
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name:    "not a pointer",
			v:       serverConfig{},
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name:    "pointer to non-struct",
			v:       new(string),
			wantErr: envstruct.ErrInvalidValue,
		},
		{
			name: "missing variable without default",
			v: &struct {
				Required string `env:"REQUIRED"`
			}{},
			wantErr: envstruct.ErrEnvNotSet,
		},
		{
			name: "non-string field",
			v: &struct {
				Port int `env:"PORT"`
			}{},
			wantErr: envstruct.ErrInvalidValue,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := envstruct.Populate(tt.v, noEnv)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Populate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPopulate_CollectsAllFieldErrors(t *testing.T) {
	v := &struct {
		First  string `env:"FIRST"`
		Second string `env:"SECOND"`
	}{}

	err := envstruct.Populate(v, noEnv)
	if err == nil {
		t.Fatal("Populate() expected error")
	}
	for _, name := range []string{"FIRST", "SECOND"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("joined error does not mention %s: %v", name, err)
		}
	}
}
