package sqlite

import (
	"log/slog"
	"testing"

	"github.com/myrjola/liftplan/internal/testhelpers"
)

// TestDatabase_migrate applies successive schema definitions to the same
// database and then probes the result with queries. wantErr refers to the
// probe queries, not the migrations, which must always succeed.
func TestDatabase_migrate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		schemas []string
		probes  []string
		wantErr bool
	}{
		{
			name:    "empty schema",
			schemas: []string{""},
			probes:  []string{"SELECT * FROM sqlite_schema"},
			wantErr: false,
		},
		{
			name:    "create table",
			schemas: []string{"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT)"},
			probes: []string{
				"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')",
				"SELECT * FROM plans",
			},
			wantErr: false,
		},
		{
			name: "drop table",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT)",
				"",
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: true,
		},
		{
			name: "add column",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY)",
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT)",
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: false,
		},
		{
			name: "remove column",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY)",
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT)",
				"CREATE TABLE plans (id INTEGER PRIMARY KEY)",
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: true,
		},
		{
			name: "create index",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT); CREATE INDEX plans_split ON plans (split)",
			},
			probes:  []string{"DROP INDEX plans_split"},
			wantErr: false,
		},
		{
			name: "drop index",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT); CREATE INDEX plans_split ON plans (split)",
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT)",
			},
			probes:  []string{"DROP INDEX plans_split"},
			wantErr: true,
		},
		{
			name: "update index",
			schemas: []string{
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT); CREATE INDEX plans_split ON plans (split)",
				"CREATE TABLE plans (id INTEGER PRIMARY KEY, split TEXT); CREATE INDEX plans_split ON plans (id, split)",
			},
			probes:  []string{"DROP INDEX plans_split"},
			wantErr: false,
		},
		{
			name: "create trigger",
			schemas: []string{
				`CREATE TABLE plans ( id INTEGER PRIMARY KEY, split TEXT );
                 CREATE TRIGGER plans_guard AFTER INSERT ON plans BEGIN SELECT RAISE ( FAIL, 'fail' ); END;`,
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: true,
		},
		{
			name: "delete trigger",
			schemas: []string{
				`CREATE TABLE plans ( id INTEGER PRIMARY KEY, split TEXT );
                 CREATE TRIGGER plans_guard AFTER INSERT ON plans BEGIN SELECT RAISE ( FAIL, 'fail' ); END;`,
				"CREATE TABLE plans ( id INTEGER PRIMARY KEY, split TEXT )",
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: false,
		},
		{
			name: "update trigger",
			schemas: []string{
				`CREATE TABLE plans ( id INTEGER PRIMARY KEY, split TEXT );
                 CREATE TRIGGER plans_guard AFTER INSERT ON plans BEGIN SELECT RAISE ( FAIL, 'fail' ); END;`,
				`CREATE TABLE plans ( id INTEGER PRIMARY KEY, split TEXT );
                 CREATE TRIGGER plans_guard AFTER INSERT ON plans BEGIN SELECT 1; END;`,
			},
			probes:  []string{"INSERT INTO plans (split) VALUES ('Push/Pull/Legs')"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := t.Context()
			logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
			db, err := connect(ctx, ":memory:", logger)
			if err != nil {
				t.Fatalf("connect: %v", err)
			}
			t.Cleanup(func() {
				if closeErr := db.Close(); closeErr != nil {
					t.Errorf("close database: %v", closeErr)
				}
			})

			for _, schema := range tt.schemas {
				logger.LogAttrs(ctx, slog.LevelInfo, "migrating", slog.String("schema", schema))
				if err = db.migrateTo(ctx, schema); err != nil {
					t.Fatalf("migrateTo: %v", err)
				}
			}

			for _, probe := range tt.probes {
				logger.LogAttrs(ctx, slog.LevelInfo, "executing", slog.String("query", probe))
				_, err = db.ReadWrite.ExecContext(ctx, probe)
				if tt.wantErr && err == nil {
					t.Errorf("expected error for query %q, got none", probe)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("unexpected error for query %q: %v", probe, err)
				}
			}
		})
	}
}
