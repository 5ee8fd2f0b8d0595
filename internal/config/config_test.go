package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigs(t *testing.T, public, private string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "public.yaml"), []byte(public), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "private.yaml"), []byte(private), 0o600); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestMustLoad(t *testing.T) {
	dir := writeConfigs(t,
		"address: ':9090'\nrecent_threads_limit: 5\nreplies_preview_limit: 2\nlog_level: debug\n",
		"pg:\n  host: localhost\n  port: 5432\n  user: u\n  password: p\n  dbname: msgboard\n",
	)

	cfg := MustLoad(dir)
	if cfg.Public.Address != ":9090" {
		t.Errorf("expected address :9090, got %q", cfg.Public.Address)
	}
	if cfg.Public.RecentThreadsLimit != 5 || cfg.Public.RepliesPreviewLimit != 2 {
		t.Errorf("unexpected limits: %d/%d", cfg.Public.RecentThreadsLimit, cfg.Public.RepliesPreviewLimit)
	}
	if cfg.Private.Pg.Host != "localhost" || cfg.Private.Pg.Dbname != "msgboard" {
		t.Errorf("unexpected pg config: %+v", cfg.Private.Pg)
	}
}

func TestMustLoad_Defaults(t *testing.T) {
	dir := writeConfigs(t, "log_level: info\n", "pg:\n  host: localhost\n")

	cfg := MustLoad(dir)
	if cfg.Public.Address != ":8080" {
		t.Errorf("expected default address, got %q", cfg.Public.Address)
	}
	if cfg.Public.RecentThreadsLimit != DefaultRecentThreadsLimit {
		t.Errorf("expected default recent threads limit, got %d", cfg.Public.RecentThreadsLimit)
	}
	if cfg.Public.RepliesPreviewLimit != DefaultRepliesPreviewLimit {
		t.Errorf("expected default replies preview limit, got %d", cfg.Public.RepliesPreviewLimit)
	}
}

func TestMustLoad_MissingFile(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic for missing config folder, got none")
		}
	}()

	_ = MustLoad(t.TempDir())
}
