package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing weft.yaml to be fine, got %v", err)
	}
	if cfg.App.Name != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadOptionalParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "app:\n  name: demo\ninspector:\n  addr: 127.0.0.1:7878\n"
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.App.Name != "demo" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "demo")
	}
	if cfg.Inspector.Addr != "127.0.0.1:7878" {
		t.Errorf("Inspector.Addr = %q, want %q", cfg.Inspector.Addr, "127.0.0.1:7878")
	}
}

func TestLoadOptionalRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte("app: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadOptional(dir); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestResolveAppNameFromModulePath(t *testing.T) {
	dir := t.TempDir()
	gomod := "module example.com/acme/widgets\n\ngo 1.24.0\n"
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644); err != nil {
		t.Fatal(err)
	}

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.AppName != "widgets" {
		t.Errorf("AppName = %q, want %q", resolved.AppName, "widgets")
	}
}

func TestResolveExplicitNameWins(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), []byte("app:\n  name: explicit\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.AppName != "explicit" {
		t.Errorf("AppName = %q, want %q", resolved.AppName, "explicit")
	}
}

func TestResolveFallsBackToDirName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myapp")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.AppName != "myapp" {
		t.Errorf("AppName = %q, want %q", resolved.AppName, "myapp")
	}
}
