package register

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func Test_parseArgs_ProjectDefaultDirectory(t *testing.T) {
	configPath, serverArgs, err := parseArgs([]string{"project"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(configPath) != ".mcp.json" {
		t.Errorf("expected .mcp.json target, got %q", configPath)
	}
	if serverArgs != nil {
		t.Errorf("expected no server args, got %v", serverArgs)
	}
}

func Test_parseArgs_ProjectDirectoryAndForwarded(t *testing.T) {
	configPath, serverArgs, err := parseArgs([]string{"project", "/tmp/proj", "--", "-root", "/src"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if configPath != filepath.Join("/tmp/proj", ".mcp.json") {
		t.Errorf("expected config under /tmp/proj, got %q", configPath)
	}
	if !reflect.DeepEqual(serverArgs, []string{"-root", "/src"}) {
		t.Errorf("expected forwarded args, got %v", serverArgs)
	}
}

func Test_parseArgs_UserScope(t *testing.T) {
	configPath, serverArgs, err := parseArgs([]string{"user", "--", "-log-level", "debug"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(configPath) != ".claude.json" {
		t.Errorf("expected .claude.json target, got %q", configPath)
	}
	if !reflect.DeepEqual(serverArgs, []string{"-log-level", "debug"}) {
		t.Errorf("expected forwarded args, got %v", serverArgs)
	}
}

func Test_parseArgs_Invalid(t *testing.T) {
	if _, _, err := parseArgs(nil); err == nil {
		t.Error("expected error for missing scope")
	}
	if _, _, err := parseArgs([]string{"global"}); err == nil || !strings.Contains(err.Error(), "unknown scope") {
		t.Errorf("expected unknown-scope error, got %v", err)
	}
}

func Test_upsertServer_CreatesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")

	err := upsertServer(configPath, "sweep", serverEntry{Command: "/bin/sweep-mcp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}

	var config map[string]map[string]serverEntry
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	if config["mcpServers"]["sweep"].Command != "/bin/sweep-mcp" {
		t.Errorf("expected sweep entry, got %+v", config)
	}
}

func Test_upsertServer_PreservesOtherEntries(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")
	existing := `{"mcpServers":{"other":{"command":"/bin/other"}},"extra":"kept"}`
	if err := os.WriteFile(configPath, []byte(existing), 0644); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	if err := upsertServer(configPath, "sweep", serverEntry{Command: "/bin/sweep-mcp"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}

	var config map[string]interface{}
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("parsing config: %v", err)
	}
	servers := config["mcpServers"].(map[string]interface{})
	if _, ok := servers["other"]; !ok {
		t.Error("expected pre-existing server entry preserved")
	}
	if _, ok := servers["sweep"]; !ok {
		t.Error("expected new server entry added")
	}
	if config["extra"] != "kept" {
		t.Error("expected unrelated top-level keys preserved")
	}
}

func Test_upsertServer_MalformedExisting(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")
	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("seeding config: %v", err)
	}

	if err := upsertServer(configPath, "sweep", serverEntry{Command: "/bin/sweep-mcp"}); err == nil {
		t.Fatal("expected error for malformed existing config")
	}
}
