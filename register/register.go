// Package register implements the "register" subcommand that writes this
// binary into an MCP client configuration so the sweep server can be
// launched over stdio.
package register

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type serverEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Run executes "register <scope> [directory] [-- server flags...]".
// serverName is the entry key in the client config; args is everything
// after the "register" word.
func Run(serverName string, args []string) {
	configPath, serverArgs, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	binary, err := os.Executable()
	if err == nil {
		binary, err = filepath.EvalSymlinks(binary)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating binary: %v\n", err)
		os.Exit(1)
	}

	entry := serverEntry{Command: binary, Args: serverArgs}
	if err := upsertServer(configPath, serverName, entry); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Registered %q in %s\n", serverName, configPath)
}

func printUsage() {
	binaryName := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s register project [directory]   # → <directory>/.mcp.json (default: .)\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register user                  # → ~/.claude.json\n", binaryName)
	fmt.Fprintf(os.Stderr, "  %s register project . -- -root /x # forward flags to the server\n", binaryName)
}

// parseArgs resolves the scope to a config path and splits off the flags
// forwarded to the server after "--".
func parseArgs(args []string) (configPath string, serverArgs []string, err error) {
	if len(args) == 0 {
		return "", nil, fmt.Errorf("missing scope")
	}
	scope, rest := args[0], args[1:]

	for i, arg := range rest {
		if arg == "--" {
			serverArgs = rest[i+1:]
			rest = rest[:i]
			break
		}
	}

	switch scope {
	case "project":
		dir := "."
		if len(rest) > 0 {
			dir = rest[0]
		}
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return "", nil, fmt.Errorf("resolving directory %s: %w", dir, err)
		}
		return filepath.Join(absDir, ".mcp.json"), serverArgs, nil
	case "user":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", nil, fmt.Errorf("getting home directory: %w", err)
		}
		return filepath.Join(homeDir, ".claude.json"), serverArgs, nil
	default:
		return "", nil, fmt.Errorf("unknown scope %q (must be \"project\" or \"user\")", scope)
	}
}

// upsertServer adds or replaces one entry under "mcpServers" in the config
// file, preserving everything else in it. The file is shared with other
// tools, so the rewrite goes through a temp file and rename.
func upsertServer(configPath, serverName string, entry serverEntry) error {
	config := map[string]interface{}{}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"].(map[string]interface{})
	if !ok {
		if _, exists := config["mcpServers"]; exists {
			return fmt.Errorf("mcpServers in %s is not an object", configPath)
		}
		servers = map[string]interface{}{}
		config["mcpServers"] = servers
	}
	servers[serverName] = entry

	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	output = append(output, '\n')

	tmpPath := configPath + ".tmp"
	if err := os.WriteFile(tmpPath, output, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, configPath, err)
	}
	return nil
}
