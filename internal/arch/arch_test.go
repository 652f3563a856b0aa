// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func listPackages(t *testing.T, dir string) []pkg {
	t.Helper()
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = dir
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list in %s: %v", dir, err)
	}
	var pkgs []pkg
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs
}

func TestImportBoundaries(t *testing.T) {
	surface := []string{"platemap/internal/app", "platemap/internal/server", "platemap/cmd/"}

	bans := map[string][]string{
		"platemap/internal/session":   {"platemap/internal/app", "platemap/internal/server", "platemap/internal/cli", "platemap/cmd/"},
		"platemap/internal/writers":   append([]string{"platemap/internal/session"}, surface...),
		"platemap/internal/output":    append([]string{"platemap/internal/session", "platemap/internal/writers"}, surface...),
		"platemap/internal/pretty":    append([]string{"platemap/internal/session"}, surface...),
		"platemap/internal/indexfile": append([]string{"platemap/internal/session", "platemap/internal/writers"}, surface...),
		"platemap/internal/config":    surface,
		"platemap/internal/cli":       surface,
		"platemap/pkg/api":            {"platemap/internal/"},
	}

	var violations []string
	for _, p := range listPackages(t, "../..") {
		if !strings.HasPrefix(p.ImportPath, "platemap/") {
			continue
		}
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(p.ImportPath, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, p.ImportPath+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// The core module stays pure: standard library and its own packages only.
func TestCoreIsSelfContained(t *testing.T) {
	var violations []string
	for _, p := range listPackages(t, "../../core") {
		for _, dep := range p.Imports {
			if strings.HasPrefix(dep, "platemap-core/") || !strings.Contains(strings.SplitN(dep, "/", 2)[0], ".") {
				if strings.HasPrefix(dep, "platemap/") {
					violations = append(violations, p.ImportPath+" → "+dep)
				}
				continue
			}
			violations = append(violations, p.ImportPath+" → "+dep)
		}
	}
	if len(violations) > 0 {
		t.Fatalf("core imports outside the standard library:\n  %s", strings.Join(violations, "\n  "))
	}
}
