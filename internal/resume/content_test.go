package resume

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadContentDefaultsWhenNoPath(t *testing.T) {
	res, err := LoadContent("")
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}
	if res.Name == "" {
		t.Error("default content has no name")
	}
	if len(res.Experience) == 0 {
		t.Error("default content has no experience entries")
	}
}

func TestLoadContentFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.yaml")
	doc := `
name: Jane Doe
contact:
  email: jane@example.com
  phone: "+31 6 12345678"
  links:
    - name: GitHub
      url: https://github.com/janedoe
summary: Engineer.
experience:
  - company: Acme
    period: 2020 - 2024
    details:
      - Built things.
      - Shipped things.
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent returned error: %v", err)
	}
	if res.Name != "Jane Doe" {
		t.Errorf("name = %q", res.Name)
	}
	if got := res.ExperienceText(); got != "Built things. Shipped things." {
		t.Errorf("ExperienceText = %q", got)
	}
}

func TestLoadContentErrors(t *testing.T) {
	if _, err := LoadContent(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "noname.yaml")
	if err := os.WriteFile(path, []byte("summary: no name here\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadContent(path); err == nil {
		t.Error("expected error for content without a name")
	}
}
