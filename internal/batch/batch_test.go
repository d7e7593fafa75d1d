package batch

import (
	"os"
	"path/filepath"
	"testing"
)

func writeList(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadListSkipsBlankAndComments(t *testing.T) {
	path := writeList(t, "# comment\n\na.wav a.f0\nb.wav b.f0\n")

	jobs, err := LoadList(path)
	if err != nil {
		t.Fatalf("LoadList: %v", err)
	}
	want := []Job{{Input: "a.wav", Output: "a.f0"}, {Input: "b.wav", Output: "b.f0"}}
	if len(jobs) != len(want) {
		t.Fatalf("got %d jobs, want %d", len(jobs), len(want))
	}
	for i := range want {
		if jobs[i] != want[i] {
			t.Errorf("jobs[%d] = %+v, want %+v", i, jobs[i], want[i])
		}
	}
}

func TestLoadListRejectsMalformedLine(t *testing.T) {
	path := writeList(t, "onlyonefield\n")
	if _, err := LoadList(path); err == nil {
		t.Fatal("expected error for malformed line")
	}
}
