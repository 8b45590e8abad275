package coupon

import (
	"bytes"
	"compress/gzip"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestLists creates three campaign list files and returns their paths.
func writeTestLists(t *testing.T) []string {
	t.Helper()

	tmpDir := t.TempDir()

	lists := map[string]string{
		"campaign1.txt": "VALIDABC\nTESTCODE\nCOUPON01\nAAAA1111\n",
		"campaign2.txt": "VALIDABC\nTESTCODE\nSPECIAL9\nBBBB2222\n",
		"campaign3.txt": "VALIDABC\nSPECIAL9\nCCCC3333\nONLYONE1\n",
	}

	paths := make([]string, 0, len(lists))
	for _, name := range []string{"campaign1.txt", "campaign2.txt", "campaign3.txt"} {
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(lists[name]), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
		paths = append(paths, path)
	}
	return paths
}

func loadedValidator(t *testing.T) *Validator {
	t.Helper()

	v := NewValidator()
	if err := v.Load(context.Background(), writeTestLists(t)); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return v
}

func TestValidator_Load(t *testing.T) {
	t.Run("loads multiple files", func(t *testing.T) {
		v := loadedValidator(t)

		stats := v.Stats()
		if stats["total_files"] != 3 {
			t.Errorf("total_files = %v, want 3", stats["total_files"])
		}
	})

	t.Run("no sources is an error", func(t *testing.T) {
		v := NewValidator()
		if err := v.Load(context.Background(), nil); err == nil {
			t.Error("Load() expected error for empty sources")
		}
	})

	t.Run("missing file is an error", func(t *testing.T) {
		v := NewValidator()
		if err := v.Load(context.Background(), []string{"/non/existent/list.txt"}); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("failed load keeps previous lists", func(t *testing.T) {
		v := loadedValidator(t)

		if err := v.Load(context.Background(), []string{"/non/existent/list.txt"}); err == nil {
			t.Fatal("Load() expected error")
		}
		if !v.IsValid(context.Background(), "VALIDABC") {
			t.Error("previous lists discarded after failed load")
		}
	})
}

func TestValidator_LoadGzip(t *testing.T) {
	tmpDir := t.TempDir()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte("GZCODE01\nGZCODE02\n")); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}

	path1 := filepath.Join(tmpDir, "list1.gz")
	path2 := filepath.Join(tmpDir, "list2.gz")
	for _, p := range []string{path1, path2} {
		if err := os.WriteFile(p, buf.Bytes(), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	v := NewValidator()
	if err := v.Load(context.Background(), []string{path1, path2}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !v.IsValid(context.Background(), "GZCODE01") {
		t.Error("IsValid(GZCODE01) = false, want true")
	}
}

func TestValidator_LoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("HTTPCODE1\nHTTPCODE2\n"))
	}))
	defer srv.Close()

	v := NewValidator()
	if err := v.Load(context.Background(), []string{srv.URL + "/a", srv.URL + "/b"}); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !v.IsValid(context.Background(), "HTTPCODE1") {
		t.Error("IsValid(HTTPCODE1) = false, want true")
	}
}

func TestValidator_IsValid(t *testing.T) {
	v := loadedValidator(t)

	tests := []struct {
		name string
		code string
		want bool
	}{
		{name: "in all three lists", code: "VALIDABC", want: true},
		{name: "in exactly two lists", code: "TESTCODE", want: true},
		{name: "in lists two and three", code: "SPECIAL9", want: true},
		{name: "in only one list", code: "COUPON01", want: false},
		{name: "in no list", code: "NOTEXIST", want: false},
		{name: "too short", code: "SHORT", want: false},
		{name: "too long", code: "TOOLONGCODE", want: false},
		{name: "lowercase input matches", code: "validabc", want: true},
		{name: "surrounding whitespace trimmed", code: "  VALIDABC  ", want: true},
		{name: "empty code", code: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsValid(context.Background(), tt.code); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestValidator_IsValid_BeforeLoad(t *testing.T) {
	v := NewValidator()

	if v.IsValid(context.Background(), "VALIDABC") {
		t.Error("IsValid() = true with no lists loaded")
	}
}

func TestValidator_IsValid_ConcurrentAccess(t *testing.T) {
	v := loadedValidator(t)

	var wg sync.WaitGroup
	codes := []string{"VALIDABC", "TESTCODE", "SPECIAL9", "NOTEXIST"}

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			code := codes[n%len(codes)]
			got := v.IsValid(context.Background(), code)
			want := code != "NOTEXIST"
			if got != want {
				t.Errorf("IsValid(%q) = %v, want %v", code, got, want)
			}
		}(i)
	}
	wg.Wait()
}

func TestValidator_Stats(t *testing.T) {
	v := NewValidator()

	stats := v.Stats()
	if stats["total_files"] != 0 {
		t.Errorf("total_files before load = %v, want 0", stats["total_files"])
	}

	v = loadedValidator(t)
	stats = v.Stats()

	if stats["total_files"] != 3 {
		t.Errorf("total_files = %v, want 3", stats["total_files"])
	}
	if stats["total_codes"] != 12 {
		t.Errorf("total_codes = %v, want 12", stats["total_codes"])
	}
	sources, ok := stats["sources"].([]string)
	if !ok || len(sources) != 3 {
		t.Errorf("sources = %v, want 3 paths", stats["sources"])
	}
}
