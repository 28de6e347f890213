package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

func TestNewComment(t *testing.T) {
	comment, err := newComment("  剧情很感人 ")
	if err != nil {
		t.Fatalf("newComment() error = %v", err)
	}
	if comment.Content != "剧情很感人" {
		t.Errorf("content = %q, want trimmed", comment.Content)
	}

	for _, blank := range []string{"", "   ", "\n\t"} {
		if _, err := newComment(blank); !errors.Is(err, ErrMissingContent) {
			t.Errorf("newComment(%q) error = %v, want ErrMissingContent", blank, err)
		}
	}
}

func TestJSONLoader(t *testing.T) {
	input := `[
		{"author": "甲", "content": "剧情很感人"},
		{"author": "乙", "content": "   "},
		{"author": "丙", "content": "演技在线"},
		{"author": "丁"}
	]`

	comments, skipped, err := JSONLoader{}.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []common.Comment{{Content: "剧情很感人"}, {Content: "演技在线"}}
	if len(comments) != len(want) {
		t.Fatalf("Load() = %v, want %v", comments, want)
	}
	for i := range want {
		if comments[i] != want[i] {
			t.Errorf("comment %d = %v, want %v", i, comments[i], want[i])
		}
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestJSONLoaderMalformed(t *testing.T) {
	_, _, err := JSONLoader{}.Load(strings.NewReader(`{"content": "not an array"`))
	if err == nil {
		t.Fatal("Load() must fail on malformed JSON")
	}
}

func TestTextLoader(t *testing.T) {
	sep := strings.Repeat("-", 50)
	input := strings.Join([]string{
		"用户: 甲",
		"评分: 5",
		"内容: 剧情很感人",
		sep,
		"用户: 乙",
		"评分: 1",
		sep,
		"用户: 丙",
		"内容:演技在线",
		sep,
	}, "\n")

	comments, skipped, err := TextLoader{}.Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("got %d comments, want 2: %v", len(comments), comments)
	}
	if comments[0].Content != "剧情很感人" || comments[1].Content != "演技在线" {
		t.Errorf("comments = %v", comments)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestTextLoaderEmpty(t *testing.T) {
	comments, skipped, err := TextLoader{}.Load(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(comments) != 0 || skipped != 0 {
		t.Errorf("Load() = %v (%d skipped), want nothing", comments, skipped)
	}
}

func TestForFormat(t *testing.T) {
	tests := []struct {
		format  Format
		wantErr bool
	}{
		{FormatJSON, false},
		{FormatText, false},
		{Format("csv"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			l, err := ForFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ForFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if !tt.wantErr && l == nil {
				t.Error("ForFormat() returned nil loader")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.json")
	if err := os.WriteFile(path, []byte(`[{"content": "剧情很感人"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	comments, skipped, err := LoadFile(path, JSONLoader{})
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if len(comments) != 1 || skipped != 0 {
		t.Errorf("LoadFile() = %v (%d skipped)", comments, skipped)
	}

	if _, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.json"), JSONLoader{}); err == nil {
		t.Error("LoadFile() must fail on a missing file")
	}
}
