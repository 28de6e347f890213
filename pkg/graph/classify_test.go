package graph

import (
	"testing"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

func TestClassify(t *testing.T) {
	classifier := NewClassifier(DefaultClassifierConfig())

	tests := []struct {
		name   string
		token  string
		posTag string
		want   common.EntityType
		wantOK bool
	}{
		{
			name:   "person name tag",
			token:  "张艺谋",
			posTag: "nr",
			want:   common.EntityPerson,
			wantOK: true,
		},
		{
			name:   "place tag",
			token:  "北京",
			posTag: "ns",
			want:   common.EntityPlace,
			wantOK: true,
		},
		{
			name:   "organization tag maps to place",
			token:  "华纳",
			posTag: "nt",
			want:   common.EntityPlace,
			wantOK: true,
		},
		{
			// 剧情 contains the movie keyword 剧, and the movie list is
			// checked before the element list.
			name:   "movie keyword wins over element keyword",
			token:  "剧情",
			posTag: "n",
			want:   common.EntityMovie,
			wantOK: true,
		},
		{
			name:   "noun with element keyword",
			token:  "演技",
			posTag: "n",
			want:   common.EntityElement,
			wantOK: true,
		},
		{
			name:   "noun with emotion keyword",
			token:  "感动",
			posTag: "n",
			want:   common.EntityEmotion,
			wantOK: true,
		},
		{
			name:   "keyword matched by containment",
			token:  "好剧情",
			posTag: "n",
			want:   common.EntityMovie,
			wantOK: true,
		},
		{
			name:   "person keyword wins over movie keyword",
			token:  "导演剧",
			posTag: "n",
			want:   common.EntityPerson,
			wantOK: true,
		},
		{
			name:   "plain noun falls back to concept",
			token:  "人生",
			posTag: "n",
			want:   common.EntityConcept,
			wantOK: true,
		},
		{
			name:   "adjective",
			token:  "好看",
			posTag: "a",
			want:   common.EntityAttribute,
			wantOK: true,
		},
		{
			name:   "nominalized verb",
			token:  "救赎",
			posTag: "vn",
			want:   common.EntityAction,
			wantOK: true,
		},
		{
			name:   "person tag beats noun keywords",
			token:  "剧情",
			posTag: "nr",
			want:   common.EntityPerson,
			wantOK: true,
		},
		{
			name:   "unknown tag is not an entity",
			token:  "非常",
			posTag: "d",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.Classify(tt.token, tt.posTag)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q, %q) ok = %v, want %v", tt.token, tt.posTag, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.token, tt.posTag, got, tt.want)
			}
		})
	}
}

func TestAccepts(t *testing.T) {
	classifier := NewClassifier(DefaultClassifierConfig())

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "two-rune token", token: "剧情", want: true},
		{name: "single rune too short", token: "好", want: false},
		{name: "nine runes too long", token: "一二三四五六七八九", want: false},
		{name: "eight runes at the limit", token: "一二三四五六七八", want: true},
		{name: "purely numeric", token: "2024", want: false},
		{name: "mixed alphanumeric passes", token: "3D效果", want: true},
		{name: "stoplisted generic noun", token: "电影", want: false},
		{name: "empty token", token: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Accepts(tt.token); got != tt.want {
				t.Errorf("Accepts(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassifierConfigIsolation(t *testing.T) {
	cfg := DefaultClassifierConfig()
	cfg.Stoplist = []string{"人生"}
	custom := NewClassifier(cfg)
	standard := NewClassifier(DefaultClassifierConfig())

	if custom.Accepts("人生") {
		t.Error("custom classifier should reject its stoplisted token")
	}
	if !standard.Accepts("人生") {
		t.Error("default classifier should not share the custom stoplist")
	}
}
