package graph

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// ClassifierConfig carries the rule tables for entity classification.
// The tables are plain data so that tests and multi-corpus deployments can
// run differently configured classifiers side by side.
//
// POS tag sets follow the jieba conventions of the upstream linguistic
// service: nr/nrf for person names, ns/nt for places and organizations,
// n/ng/nz for common nouns, a/ad for adjectives, v/vn for verbs.
type ClassifierConfig struct {
	// Keywords maps an entity type to the keywords that assign a common
	// noun to that type via substring containment. KeywordOrder fixes the
	// precedence between the lists.
	Keywords     map[common.EntityType][]string
	KeywordOrder []common.EntityType

	// Stoplist holds generic nouns that are never entities.
	Stoplist []string

	MinTokenLen int
	MaxTokenLen int

	PersonTags    []string
	PlaceTags     []string
	NounTags      []string
	AdjectiveTags []string
	VerbTags      []string
}

// DefaultClassifierConfig returns the rule tables tuned for Chinese
// film and book review corpora.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Keywords: map[common.EntityType][]string{
			common.EntityPerson:  {"导演", "演员", "主演", "编剧", "制片人", "配音", "作者", "作家"},
			common.EntityMovie:   {"电影", "影片", "片子", "剧", "纪录片", "动画", "电视剧"},
			common.EntityBook:    {"小说", "书", "作品", "图书", "文学", "散文", "诗歌"},
			common.EntityGenre:   {"喜剧", "悲剧", "动作", "科幻", "爱情", "恐怖", "悬疑", "推理", "历史", "传记"},
			common.EntityEmotion: {"感动", "震撼", "温暖", "感人", "搞笑", "紧张", "刺激", "浪漫", "忧伤"},
			common.EntityQuality: {"经典", "优秀", "出色", "完美", "精彩", "深刻", "有趣", "无聊", "糟糕"},
			common.EntityElement: {"剧情", "情节", "演技", "特效", "音乐", "配乐", "摄影", "台词", "节奏", "结局"},
		},
		KeywordOrder: []common.EntityType{
			common.EntityPerson,
			common.EntityMovie,
			common.EntityBook,
			common.EntityGenre,
			common.EntityEmotion,
			common.EntityQuality,
			common.EntityElement,
		},
		Stoplist:      []string{"电影", "影片", "片子", "小说", "书", "作品"},
		MinTokenLen:   2,
		MaxTokenLen:   8,
		PersonTags:    []string{"nr", "nrf"},
		PlaceTags:     []string{"ns", "nt"},
		NounTags:      []string{"n", "ng", "nz"},
		AdjectiveTags: []string{"a", "ad"},
		VerbTags:      []string{"v", "vn"},
	}
}

// Classifier maps a (token, POS tag) pair to an entity type. It holds no
// mutable state and is safe for concurrent use.
type Classifier struct {
	cfg     ClassifierConfig
	stopset map[string]struct{}
	person  map[string]struct{}
	place   map[string]struct{}
	noun    map[string]struct{}
	adj     map[string]struct{}
	verb    map[string]struct{}
}

// NewClassifier builds a Classifier from the given rule tables.
func NewClassifier(cfg ClassifierConfig) *Classifier {
	return &Classifier{
		cfg:     cfg,
		stopset: toSet(cfg.Stoplist),
		person:  toSet(cfg.PersonTags),
		place:   toSet(cfg.PlaceTags),
		noun:    toSet(cfg.NounTags),
		adj:     toSet(cfg.AdjectiveTags),
		verb:    toSet(cfg.VerbTags),
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Accepts reports whether a token passes the global filters: length within
// [MinTokenLen, MaxTokenLen] runes, not purely numeric, not stoplisted.
func (c *Classifier) Accepts(token string) bool {
	n := utf8.RuneCountInString(token)
	if n < c.cfg.MinTokenLen || n > c.cfg.MaxTokenLen {
		return false
	}
	if isNumeric(token) {
		return false
	}
	if _, stopped := c.stopset[token]; stopped {
		return false
	}
	return true
}

// Classify returns the entity type for a token and its POS tag. The second
// return value is false when the token is not an entity. The token is
// expected to have passed Accepts already; Classify applies the type rules
// only.
func (c *Classifier) Classify(token, posTag string) (common.EntityType, bool) {
	switch {
	case contains(c.person, posTag):
		return common.EntityPerson, true
	case contains(c.place, posTag):
		return common.EntityPlace, true
	case contains(c.noun, posTag):
		for _, entityType := range c.cfg.KeywordOrder {
			for _, keyword := range c.cfg.Keywords[entityType] {
				if strings.Contains(token, keyword) {
					return entityType, true
				}
			}
		}
		if utf8.RuneCountInString(token) >= 2 && !isNumeric(token) {
			return common.EntityConcept, true
		}
		return "", false
	case contains(c.adj, posTag):
		return common.EntityAttribute, true
	case contains(c.verb, posTag):
		return common.EntityAction, true
	}
	return "", false
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func isNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
