package common

// Comment is a single review comment record. The engine only looks at the
// content text; everything else the crawler collects (rating, votes, user)
// is dropped before the corpus reaches this package.
type Comment struct {
	Content string `json:"content"`
}

// EntityType classifies an extracted entity. The set is closed; the
// classifier never invents new types.
type EntityType string

const (
	EntityPerson    EntityType = "person"
	EntityPlace     EntityType = "place"
	EntityMovie     EntityType = "movie"
	EntityBook      EntityType = "book"
	EntityGenre     EntityType = "genre"
	EntityEmotion   EntityType = "emotion"
	EntityQuality   EntityType = "quality"
	EntityElement   EntityType = "element"
	EntityConcept   EntityType = "concept"
	EntityAttribute EntityType = "attribute"
	EntityAction    EntityType = "action"
)

// Entity is a classified term extracted from the corpus. Entities are keyed
// by their surface text in the entity table, so the key is not repeated here.
//
// Contexts holds up to five snippets of the surrounding comment text, in
// discovery order. They are samples for display, not a complete record of
// occurrences.
type Entity struct {
	Type      EntityType `json:"type"`
	Frequency int        `json:"frequency"`
	Contexts  []string   `json:"contexts"`
}

// Pair is an unordered pair of entity keys in canonical form: A is always
// the lexicographically smaller key. Use NewPair to construct one so that
// (x, y) and (y, x) compare equal as map keys.
type Pair struct {
	A string
	B string
}

// NewPair returns the canonical pair for two entity keys.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Key renders the pair in the "A-B" form used by the persisted relation
// schema.
func (p Pair) Key() string {
	return p.A + "-" + p.B
}

// GraphStats is the summary block of the persisted schema.
type GraphStats struct {
	TotalEntities  int                `json:"total_entities"`
	TotalRelations int                `json:"total_relations"`
	GraphNodes     int                `json:"graph_nodes"`
	GraphEdges     int                `json:"graph_edges"`
	GraphDensity   float64            `json:"graph_density"`
	EntityTypes    map[EntityType]int `json:"entity_types"`
}
