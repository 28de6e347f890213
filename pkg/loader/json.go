package loader

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// JSONLoader parses a JSON array of comment objects. Fields other than
// "content" are ignored; records with a missing or blank content are
// skipped.
type JSONLoader struct{}

func (JSONLoader) Load(r io.Reader) ([]common.Comment, int, error) {
	var records []struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, 0, fmt.Errorf("failed to parse JSON corpus: %w", err)
	}

	var comments []common.Comment
	skipped := 0
	for _, record := range records {
		comment, err := newComment(record.Content)
		if err != nil {
			skipped++
			continue
		}
		comments = append(comments, comment)
	}
	return comments, skipped, nil
}
