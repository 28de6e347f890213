package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/reviewlab/reviewgraph/pkg/common"
)

// block separator and content-line prefix of the crawler's text dumps.
const (
	blockSeparator = "--------------------------------------------------"
	contentPrefix  = "内容:"
)

// TextLoader parses the crawler's delimited text dumps: blocks separated by
// a 50-dash line, each block holding key-value lines of which only the
// 内容: (content) line matters. Blocks without a content line are skipped.
type TextLoader struct{}

func (TextLoader) Load(r io.Reader) ([]common.Comment, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read text corpus: %w", err)
	}

	var comments []common.Comment
	skipped := 0
	for _, block := range strings.Split(string(raw), blockSeparator) {
		if strings.TrimSpace(block) == "" {
			continue
		}

		content := ""
		for _, line := range strings.Split(block, "\n") {
			line = strings.TrimSpace(line)
			if strings.HasPrefix(line, contentPrefix) {
				content = strings.TrimSpace(strings.TrimPrefix(line, contentPrefix))
			}
		}

		comment, err := newComment(content)
		if err != nil {
			skipped++
			continue
		}
		comments = append(comments, comment)
	}
	return comments, skipped, nil
}
