package export

import (
	"fmt"
	"os"
	"strings"

	"gridsplit/internal/format"
	"gridsplit/internal/model"
)

// WriteTXT writes layouts to a text file using formatted output.
func WriteTXT(path string, layouts []model.Layout) error {
	var b strings.Builder
	for i := range layouts {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(format.FormatLayout(&layouts[i]))
	}
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write txt file: %w", err)
	}
	return nil
}
