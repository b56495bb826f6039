package provider

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"shuttle/internal/domain"
)

// File reads one launchable URL per line from a local file. Blank
// lines are skipped; any other unparsable line fails the whole batch.
type File struct {
	path string
}

// NewFile creates a provider reading from path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Title implements Provider.
func (f *File) Title() string {
	return fmt.Sprintf("File (%s)", f.path)
}

// Load implements Provider.
func (f *File) Load(ctx context.Context) ([]domain.Item, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Title(), err)
	}
	defer file.Close()

	var items []domain.Item
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		item, err := domain.ParseItem(line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.Title(), err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", f.Title(), err)
	}

	return items, nil
}
