package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"safeguard/internal/models"
)

var (
	errResourcesMissing = errors.New(`missing "resources" object`)
	errNotObject        = errors.New("expected JSON object")
)

// readResources decodes {"resources": {category: [url...]}} keeping the
// category order of the file, which a Go map would lose.
func readResources(path string) ([]models.ResourceCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content file: %w", err)
	}
	raw, ok := doc["resources"]
	if !ok {
		return nil, errResourcesMissing
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode resources: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("decode resources: %w", errNotObject)
	}

	var categories []models.ResourceCategory
	index := make(map[string]int)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode resources: %w", err)
		}
		name, _ := tok.(string)

		var links []string
		if err := dec.Decode(&links); err != nil {
			return nil, fmt.Errorf("decode resources %q: %w", name, err)
		}

		// A repeated key replaces the earlier value but keeps its position.
		if i, dup := index[name]; dup {
			categories[i].Links = links
			continue
		}
		index[name] = len(categories)
		categories = append(categories, models.ResourceCategory{Name: name, Links: links})
	}

	return categories, nil
}
