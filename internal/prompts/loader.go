// Package prompts provides the advisor's canned dialogue lines and LLM
// prompt templates. Texts live in JSON files embedded at compile time, so
// phrasing changes never require touching pipeline code, and the stage
// machine never has to infer its position from assistant wording.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]map[string]string)
)

// Get retrieves a prompt by filename (e.g. "dialogue.json") and key.
// Returns an error if the file or key is not found.
func Get(filename, key string) (string, error) {
	texts, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	text, ok := texts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return text, nil
}

// MustGet retrieves a prompt, panicking if it is missing. Embedded files are
// fixed at build time, so a missing key is a programming error.
func MustGet(filename, key string) string {
	text, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return text
}

// Format substitutes {{.Key}} placeholders with values from data.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

// List returns all prompt keys available in a file.
func List(filename string) ([]string, error) {
	texts, err := loadFile(filename)
	if err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(texts))
	for key := range texts {
		keys = append(keys, key)
	}
	return keys, nil
}

// ClearCache drops parsed prompt files. Useful for testing.
func ClearCache() {
	cacheMu.Lock()
	cache = make(map[string]map[string]string)
	cacheMu.Unlock()
}

func loadFile(filename string) (map[string]string, error) {
	cacheMu.RLock()
	texts, ok := cache[filename]
	cacheMu.RUnlock()
	if ok {
		return texts, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &texts); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	cacheMu.Lock()
	cache[filename] = texts
	cacheMu.Unlock()

	return texts, nil
}
