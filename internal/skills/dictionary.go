// Package skills provides the canonical skill dictionary and alias-based
// skill matching used by every scorer.
package skills

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

//go:embed skills.json
var defaultDictionaryJSON []byte

// dictionarySchemaPath locates the JSON Schema for skill dictionary files,
// relative to the repo root.
const dictionarySchemaPath = "schemas/skill_dictionary.schema.json"

// Dictionary maps canonical skill names (lowercase) to their alias strings.
// It is immutable once built and safe for concurrent use; the alias index is
// precomputed at construction time.
type Dictionary struct {
	entries map[string][]string
	index   []aliasEntry
}

// aliasEntry is one tokenized alias (or canonical name) in the match index.
type aliasEntry struct {
	tokens    []string
	canonical string
}

// New builds a Dictionary from a canonical -> aliases mapping. Names and
// aliases are lowercased; empty canonical names are rejected.
func New(entries map[string][]string) (*Dictionary, error) {
	if len(entries) == 0 {
		return nil, &LoadError{Message: "dictionary has no entries"}
	}

	normalized := make(map[string][]string, len(entries))
	for canonical, aliases := range entries {
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if canonical == "" {
			return nil, &LoadError{Message: "dictionary contains an empty canonical name"}
		}
		lowered := make([]string, 0, len(aliases))
		for _, alias := range aliases {
			alias = strings.ToLower(strings.TrimSpace(alias))
			if alias != "" {
				lowered = append(lowered, alias)
			}
		}
		normalized[canonical] = lowered
	}

	d := &Dictionary{entries: normalized}
	d.buildIndex()
	return d, nil
}

// Default returns a Dictionary built from the embedded skill list.
func Default() (*Dictionary, error) {
	return parseDictionary(defaultDictionaryJSON)
}

// Load reads a skill dictionary from a JSON file, validating it against the
// dictionary schema when the schema file is resolvable.
func Load(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read dictionary file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(dictionarySchemaPath); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return nil, &LoadError{Path: path, Message: "dictionary failed schema validation", Cause: err}
		}
	}

	dict, err := parseDictionary(data)
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Path = path
		}
		return nil, err
	}
	return dict, nil
}

func parseDictionary(data []byte) (*Dictionary, error) {
	var entries map[string][]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, &LoadError{Message: "failed to parse dictionary JSON", Cause: err}
	}
	return New(entries)
}

// buildIndex tokenizes every canonical name and alias and sorts the result
// longest sequence first, so multi-word phrases match before their fragments
// ("machine learning" before "learning", "node.js" before "node").
func (d *Dictionary) buildIndex() {
	index := make([]aliasEntry, 0, len(d.entries)*2)
	for canonical, aliases := range d.entries {
		names := append([]string{canonical}, aliases...)
		for _, name := range names {
			tokens := Tokenize(name)
			if len(tokens) == 0 {
				continue
			}
			index = append(index, aliasEntry{tokens: tokens, canonical: canonical})
		}
	}

	sort.Slice(index, func(i, j int) bool {
		if len(index[i].tokens) != len(index[j].tokens) {
			return len(index[i].tokens) > len(index[j].tokens)
		}
		li, lj := joinedLen(index[i].tokens), joinedLen(index[j].tokens)
		if li != lj {
			return li > lj
		}
		if index[i].canonical != index[j].canonical {
			return index[i].canonical < index[j].canonical
		}
		return strings.Join(index[i].tokens, " ") < strings.Join(index[j].tokens, " ")
	})

	d.index = index
}

func joinedLen(tokens []string) int {
	n := 0
	for _, t := range tokens {
		n += len(t)
	}
	return n
}

// Canonicals returns all canonical skill names in alphabetical order.
func (d *Dictionary) Canonicals() []string {
	names := make([]string, 0, len(d.entries))
	for name := range d.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Aliases returns the alias list for a canonical skill name.
func (d *Dictionary) Aliases(canonical string) []string {
	return d.entries[strings.ToLower(canonical)]
}

// Len returns the number of canonical skills.
func (d *Dictionary) Len() int {
	return len(d.entries)
}

// LoadError represents a failure to load or parse a skill dictionary.
type LoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", e.Path, msg)
	}
	if e.Cause != nil {
		return fmt.Sprintf("skill dictionary: %s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("skill dictionary: %s", msg)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}
