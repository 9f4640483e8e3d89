// Package catalog loads the static reference tables the analyzer depends
// on: the skill taxonomy, the skill synonym map, and the job role catalog.
// Tables are loaded once at initialization and never mutated afterwards,
// so a Catalog may be shared by any number of concurrent readers.
package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	intschemas "github.com/jonathan/resume-analyzer/internal/schemas"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/schemas"
)

// Default file names for the reference tables inside a data directory.
const (
	TaxonomyFile = "skills_taxonomy.json"
	SynonymsFile = "skill_synonyms.json"
	RolesFile    = "job_roles.json"
)

// Catalog holds the immutable reference tables.
type Catalog struct {
	// Skills is the flattened, deduplicated taxonomy.
	Skills []string
	// Synonyms maps canonical skill names to their synonyms.
	Synonyms map[string][]string
	// Roles is the job role requirement catalog. Malformed records are
	// dropped at load time.
	Roles []types.RoleRequirement
}

// Load reads all three reference tables from dir using the default file
// names. Any missing or malformed table is an error.
func Load(dir string) (*Catalog, error) {
	skills, err := LoadTaxonomy(filepath.Join(dir, TaxonomyFile))
	if err != nil {
		return nil, err
	}
	synonyms, err := LoadSynonyms(filepath.Join(dir, SynonymsFile))
	if err != nil {
		return nil, err
	}
	roles, err := LoadRoles(filepath.Join(dir, RolesFile))
	if err != nil {
		return nil, err
	}
	return &Catalog{Skills: skills, Synonyms: synonyms, Roles: roles}, nil
}

// LoadTaxonomy reads a nested category -> skill-list structure and returns
// the flattened, deduplicated skill list. Categories may nest arbitrarily;
// they are walked in sorted key order so the result is deterministic.
func LoadTaxonomy(path string) ([]string, error) {
	data, err := readTable(path, schemas.SkillsTaxonomy)
	if err != nil {
		return nil, err
	}

	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, &TableLoadError{Path: path, Message: "invalid taxonomy JSON", Cause: err}
	}

	var skills []string
	flattenSkills(tree, &skills)

	seen := make(map[string]struct{}, len(skills))
	unique := skills[:0]
	for _, skill := range skills {
		if _, dup := seen[skill]; dup {
			continue
		}
		seen[skill] = struct{}{}
		unique = append(unique, skill)
	}
	return unique, nil
}

// LoadSynonyms reads the canonical-name -> synonym-list map.
func LoadSynonyms(path string) (map[string][]string, error) {
	data, err := readTable(path, schemas.SkillSynonyms)
	if err != nil {
		return nil, err
	}

	var doc struct {
		SkillSynonyms map[string][]string `json:"skill_synonyms"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &TableLoadError{Path: path, Message: "invalid synonym JSON", Cause: err}
	}
	return doc.SkillSynonyms, nil
}

// LoadRoles reads the job role catalog. Individual records that fail to
// decode or validate (non-numeric or out-of-range levels, missing title)
// are skipped; only a missing or structurally broken file is an error.
func LoadRoles(path string) ([]types.RoleRequirement, error) {
	data, err := readTable(path, schemas.JobRoles)
	if err != nil {
		return nil, err
	}

	var doc struct {
		JobRoles []json.RawMessage `json:"job_roles"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &TableLoadError{Path: path, Message: "invalid role catalog JSON", Cause: err}
	}

	roles := make([]types.RoleRequirement, 0, len(doc.JobRoles))
	for _, raw := range doc.JobRoles {
		var role types.RoleRequirement
		if err := json.Unmarshal(raw, &role); err != nil {
			continue
		}
		if err := role.Validate(); err != nil {
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// readTable reads a table file and validates its raw bytes against the
// embedded JSON Schema before any decoding happens.
func readTable(path, schema string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &TableLoadError{Path: path, Message: "read failed", Cause: err}
	}
	if err := intschemas.ValidateJSONString(schema, string(data)); err != nil {
		return nil, &TableLoadError{Path: path, Message: "schema validation failed", Cause: err}
	}
	return data, nil
}

// flattenSkills walks the decoded taxonomy tree collecting every leaf
// skill string. Maps are walked in sorted key order.
func flattenSkills(node any, out *[]string) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				*out = append(*out, s)
			}
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenSkills(v[k], out)
		}
	}
}
