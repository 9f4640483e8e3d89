package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTable(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTaxonomy_FlattensInSortedKeyOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, TaxonomyFile, `{
		"b_cat": ["Zeta", "Alpha"],
		"a_cat": {"inner": ["Mid"]},
		"c_cat": ["Alpha"]
	}`)

	skills, err := LoadTaxonomy(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Mid", "Zeta", "Alpha"}, skills)
}

func TestLoadTaxonomy_MissingFile(t *testing.T) {
	_, err := LoadTaxonomy(filepath.Join(t.TempDir(), TaxonomyFile))

	require.Error(t, err)
	var loadErr *TableLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "read failed", loadErr.Message)
}

func TestLoadTaxonomy_RejectsNonObjectRoot(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, TaxonomyFile, `["Python", "Go"]`)

	_, err := LoadTaxonomy(path)

	require.Error(t, err)
	var loadErr *TableLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "schema validation failed", loadErr.Message)
}

func TestLoadSynonyms(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, SynonymsFile, `{
		"skill_synonyms": {
			"Python": ["python3", "py"],
			"Go": ["golang"]
		}
	}`)

	synonyms, err := LoadSynonyms(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"python3", "py"}, synonyms["Python"])
	assert.Equal(t, []string{"golang"}, synonyms["Go"])
}

func TestLoadSynonyms_RejectsMissingTopLevelKey(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, SynonymsFile, `{"synonyms": {}}`)

	_, err := LoadSynonyms(path)

	require.Error(t, err)
	var loadErr *TableLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "schema validation failed", loadErr.Message)
}

func TestLoadRoles_SkipsMalformedRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeTable(t, dir, RolesFile, `{
		"job_roles": [
			{"title": "Data Engineer", "category": "Data", "required_skills": {"Python": 4, "SQL": 5}},
			{"title": "Bad Levels", "required_skills": {"Python": "four"}},
			{"required_skills": {"Go": 3}},
			{"title": "Out of Range", "required_skills": {"Go": 9}}
		]
	}`)

	roles, err := LoadRoles(path)

	require.NoError(t, err)
	require.Len(t, roles, 1)
	assert.Equal(t, "Data Engineer", roles[0].Title)
	assert.Equal(t, map[string]int{"Python": 4, "SQL": 5}, roles[0].RequiredSkills)
}

func TestLoad_AllTables(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, TaxonomyFile, `{"languages": ["Python", "Go"]}`)
	writeTable(t, dir, SynonymsFile, `{"skill_synonyms": {"Go": ["golang"]}}`)
	writeTable(t, dir, RolesFile, `{"job_roles": [{"title": "Backend Developer", "required_skills": {"Go": 3}}]}`)

	cat, err := Load(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Go"}, cat.Skills)
	assert.Equal(t, []string{"golang"}, cat.Synonyms["Go"])
	require.Len(t, cat.Roles, 1)
	assert.Equal(t, "Backend Developer", cat.Roles[0].Title)
}

func TestLoad_FailsWhenAnyTableMissing(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, TaxonomyFile, `{"languages": ["Python"]}`)

	_, err := Load(dir)

	require.Error(t, err)
}
