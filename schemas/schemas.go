// Package schemas embeds the JSON Schemas for the analyzer's reference
// tables so loaders can validate table files without filesystem lookups.
package schemas

import _ "embed"

// SkillsTaxonomy is the schema for the nested category -> skill-list table.
//
//go:embed skills_taxonomy.schema.json
var SkillsTaxonomy string

// SkillSynonyms is the schema for the canonical-name -> synonyms table.
//
//go:embed skill_synonyms.schema.json
var SkillSynonyms string

// JobRoles is the schema for the job role requirement catalog.
//
//go:embed job_roles.schema.json
var JobRoles string
