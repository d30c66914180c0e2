// SPDX-License-Identifier: MIT

// Package ingest reads co-membership records for builder.Build.
//
// Two sources are supported:
//
//   - Pipe-delimited text: entities and groups as "id|name" lines,
//     memberships as "groupID|entityID" lines (ReadIDNames,
//     ReadMemberships, LoadFiles).
//   - SQLite: tables entities(id, name), groups(id, name) and
//     memberships(group_id, entity_id) (LoadSQLite, SaveSQLite).
//
// Malformed text lines are skipped and returned as LineErrors so one bad
// line never aborts a load. Id resolution is left to builder.Build.
package ingest
