// Package docsmcp serves documentation from a single website to calling
// agents. It discovers pages through the site's sitemap, sorts them into
// topical categories, resolves free-text queries against them, and turns
// fetched HTML into readable text and code snippets.
//
// This package contains domain types, the pure extraction helpers, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, goquery/, lru/, mcp/).
package docsmcp
