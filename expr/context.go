// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

package expr

// MatchContext carries one regex match through expression evaluation. It is
// ephemeral: the scan driver builds one per match and discards it afterwards.
type MatchContext struct {
	// Groups holds the captured groups; Groups[0] is the whole match.
	// Groups that did not participate in the match are empty strings.
	Groups []string

	// Named maps named capture groups to their captured text.
	Named map[string]string

	// Index is the 0-based count of matches seen so far in the current scan.
	Index int
}

// activation builds the variable bindings for one evaluation. Nil slices and
// maps are replaced with empty ones so expressions can index safely.
func (mc MatchContext) activation() map[string]any {
	groups := mc.Groups
	if groups == nil {
		groups = []string{}
	}
	named := mc.Named
	if named == nil {
		named = map[string]string{}
	}
	return map[string]any{
		"groups": groups,
		"named":  named,
		"index":  mc.Index,
	}
}
