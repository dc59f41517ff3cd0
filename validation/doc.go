// SPDX-FileCopyrightText: Copyright 2026 Logsieve Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package validation provides the tri-state result type returned by
configuration checks: ok, warning, or error, each with an optional
human-readable message.

Checks that cannot reject input outright but also cannot confirm it use the
warning kind. The canonical example is expression validation while expression
execution is administratively disabled: the definition is not wrong, it just
cannot be verified.

# Aggregation

Several checks combine into one composite result where any error dominates,
else any warning dominates, else the aggregate is ok:

	result := validation.Aggregate(
		validation.Warningf("example is longer than %d characters and was truncated", 4096),
		exampleResult,
	)

Aggregation preserves every constituent message, so a dominating warning still
carries the primary result's text.
*/
package validation
