package prompt

import (
	"fmt"
	"strings"

	"github.com/gitdraft/gitdraft/internal/analyze"
)

// prPolicyNote reminds the assistant of enterprise PR hygiene expectations.
const prPolicyNote = "Follow enterprise GitHub usage policies (branch naming, commit formatting, verified email & signed commits). " +
	"Avoid secrets; do not include tokens, passwords, or private keys. " +
	"Reference linked issue/Jira; describe risks, security & compliance notes."

const prRules = `You are an experienced enterprise PR author.

Draft a Pull Request (PR) **title and description** for repository %q.
Honor these enterprise-aligned rules:
- **Title**: one line ≤ 72 chars. Prefer conventional type if clear (feat, fix, refactor, docs, test, build, chore, perf, security).
- **Body**: use the sections below; keep language concise and action-oriented.
- **Security/Compliance**: avoid secrets; include security impact and any policy references.
- **Standards**: follow branch naming & signed commits/verified email expectations; link the tracking work item (Issue/Jira).

`

const prFormat = `
Now produce ONLY this format:

Title: <concise title here>

## Summary
- <what and why in 1–3 bullets>

## Changes
- <bullet of concrete code changes or modules touched>
- <additional bullets...>

## Testing
- <test approach, coverage, environments>
- <how reviewers can validate locally>

## Risk & Rollback
- Risk level: <Low|Medium|High> and reasoning
- Rollback plan: <how to revert/feature-flag/backout>

## Security & Compliance
- Secrets/PII: <none|details of handling>
- Security impact: <dependency bumps, auth, scopes, permissions>
- Policy notes: <signed commits/verified email/branch naming/required checks>

## Links
- Issue/Jira: <#123 or URL>
- Related docs/runbooks: <URLs>

## Checklist
- [ ] Branch name follows team convention
- [ ] Commits are **signed** and email is **verified**
- [ ] CI passes; required checks green
- [ ] No secrets in code or PR text
- [ ] Reviewers/labels/milestone set

--- DIFF (secret-scrubbed, may be truncated) ---

`

// BuildPR renders the pull-request prompt around the safe diff body.
func BuildPR(repoName, sourceLabel string, a *analyze.Analysis, safeDiff string) string {
	var b strings.Builder
	fmt.Fprintf(&b, prRules, repoName)
	writeContext(&b, sourceLabel, a)
	fmt.Fprintf(&b, "- Note: %s\n", prPolicyNote)
	b.WriteString(prFormat)
	b.WriteString(safeDiff)
	b.WriteString("\n")
	return b.String()
}
