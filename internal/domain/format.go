package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Placeholders substituted when a remote entity omits a field.
const (
	placeholderUnknown       = "Unknown"
	placeholderNoSummary     = "No summary"
	placeholderNoDescription = "No description"
	placeholderNoTitle       = "No title"
	placeholderNoContent     = "No content"
	placeholderUnassigned    = "Unassigned"
	placeholderNoHomepage    = "No homepage"
)

// "No results" sentences for the two search kinds.
const (
	NoIssuesFound = "No issues found matching the search criteria."
	NoPagesFound  = "No Confluence pages found matching the search criteria."
)

// FormatIssue renders a Jira issue as a fixed-layout text report.
func FormatIssue(issue *Issue) string {
	f := issue.Fields
	key := orElse(issue.Key, placeholderUnknown)

	desc := placeholderNoDescription
	if f.Description != nil {
		if text := ExtractText(f.Description); text != "" {
			desc = text
		}
	}

	return fmt.Sprintf(`**Jira Issue: %s**

**Summary:** %s
**Status:** %s
**Type:** %s
**Priority:** %s
**Assignee:** %s
**Reporter:** %s
**Created:** %s
**Updated:** %s

**Description:**
%s

**Issue URL:** %s
`,
		key,
		orElse(f.Summary, placeholderNoSummary),
		fieldName(f.Status, placeholderUnknown),
		fieldName(f.IssueType, placeholderUnknown),
		fieldName(f.Priority, placeholderUnknown),
		displayName(f.Assignee, placeholderUnassigned),
		displayName(f.Reporter, placeholderUnknown),
		orElse(f.Created, placeholderUnknown),
		orElse(f.Updated, placeholderUnknown),
		desc,
		issueURL(issue.Self, key),
	)
}

// FormatProject renders a Jira project as a fixed-layout text report.
func FormatProject(project *Project) string {
	return fmt.Sprintf(`**Jira Project: %s**

**Name:** %s
**Description:** %s
**Project Type:** %s
**Lead:** %s
**URL:** %s
`,
		orElse(project.Key, placeholderUnknown),
		orElse(project.Name, placeholderUnknown),
		orElse(project.Description, placeholderNoDescription),
		orElse(project.ProjectTypeKey, placeholderUnknown),
		displayName(project.Lead, placeholderUnknown),
		orElse(project.Self, placeholderUnknown),
	)
}

// FormatPage renders a Confluence page, with its storage-format body cleaned
// up into readable text.
func FormatPage(page *Page) string {
	pageID := orElse(page.ID.String(), placeholderUnknown)
	spaceName, spaceKey := placeholderUnknown, placeholderUnknown
	if page.Space != nil {
		spaceName = orElse(page.Space.Name, placeholderUnknown)
		spaceKey = orElse(page.Space.Key, placeholderUnknown)
	}

	versionNumber := placeholderUnknown
	lastUpdated := placeholderUnknown
	updatedBy := placeholderUnknown
	if page.Version != nil {
		versionNumber = strconv.Itoa(page.Version.Number)
		lastUpdated = orElse(page.Version.When, placeholderUnknown)
		updatedBy = displayName(page.Version.By, placeholderUnknown)
	}

	content := placeholderNoContent
	if page.Body != nil && page.Body.Storage != nil {
		content = CleanStorageMarkup(page.Body.Storage.Value)
	}

	return fmt.Sprintf(`**Confluence Page: %s**

**Space:** %s (%s)
**Page ID:** %s
**Version:** %s
**Last Updated:** %s by %s

**Content:**
%s

**Page URL:** %s
`,
		orElse(page.Title, placeholderNoTitle),
		spaceName,
		spaceKey,
		pageID,
		versionNumber,
		lastUpdated,
		updatedBy,
		content,
		pageURL(page, spaceKey, pageID),
	)
}

// FormatSpace renders a Confluence space as a fixed-layout text report.
func FormatSpace(space *Space) string {
	desc := placeholderNoDescription
	if space.Description != nil && space.Description.Plain != nil {
		desc = orElse(space.Description.Plain.Value, placeholderNoDescription)
	}

	homepage := placeholderNoHomepage
	if space.Homepage != nil {
		homepage = orElse(space.Homepage.Title, placeholderNoHomepage)
	}

	webURL := placeholderUnknown
	if space.Links != nil {
		webURL = orElse(space.Links.WebUI, placeholderUnknown)
	}

	return fmt.Sprintf(`**Confluence Space: %s**

**Name:** %s
**Description:** %s
**Type:** %s
**Homepage:** %s
**URL:** %s
`,
		orElse(space.Key, placeholderUnknown),
		orElse(space.Name, placeholderUnknown),
		desc,
		orElse(space.Type, placeholderUnknown),
		homepage,
		webURL,
	)
}

// FormatIssueSearchResults renders a JQL search as a bulleted summary, one
// entry per issue, or the documented no-results sentence.
func FormatIssueSearchResults(results *SearchResults) string {
	if len(results.Issues) == 0 {
		return NoIssuesFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d of %d Jira issues:**\n\n", len(results.Issues), results.Total)
	for i := range results.Issues {
		issue := &results.Issues[i]
		fmt.Fprintf(&b, "• **%s**: %s\n",
			orElse(issue.Key, placeholderUnknown),
			orElse(issue.Fields.Summary, placeholderNoSummary))
		fmt.Fprintf(&b, "  Status: %s | Assignee: %s\n\n",
			fieldName(issue.Fields.Status, placeholderUnknown),
			displayName(issue.Fields.Assignee, placeholderUnassigned))
	}
	return b.String()
}

// FormatPageSearchResults renders a CQL search as a bulleted summary, one
// entry per page, or the documented no-results sentence.
func FormatPageSearchResults(results *PageSearchResults) string {
	if len(results.Results) == 0 {
		return NoPagesFound
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Found %d Confluence pages:**\n\n", len(results.Results))
	for i := range results.Results {
		page := &results.Results[i]
		spaceName, spaceKey := placeholderUnknown, placeholderUnknown
		if page.Space != nil {
			spaceName = orElse(page.Space.Name, placeholderUnknown)
			spaceKey = orElse(page.Space.Key, placeholderUnknown)
		}
		fmt.Fprintf(&b, "• **%s** (ID: %s)\n",
			orElse(page.Title, placeholderNoTitle),
			orElse(page.ID.String(), placeholderUnknown))
		fmt.Fprintf(&b, "  Space: %s (%s)\n\n", spaceName, spaceKey)
	}
	return b.String()
}

// issueURL synthesizes a browsable link from the issue's API self link by
// splitting on the REST path marker, falling back to a placeholder domain.
func issueURL(selfLink, key string) string {
	if selfLink != "" {
		base, _, _ := strings.Cut(selfLink, "/rest/")
		return base + "/browse/" + key
	}
	return "https://unknown.atlassian.net/browse/" + key
}

// pageURL builds the web link from the page's hypermedia links, falling back
// to a placeholder domain when they are absent.
func pageURL(page *Page, spaceKey, pageID string) string {
	if page.Links != nil && page.Links.Base != "" && page.Links.WebUI != "" {
		return page.Links.Base + page.Links.WebUI
	}
	return fmt.Sprintf("https://unknown.atlassian.net/wiki/spaces/%s/pages/%s", spaceKey, pageID)
}

func orElse(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func fieldName(f *NamedField, fallback string) string {
	if f == nil || f.Name == "" {
		return fallback
	}
	return f.Name
}

func displayName(u *User, fallback string) string {
	if u == nil || u.DisplayName == "" {
		return fallback
	}
	return u.DisplayName
}
