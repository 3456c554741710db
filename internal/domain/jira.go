package domain

import (
	"encoding/json"
	"fmt"
)

// FlexibleID is a type that can unmarshal both string and numeric IDs from JSON.
type FlexibleID string

// UnmarshalJSON implements custom unmarshaling to handle both string and numeric IDs.
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	// Try to unmarshal as string first
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}

	// Try to unmarshal as number
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexibleID(n.String())
		return nil
	}

	return fmt.Errorf("id must be a string or number")
}

// String returns the string representation of the ID.
func (f FlexibleID) String() string {
	return string(f)
}

// Issue represents a Jira issue as returned by the Cloud REST API v3.
// Every nested field may be absent; formatters substitute placeholders.
type Issue struct {
	ID     FlexibleID  `json:"id"`
	Key    string      `json:"key"`
	Self   string      `json:"self"`
	Fields IssueFields `json:"fields"`
}

// IssueFields contains the field data for a Jira issue.
type IssueFields struct {
	Summary     string      `json:"summary"`
	Description *ADFNode    `json:"description"`
	Status      *NamedField `json:"status"`
	IssueType   *NamedField `json:"issuetype"`
	Priority    *NamedField `json:"priority"`
	Assignee    *User       `json:"assignee"`
	Reporter    *User       `json:"reporter"`
	Created     string      `json:"created"`
	Updated     string      `json:"updated"`
}

// NamedField is any Jira field that only contributes its display name
// (status, issue type, priority).
type NamedField struct {
	ID   FlexibleID `json:"id"`
	Name string     `json:"name"`
}

// User represents a Jira or Confluence user.
type User struct {
	AccountID   string `json:"accountId"`
	DisplayName string `json:"displayName"`
}

// Project represents a Jira project.
type Project struct {
	ID             FlexibleID `json:"id"`
	Key            string     `json:"key"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ProjectTypeKey string     `json:"projectTypeKey"`
	Lead           *User      `json:"lead"`
	Self           string     `json:"self"`
}

// SearchResults represents the results of a JQL search.
type SearchResults struct {
	Issues     []Issue `json:"issues"`
	Total      int     `json:"total"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
}
