package registrymock

// RepositoryInfo describes the source repository of a registry entry.
type RepositoryInfo struct {
	URL    string `json:"url"`
	Source string `json:"source"`
	ID     string `json:"id"`
}

// VersionDetail describes the latest release of a registry entry.
type VersionDetail struct {
	Version     string `json:"version"`
	ReleaseDate string `json:"release_date"`
	IsLatest    bool   `json:"is_latest"`
}

// PackageArgument describes one argument of an installable package.
type PackageArgument struct {
	Description string `json:"description"`
	IsRequired  bool   `json:"is_required"`
	Format      string `json:"format"`
	Value       string `json:"value"`
	Default     string `json:"default"`
	Type        string `json:"type"`
	ValueHint   string `json:"value_hint"`
}

// Package describes how to install a registry entry.
type Package struct {
	RegistryName     string            `json:"registry_name"`
	Name             string            `json:"name"`
	Version          string            `json:"version"`
	PackageArguments []PackageArgument `json:"package_arguments"`
}

// ServerEntry is one MCP server listed by the fake registry.
type ServerEntry struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	URL           string          `json:"url,omitempty"`
	Description   string          `json:"description"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
	Repository    *RepositoryInfo `json:"repository,omitempty"`
	VersionDetail *VersionDetail  `json:"version_detail,omitempty"`
	Packages      []Package       `json:"packages,omitempty"`
}

// ServersResponse is the paginated list response.
type ServersResponse struct {
	Servers  []ServerEntry `json:"servers"`
	Metadata ListMetadata  `json:"metadata"`
}

// ListMetadata carries the pagination cursor.
type ListMetadata struct {
	NextCursor string `json:"next_cursor,omitempty"`
	Count      int    `json:"count"`
}
