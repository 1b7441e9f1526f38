package model

// Scope identifies the user a request is executed for.
type Scope struct {
	Identity string // conversation identity, e.g. "+905551112233"
	OwnerID  string // path-safe identity used for storage paths
}

// EnvironmentType names the deployment environment.
type EnvironmentType string

const (
	EnvironmentDevelopment EnvironmentType = "development"
	EnvironmentProduction  EnvironmentType = "production"
)
