package model

// Scope carries the caller identity through every use case call.
// UserID scopes all task and conversation access.
type Scope struct {
	UserID   string
	Username string
}

// Environment names.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
