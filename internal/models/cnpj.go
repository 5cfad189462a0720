package models

import (
	"time"
)

// CNPJRequest is the body of the POST validation and generation endpoints
type CNPJRequest struct {
	CNPJ string `json:"cnpj" binding:"required,max=32" example:"11.222.333/0001-81"`
}

// ValidationResult represents the outcome of a CNPJ validation
type ValidationResult struct {
	Input          string    `json:"input" example:"11.222.333/0001-81"`
	CNPJ           string    `json:"cnpj" example:"11222333000181"`
	Formatted      string    `json:"formatted" example:"11.222.333/0001-81"`
	Valid          bool      `json:"valid" example:"true"`
	HasCheckDigits bool      `json:"has_check_digits" example:"true"`
	CheckDigits    string    `json:"check_digits" example:"81"`
	Root           string    `json:"root" example:"11222333"`
	Branch         string    `json:"branch" example:"0001"`
	Type           string    `json:"type" example:"MATRIZ"`
	Cache          bool      `json:"cache" example:"false"`
	Timestamp      time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// GenerationResult represents the check digits generated for a CNPJ root
type GenerationResult struct {
	Input       string    `json:"input" example:"11.222.333/0001"`
	Root        string    `json:"root" example:"112223330001"`
	CheckDigits string    `json:"check_digits" example:"81"`
	CNPJ        string    `json:"cnpj" example:"11222333000181"`
	Formatted   string    `json:"formatted" example:"11.222.333/0001-81"`
	Cache       bool      `json:"cache" example:"false"`
	Timestamp   time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"Invalid CNPJ format"`
	Message   string    `json:"message" example:"CNPJ does not match pattern aa.aaa.aaa/aaaa-dd for validation, or aa.aaa.aaa/aaaa for generation"`
	Code      string    `json:"code,omitempty" example:"INVALID_CNPJ_FORMAT"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Path      string    `json:"path" example:"/api/v1/cnpj/validate"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string                 `json:"status" example:"healthy"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
	Version   string                 `json:"version" example:"1.0.0"`
	Services  map[string]ServiceInfo `json:"services"`
	Uptime    string                 `json:"uptime" example:"2h30m45s"`
}

// ServiceInfo represents individual service health
type ServiceInfo struct {
	Status    string    `json:"status" example:"healthy"`
	LastCheck time.Time `json:"last_check" example:"2024-01-15T10:30:00Z"`
	Error     string    `json:"error,omitempty"`
}

// CacheStatsResponse represents cache statistics
type CacheStatsResponse struct {
	Stats     map[string]interface{} `json:"stats"`
	Health    map[string]interface{} `json:"health"`
	Timestamp time.Time              `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}

// MessageResponse represents a plain success message
type MessageResponse struct {
	Success   bool      `json:"success" example:"true"`
	Message   string    `json:"message" example:"Cache cleared successfully"`
	CNPJ      string    `json:"cnpj,omitempty" example:"11.222.333/0001-81"`
	Timestamp time.Time `json:"timestamp" example:"2024-01-15T10:30:00Z"`
}
