package config

// ServiceConfig holds the service's runtime configuration.
type ServiceConfig struct {
	Port          string `json:"port"`
	FrequencyBand string `json:"frequency_band"`
	PlanTier      string `json:"plan_tier"`
}
