package policies

import (
	_ "embed"
	"encoding/json"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed endpoints.json
var policyData []byte

// Policy describes the rate limiting treatment of a single endpoint.
// Endpoints with Skip set are never throttled.
type Policy struct {
	Path   string `json:"path"`
	Method string `json:"method"`
	Skip   bool   `json:"skip"`
}

type PolicyData struct {
	Endpoints []Policy `json:"endpoints"`
	Skip      bool     `json:"skip"`
}

func (p *PolicyData) FindPolicy(path, method string) Policy {
	idx := slices.IndexFunc(p.Endpoints, func(ep Policy) bool {
		return ep.Path == path && ep.Method == method
	})

	if idx == -1 {
		return Policy{}
	}

	return p.Endpoints[idx]
}

func Get() *PolicyData {
	var policies PolicyData

	err := json.Unmarshal(policyData, &policies)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded endpoint policies")

		return nil
	}

	log.Info().Int("endpoints", len(policies.Endpoints)).Msg("Successfully loaded embedded endpoint policies")

	return &policies
}
