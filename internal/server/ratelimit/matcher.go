package ratelimit

import "strings"

// MatchEndpoint returns the rule for a request, or nil when none applies.
// An exact path match wins; otherwise the longest rule path ending in "/" that
// prefixes path is used. GET /health is never limited.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	var best *EndpointConfig
	for i := range configs {
		ec := &configs[i]
		if ec.Method != method {
			continue
		}
		if ec.Path == path {
			return ec
		}
		if strings.HasSuffix(ec.Path, "/") && strings.HasPrefix(path, ec.Path) &&
			(best == nil || len(ec.Path) > len(best.Path)) {
			best = ec
		}
	}
	return best
}
