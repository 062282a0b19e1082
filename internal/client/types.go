package client

import "encoding/json"

// loginRequest is the body of POST /mgmt/shared/authn/login.
type loginRequest struct {
	Username          string `json:"username"`
	Password          string `json:"password"`
	LoginProviderName string `json:"loginProviderName"`
}

// loginResponse carries the session token issued by the appliance.
type loginResponse struct {
	Token struct {
		Token string `json:"token"`
	} `json:"token"`
}

// collection is the generic iControl REST list envelope.
type collection[T any] struct {
	Items []T `json:"items"`
}

// PoolInfo represents a single pool entry from /mgmt/tm/ltm/pool.
type PoolInfo struct {
	Name     string `json:"name"`
	Monitor  string `json:"monitor"`
	FullPath string `json:"fullPath"`
}

// MemberInfo represents a member entry from /mgmt/tm/ltm/pool/<name>/members.
type MemberInfo struct {
	Name            string `json:"name"`
	Address         string `json:"address"`
	State           string `json:"state"`
	Session         string `json:"session"`
	ConnectionLimit int64  `json:"connectionLimit"`
}

// VirtualInfo represents a virtual server entry from /mgmt/tm/ltm/virtual.
// State is only populated on builds that expose availability inline; absent
// values normalize to "unknown" downstream.
type VirtualInfo struct {
	Name        string `json:"name"`
	Destination string `json:"destination"`
	Enabled     bool   `json:"enabled"`
	Pool        string `json:"pool"`
	State       string `json:"state"`
}

// logResponse represents the /mgmt/tm/sys/log envelope: a map keyed by
// entry URI. Only the keys are used.
type logResponse struct {
	Entries map[string]json.RawMessage `json:"entries"`
}
