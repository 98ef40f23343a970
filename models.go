package sigsci

import (
	"encoding/json"
	"fmt"
)

// Corp represents a Signal Sciences organizational account.
type Corp struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Plan        string `json:"plan,omitempty"`
	SiteLimit   int    `json:"siteLimit,omitempty"`
	Created     string `json:"created,omitempty"`
}

// UserRole represents a corp-level user role.
type UserRole string

const (
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
	RoleUser     UserRole = "user"
	RoleObserver UserRole = "observer"
)

// User represents a member of a corp.
type User struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Role       UserRole `json:"role"`
	Status     string   `json:"status,omitempty"`
	AuthStatus string   `json:"authStatus,omitempty"`
	APIUser    bool     `json:"apiUser,omitempty"`
	Created    string   `json:"created,omitempty"`
}

// CloudWAFDeployment describes the deployment state of a cloud WAF
// instance.
type CloudWAFDeployment struct {
	Status   string `json:"status,omitempty"`
	DNSEntry string `json:"dnsEntry,omitempty"`
	Message  string `json:"message,omitempty"`
}

// WorkspaceConfig is a per-site configuration attached to a cloud WAF
// instance.
type WorkspaceConfig struct {
	SiteName          string   `json:"siteName"`
	InstanceLocation  string   `json:"instanceLocation,omitempty"`
	ListenerProtocols []string `json:"listenerProtocols,omitempty"`
}

// CloudWAFInstance represents a managed cloud WAF deployment.
type CloudWAFInstance struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description,omitempty"`
	Region           string             `json:"region,omitempty"`
	TLSOnly          bool               `json:"tlsOnly,omitempty"`
	Deployment       CloudWAFDeployment `json:"deployment,omitempty"`
	WorkspaceConfigs []WorkspaceConfig  `json:"workspaceConfigs,omitempty"`
	CreatedBy        string             `json:"createdBy,omitempty"`
	Created          string             `json:"created,omitempty"`
}

// listEnvelope is the {"data": [...]} wrapper the dashboard API places
// around collection responses.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// decodeList parses a collection response body. Both the enveloped form
// and a bare JSON array are accepted.
func decodeList[T any](endpoint string, body []byte) ([]T, error) {
	var items []T
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var env listEnvelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("sigsci: decoding %s response: %w", endpoint, err)
	}
	return env.Data, nil
}
