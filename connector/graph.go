// Package connector converts Signal Sciences resources into a
// normalized graph of typed entities and relationships and defines the
// collection steps a host job runner executes to build that graph.
package connector

import "strings"

// Entity types produced by this connector. The type doubles as the key
// prefix, so keys look like "sigsci_cloudwaf:<id>".
const (
	EntityTypeCorp     = "sigsci_corp"
	EntityTypeUser     = "sigsci_user"
	EntityTypeCloudWAF = "sigsci_cloudwaf"
)

// Entity classes in the asset-graph taxonomy.
const (
	EntityClassAccount  = "Account"
	EntityClassUser     = "User"
	EntityClassFirewall = "Firewall"
)

// RelationshipClassHas is the class of every relationship this
// connector produces: a directed ownership edge.
const RelationshipClassHas = "HAS"

// Relationship types produced by this connector.
const (
	RelationshipTypeCorpHasUser     = "sigsci_corp_has_user"
	RelationshipTypeCorpHasCloudWAF = "sigsci_corp_has_cloudwaf"
)

// Entity is a normalized graph node.
type Entity struct {
	Key         string
	Type        string
	Class       string
	DisplayName string
	Properties  map[string]any
}

// Relationship is a directed graph edge between two existing entities.
type Relationship struct {
	Key      string
	Type     string
	Class    string
	FromKey  string
	FromType string
	ToKey    string
	ToType   string
}

// EntityKey derives the stable key for an entity of the given type.
func EntityKey(entityType, id string) string {
	return entityType + ":" + id
}

// relationshipType derives the type of a HAS edge from the entity types
// at its endpoints, e.g. sigsci_corp + sigsci_user -> sigsci_corp_has_user.
func relationshipType(fromType, toType string) string {
	return fromType + "_has_" + strings.TrimPrefix(toType, "sigsci_")
}
