package connector

import (
	sigsci "github.com/tphakala/go-sigsci"
)

// ConvertCorp maps a corp record to its graph entity. The corp name is
// the vendor-side identifier, so it anchors the key.
func ConvertCorp(corp *sigsci.Corp) *Entity {
	displayName := corp.DisplayName
	if displayName == "" {
		displayName = corp.Name
	}

	return &Entity{
		Key:         EntityKey(EntityTypeCorp, corp.Name),
		Type:        EntityTypeCorp,
		Class:       EntityClassAccount,
		DisplayName: displayName,
		Properties: map[string]any{
			"name":      corp.Name,
			"plan":      corp.Plan,
			"siteLimit": corp.SiteLimit,
			"createdOn": corp.Created,
		},
	}
}

// ConvertUser maps a corp user record to its graph entity, keyed by the
// user's email address.
func ConvertUser(user *sigsci.User) *Entity {
	displayName := user.Name
	if displayName == "" {
		displayName = user.Email
	}

	return &Entity{
		Key:         EntityKey(EntityTypeUser, user.Email),
		Type:        EntityTypeUser,
		Class:       EntityClassUser,
		DisplayName: displayName,
		Properties: map[string]any{
			"name":       user.Name,
			"email":      user.Email,
			"role":       string(user.Role),
			"status":     user.Status,
			"authStatus": user.AuthStatus,
			"apiUser":    user.APIUser,
			"createdOn":  user.Created,
		},
	}
}

// ConvertCloudWAF maps a cloud WAF instance record to its graph entity.
// Site names from the instance's workspace configs are flattened into a
// property so the protected sites are queryable from the graph.
func ConvertCloudWAF(instance *sigsci.CloudWAFInstance) *Entity {
	siteNames := make([]string, 0, len(instance.WorkspaceConfigs))
	for _, wc := range instance.WorkspaceConfigs {
		siteNames = append(siteNames, wc.SiteName)
	}

	displayName := instance.Name
	if displayName == "" {
		displayName = instance.ID
	}

	props := map[string]any{
		"name":             instance.Name,
		"description":      instance.Description,
		"region":           instance.Region,
		"tlsOnly":          instance.TLSOnly,
		"deploymentStatus": instance.Deployment.Status,
		"dnsEntry":         instance.Deployment.DNSEntry,
		"siteNames":        siteNames,
		"createdBy":        instance.CreatedBy,
		"createdOn":        instance.Created,
	}
	if len(siteNames) == 1 {
		props["siteName"] = siteNames[0]
	}

	return &Entity{
		Key:         EntityKey(EntityTypeCloudWAF, instance.ID),
		Type:        EntityTypeCloudWAF,
		Class:       EntityClassFirewall,
		DisplayName: displayName,
		Properties:  props,
	}
}

// HasRelationship builds the directed HAS edge from one entity to
// another. The relationship key and type are derived deterministically
// from the endpoint entities.
func HasRelationship(from, to *Entity) *Relationship {
	return &Relationship{
		Key:      from.Key + "|has|" + to.Key,
		Type:     relationshipType(from.Type, to.Type),
		Class:    RelationshipClassHas,
		FromKey:  from.Key,
		FromType: from.Type,
		ToKey:    to.Key,
		ToType:   to.Type,
	}
}
