package connector

import (
	"context"
	"fmt"

	sigsci "github.com/tphakala/go-sigsci"
	"github.com/tphakala/go-sigsci/internal/ctxlog"
)

// Step identifiers, in dependency order.
const (
	StepFetchCorps             = "fetch-corps"
	StepFetchUsers             = "fetch-users"
	StepFetchCloudWAFInstances = "fetch-cloudwaf-instances"
)

// ExecutionContext carries the collaborators a step needs: the vendor
// API client and the host-provided job-state sink.
type ExecutionContext struct {
	Client *sigsci.Client
	State  JobState
}

// Step is a declarative collection unit executed by the runner. Steps
// do not retry or recover; client-layer errors propagate unchanged.
type Step struct {
	ID                string
	Name              string
	DependsOn         []string
	EntityTypes       []string
	RelationshipTypes []string
	Execute           func(ctx context.Context, ec *ExecutionContext) error
}

// Steps returns the connector's step definitions. The runner resolves
// their declared dependencies into execution order.
func Steps() []*Step {
	return []*Step{
		{
			ID:          StepFetchCorps,
			Name:        "Fetch Corps",
			EntityTypes: []string{EntityTypeCorp},
			Execute:     fetchCorps,
		},
		{
			ID:                StepFetchUsers,
			Name:              "Fetch Users",
			DependsOn:         []string{StepFetchCorps},
			EntityTypes:       []string{EntityTypeUser},
			RelationshipTypes: []string{RelationshipTypeCorpHasUser},
			Execute:           fetchUsers,
		},
		{
			ID:                StepFetchCloudWAFInstances,
			Name:              "Fetch Cloud WAF Instances",
			DependsOn:         []string{StepFetchCorps},
			EntityTypes:       []string{EntityTypeCloudWAF},
			RelationshipTypes: []string{RelationshipTypeCorpHasCloudWAF},
			Execute:           fetchCloudWAFInstances,
		},
	}
}

func fetchCorps(ctx context.Context, ec *ExecutionContext) error {
	for corp, err := range ec.Client.Corps.List(ctx) {
		if err != nil {
			return err
		}
		if err := ec.State.AddEntity(ctx, ConvertCorp(corp)); err != nil {
			return fmt.Errorf("storing corp %q: %w", corp.Name, err)
		}
	}
	return nil
}

func fetchUsers(ctx context.Context, ec *ExecutionContext) error {
	logger := ctxlog.FromContext(ctx)

	return forEachCorp(ctx, ec, func(corp *sigsci.Corp, corpEntity *Entity) error {
		count := 0
		for user, err := range ec.Client.Users.List(ctx, corp.Name) {
			if err != nil {
				return err
			}
			userEntity := ConvertUser(user)
			if err := ec.State.AddEntity(ctx, userEntity); err != nil {
				return fmt.Errorf("storing user %q: %w", user.Email, err)
			}
			if err := ec.State.AddRelationship(ctx, HasRelationship(corpEntity, userEntity)); err != nil {
				return fmt.Errorf("storing corp-user relationship: %w", err)
			}
			count++
		}
		logger.Debug("collected corp users", "corp", corp.Name, "count", count)
		return nil
	})
}

func fetchCloudWAFInstances(ctx context.Context, ec *ExecutionContext) error {
	logger := ctxlog.FromContext(ctx)

	return forEachCorp(ctx, ec, func(corp *sigsci.Corp, corpEntity *Entity) error {
		count := 0
		for instance, err := range ec.Client.CloudWAF.List(ctx, corp.Name) {
			if err != nil {
				return err
			}
			wafEntity := ConvertCloudWAF(instance)
			if err := ec.State.AddEntity(ctx, wafEntity); err != nil {
				return fmt.Errorf("storing cloud WAF instance %q: %w", instance.ID, err)
			}
			if err := ec.State.AddRelationship(ctx, HasRelationship(corpEntity, wafEntity)); err != nil {
				return fmt.Errorf("storing corp-cloudwaf relationship: %w", err)
			}
			count++
		}
		logger.Debug("collected cloud WAF instances", "corp", corp.Name, "count", count)
		return nil
	})
}

// forEachCorp enumerates corps and invokes fn once per corp,
// sequentially. The corp entity handed to fn is used as the source of
// relationships; it is not re-added to the sink, which stays
// append-only.
func forEachCorp(ctx context.Context, ec *ExecutionContext, fn func(corp *sigsci.Corp, corpEntity *Entity) error) error {
	for corp, err := range ec.Client.Corps.List(ctx) {
		if err != nil {
			return err
		}
		if err := fn(corp, ConvertCorp(corp)); err != nil {
			return err
		}
	}
	return nil
}
