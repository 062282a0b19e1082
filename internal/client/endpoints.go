package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
)

const (
	endpointLogin    = "/mgmt/shared/authn/login"
	endpointTokens   = "/mgmt/shared/authz/tokens"
	endpointPools    = "/mgmt/tm/ltm/pool"
	endpointVirtuals = "/mgmt/tm/ltm/virtual"
	endpointSysLog   = "/mgmt/tm/sys/log"
)

// GetPools fetches the pool list from /mgmt/tm/ltm/pool.
func (c *DefaultClient) GetPools(ctx context.Context) ([]PoolInfo, error) {
	body, err := c.doGet(ctx, endpointPools)
	if err != nil {
		return nil, fmt.Errorf("GetPools: %w", err)
	}

	var result collection[PoolInfo]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetPools decode: %w", err)
	}
	return result.Items, nil
}

// GetPoolMembers fetches the member list for one pool from
// /mgmt/tm/ltm/pool/<name>/members.
func (c *DefaultClient) GetPoolMembers(ctx context.Context, pool string) ([]MemberInfo, error) {
	path := endpointPools + "/" + url.PathEscape(pool) + "/members"
	body, err := c.doGet(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("GetPoolMembers %s: %w", pool, err)
	}

	var result collection[MemberInfo]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetPoolMembers %s decode: %w", pool, err)
	}
	return result.Items, nil
}

// GetVirtualServers fetches the virtual server list from /mgmt/tm/ltm/virtual.
func (c *DefaultClient) GetVirtualServers(ctx context.Context) ([]VirtualInfo, error) {
	body, err := c.doGet(ctx, endpointVirtuals)
	if err != nil {
		return nil, fmt.Errorf("GetVirtualServers: %w", err)
	}

	var result collection[VirtualInfo]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetVirtualServers decode: %w", err)
	}
	return result.Items, nil
}

// GetSystemLogs fetches recent system log entry names from /mgmt/tm/sys/log.
// The response is a map keyed by entry URI; the sorted keys are returned.
func (c *DefaultClient) GetSystemLogs(ctx context.Context) ([]string, error) {
	body, err := c.doGet(ctx, endpointSysLog)
	if err != nil {
		return nil, fmt.Errorf("GetSystemLogs: %w", err)
	}

	var result logResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetSystemLogs decode: %w", err)
	}

	names := make([]string, 0, len(result.Entries))
	for name := range result.Entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
