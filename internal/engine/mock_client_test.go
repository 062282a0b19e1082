package engine

import (
	"context"
	"errors"

	"github.com/dm/f5mon/internal/client"
)

// MockF5Client implements client.F5Client for testing.
type MockF5Client struct {
	LoginFn    func(ctx context.Context) error
	LogoutFn   func(ctx context.Context) error
	PoolsFn    func(ctx context.Context) ([]client.PoolInfo, error)
	MembersFn  func(ctx context.Context, pool string) ([]client.MemberInfo, error)
	VirtualsFn func(ctx context.Context) ([]client.VirtualInfo, error)
	LogsFn     func(ctx context.Context) ([]string, error)
}

func (m *MockF5Client) Login(ctx context.Context) error {
	if m.LoginFn != nil {
		return m.LoginFn(ctx)
	}
	return nil
}

func (m *MockF5Client) Logout(ctx context.Context) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx)
	}
	return nil
}

func (m *MockF5Client) GetPools(ctx context.Context) ([]client.PoolInfo, error) {
	if m.PoolsFn != nil {
		return m.PoolsFn(ctx)
	}
	return []client.PoolInfo{{Name: "web_pool"}}, nil
}

func (m *MockF5Client) GetPoolMembers(ctx context.Context, pool string) ([]client.MemberInfo, error) {
	if m.MembersFn != nil {
		return m.MembersFn(ctx, pool)
	}
	return []client.MemberInfo{
		{Name: "web1:80", Address: "10.0.0.1", State: "up", Session: "monitor-enabled"},
	}, nil
}

func (m *MockF5Client) GetVirtualServers(ctx context.Context) ([]client.VirtualInfo, error) {
	if m.VirtualsFn != nil {
		return m.VirtualsFn(ctx)
	}
	return []client.VirtualInfo{
		{Name: "vs_web", Destination: "10.0.0.100:443", Enabled: true, Pool: "/Common/web_pool"},
	}, nil
}

func (m *MockF5Client) GetSystemLogs(ctx context.Context) ([]string, error) {
	if m.LogsFn != nil {
		return m.LogsFn(ctx)
	}
	return []string{"https://localhost/mgmt/tm/sys/log/ltm"}, nil
}

func (m *MockF5Client) Host() string {
	return "mock-bigip"
}

var errMockFailure = errors.New("mock failure")
