package hostaddr

import (
	"context"
	"net"
	"net/netip"
)

var DefaultLookuper Lookuper = net.DefaultResolver

// Lookuper performs forward DNS lookups, returning answers in the order the resolver produced them.
type Lookuper interface {
	LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error)
}

type LookupFunc func(ctx context.Context, network, host string) ([]netip.Addr, error)

func (f LookupFunc) LookupNetIP(ctx context.Context, network, host string) ([]netip.Addr, error) {
	return f(ctx, network, host)
}
