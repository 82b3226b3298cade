// Package hostaddr converts host names and literal IP addresses into structured addresses.
package hostaddr

import (
	"context"
	"net/netip"
	"slices"
	"strings"
)

// None is returned for an empty host and denotes the absence of an address.
var None netip.Addr

var DefaultResolver = New()

// Resolve resolves a host name or a literal IP address with [DefaultResolver].
func Resolve(ctx context.Context, host string) (netip.Addr, error) {
	return DefaultResolver.Resolve(ctx, host)
}

// ResolveList resolves a list of hosts with [DefaultResolver].
func ResolveList(ctx context.Context, hosts string) ([]netip.Addr, error) {
	return DefaultResolver.ResolveList(ctx, hosts)
}

func New(ops ...Option) *Resolver {
	defaults := []Option{
		WithLookuper(DefaultLookuper),
	}

	var r Resolver
	for _, op := range slices.Concat(defaults, ops) {
		op(&r)
	}
	return &r
}

func WithLookuper(l Lookuper) Option {
	return func(r *Resolver) {
		r.lookuper = l
	}
}

type Option func(*Resolver)

// Resolver turns host strings into addresses, consulting DNS only for non-literal hosts.
type Resolver struct {
	lookuper Lookuper
}

// Resolve returns the address denoted by host.
//
// An empty host yields [None]. A literal IPv4 or IPv6 address is returned as parsed,
// and an IPv6 address may be enclosed in brackets.
// Anything else is looked up in DNS and the first IPv4 answer is returned.
// Failed lookups and lookups without IPv4 answers are reported as [*ResolveError].
func (r *Resolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if host == "" {
		return None, nil
	}

	if ip, ok := parseLiteral(host); ok {
		return ip, nil
	}

	answers, err := r.lookuper.LookupNetIP(ctx, "ip", host)
	if err != nil {
		return None, &ResolveError{Host: host, Err: err}
	}

	ip, ok := firstIPv4(answers)
	if !ok {
		return None, &ResolveError{Host: host, Err: ErrNoIPv4}
	}
	return ip, nil
}

// ResolveList resolves every host in a list separated with ',' or ';', preserving their order.
//
// Empty entries resolve to [None], and an empty list resolves to no addresses at all.
// The first host that fails to resolve aborts the whole list.
func (r *Resolver) ResolveList(ctx context.Context, hosts string) ([]netip.Addr, error) {
	if hosts == "" {
		return nil, nil
	}

	var addrs []netip.Addr
	for _, h := range splitHosts(hosts) {
		ip, err := r.Resolve(ctx, h)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, ip)
	}
	return addrs, nil
}

func parseLiteral(host string) (netip.Addr, bool) {
	if inner, ok := strings.CutPrefix(host, "["); ok {
		inner, ok = strings.CutSuffix(inner, "]")
		if !ok {
			return None, false
		}
		ip, err := netip.ParseAddr(inner)
		return ip, err == nil && ip.Is6()
	}

	ip, err := netip.ParseAddr(host)
	return ip, err == nil
}

// splitHosts keeps empty entries, so "a,,b" yields three hosts.
func splitHosts(hosts string) []string {
	return strings.Split(strings.ReplaceAll(hosts, ";", ","), ",")
}

func firstIPv4(addrs []netip.Addr) (netip.Addr, bool) {
	// IPv4 answers may come back in their IPv4-mapped IPv6 form
	i := slices.IndexFunc(addrs, func(a netip.Addr) bool {
		return a.Unmap().Is4()
	})
	if i == -1 {
		return None, false
	}
	return addrs[i].Unmap(), true
}
