package validators

import (
	"context"
	"net"
	"strings"
	"time"
)

const lookupTimeout = 3 * time.Second

// Resolver is the subset of *net.Resolver used for domain checks.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// IsEmailDomainValid reports whether the email's domain has an MX or A
// record.
func IsEmailDomainValid(ctx context.Context, email string) bool {
	return DomainChecker(net.DefaultResolver)(ctx, email)
}

// DomainChecker builds a domain check on top of r.
func DomainChecker(r Resolver) func(ctx context.Context, email string) bool {
	return func(ctx context.Context, email string) bool {
		domain, ok := emailDomain(email)
		if !ok {
			return false
		}

		ctx, cancel := context.WithTimeout(ctx, lookupTimeout)
		defer cancel()

		if mx, err := r.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
			return true
		}

		if ips, err := r.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
			return true
		}

		return false
	}
}

func emailDomain(email string) (string, bool) {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", false
	}
	return email[at+1:], true
}
