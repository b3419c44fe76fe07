package helpers

import (
	"net"
	"os"
)

const (
	fallbackHostname = "localhost"
	fallbackIPAddr   = "127.0.0.1"
)

// InstanceIdentity names this process in interlock rows and salts generated notes.
type InstanceIdentity struct {
	Hostname string
	IPAddr   string
}

// ResolveInstanceIdentity uses override as the hostname when set. Failed lookups
// fall back to localhost and 127.0.0.1 instead of failing startup.
func ResolveInstanceIdentity(override string) InstanceIdentity {
	hostname := override
	if hostname == "" {
		var err error
		hostname, err = os.Hostname()
		if err != nil || hostname == "" {
			hostname = fallbackHostname
		}
	}
	return InstanceIdentity{Hostname: hostname, IPAddr: resolveIPAddr(hostname)}
}

func resolveIPAddr(hostname string) string {
	if ip := net.ParseIP(hostname); ip != nil {
		return ip.String()
	}
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fallbackIPAddr
	}
	for _, ip := range ips {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String()
		}
	}
	if len(ips) > 0 {
		return ips[0].String()
	}
	return fallbackIPAddr
}
