package metadata

import (
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// Socksaddr is either an IP address or a domain name, plus a port.
type Socksaddr struct {
	Addr netip.Addr
	Fqdn string
	Port uint16
}

func (ap Socksaddr) IsIP() bool {
	return ap.Addr.IsValid()
}

func (ap Socksaddr) IsFqdn() bool {
	return !ap.IsIP() && ap.Fqdn != ""
}

func (ap Socksaddr) IsValid() bool {
	return ap.Addr.IsValid() || ap.Fqdn != ""
}

func (ap Socksaddr) AddrString() string {
	if ap.Addr.IsValid() {
		return ap.Addr.String()
	} else {
		return ap.Fqdn
	}
}

func (ap Socksaddr) String() string {
	return net.JoinHostPort(ap.AddrString(), strconv.Itoa(int(ap.Port)))
}

func ParseAddr(s string) netip.Addr {
	addr, _ := netip.ParseAddr(s)
	if addr.Is4In6() {
		addr = netip.AddrFrom4(addr.As4())
	}
	return addr
}

func ParseSocksaddr(address string) Socksaddr {
	host, port, err := net.SplitHostPort(address)
	if err != nil {
		return Socksaddr{}
	}
	return ParseSocksaddrHostPortStr(host, port)
}

func ParseSocksaddrHostPort(host string, port uint16) Socksaddr {
	host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
	if netAddr := ParseAddr(host); netAddr.IsValid() {
		return Socksaddr{
			Addr: netAddr,
			Port: port,
		}
	}
	return Socksaddr{
		Fqdn: host,
		Port: port,
	}
}

// ParseSocksaddrHostPortStr leaves the port at zero when portStr is not a valid port number.
func ParseSocksaddrHostPortStr(host string, portStr string) Socksaddr {
	port, _ := strconv.ParseUint(portStr, 10, 16)
	return ParseSocksaddrHostPort(host, uint16(port))
}
