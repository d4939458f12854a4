package utils

import (
	"fmt"
	"net"
	"time"
)

// PingService checks if a TCP service is reachable at host:port
func PingService(host, port string, timeout time.Duration) error {
	if port == "" {
		return fmt.Errorf("no port given for %s", host)
	}
	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingDatabase checks if the database server accepts TCP connections
func PingDatabase(host, port string) error {
	return PingService(host, port, 1500*time.Millisecond)
}
