package transport

import (
	"crypto/x509"
	"fmt"
	"os"

	"github.com/lurkerbot/lurker/internal/domain"
)

// CACertsError reports trust-store material that could not be loaded.
// It matches domain.ErrCACertsUnavailable and the underlying cause.
type CACertsError struct {
	Path string
	Op   string
	Err  error
}

func (e *CACertsError) Error() string {
	if e.Op == "open" {
		return fmt.Sprintf("unable to open root CA certificates file '%s'", e.Path)
	}
	return "unable to read root CA certificates file"
}

func (e *CACertsError) Unwrap() []error {
	if e.Err == nil {
		return []error{domain.ErrCACertsUnavailable}
	}
	return []error{domain.ErrCACertsUnavailable, e.Err}
}

// LoadRootCAs reads a PEM bundle into a certificate pool
func LoadRootCAs(path string) (*x509.CertPool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &CACertsError{Path: path, Op: "open", Err: err}
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(data) {
		return nil, &CACertsError{Path: path, Op: "read"}
	}
	return pool, nil
}
