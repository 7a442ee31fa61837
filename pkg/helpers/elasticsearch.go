package helpers

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

// ESOptions configures the search cluster connection.
type ESOptions struct {
	Addrs    []string
	Username string
	Password string
	// Timeout bounds dialing and waiting for response headers. Zero means 5s.
	Timeout time.Duration
}

// NewESClient builds a search client. No addresses means search is disabled
// and (nil, nil) is returned.
func NewESClient(o ESOptions) (*elasticsearch.Client, error) {
	if len(o.Addrs) == 0 {
		return nil, nil
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses: o.Addrs,
		Username:  o.Username,
		Password:  o.Password,
		Transport: &http.Transport{
			MaxIdleConnsPerHost:   10,
			ResponseHeaderTimeout: timeout,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			DialContext:           (&net.Dialer{Timeout: timeout}).DialContext,
		},
	})
}

// PingES reports whether the cluster answers.
func PingES(ctx context.Context, es *elasticsearch.Client) error {
	res, err := es.Ping(es.Ping.WithContext(ctx))
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("elasticsearch ping: %s", res.Status())
	}
	return nil
}
