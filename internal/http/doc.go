// Package http provides the pooled outbound client shared by fetch workers.
//
// One Client is created per network phase and reused by every worker in it:
// the underlying transport keeps a bounded set of idle connections per host,
// so parallel fetches reuse physical connections instead of redialing.
// Transport errors and 5xx responses are retried a bounded number of times
// with jittered exponential backoff; 4xx responses map to sentinel errors
// and are not retried.
//
// # Usage
//
//	client := http.NewClient(http.Options{
//	    MaxIdleConnsPerHost: 20,
//	    Timeout:             30 * time.Second,
//	    RetryAttempts:       3,
//	})
//
//	body, err := client.Get(ctx, url)
//	defer body.Close()
package http
