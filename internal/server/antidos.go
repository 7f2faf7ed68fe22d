package server

import (
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"time"
)

// antidosMiddleware throttles requests by making each one wait for a tick
// from one of a fixed set of tickers, chosen by hashing the remote host.
func antidosMiddleware(buckets int, period time.Duration, next http.Handler) http.Handler {
	if buckets <= 0 {
		panic("server: antidosBuckets is required")
	}
	if period <= 0 {
		panic("server: antidosPeriod is required")
	}

	tickers := make([]*time.Ticker, buckets)
	for i := range tickers {
		tickers[i] = time.NewTicker(period)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bucket := 0
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			h := fnv.New64()
			io.WriteString(h, host)
			bucket = int(h.Sum64() % uint64(len(tickers)))
		}

		<-tickers[bucket].C

		next.ServeHTTP(w, r)
	})
}
