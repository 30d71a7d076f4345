package adapthttp

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "microblog_http_requests_total",
		Help: "HTTP requests served, by method and status code.",
	}, []string{"method", "code"})

	tweetsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_tweets_created_total",
		Help: "Tweets created since process start.",
	})

	sessionsIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "microblog_sessions_issued_total",
		Help: "Sessions issued on successful sign-in.",
	})
)
