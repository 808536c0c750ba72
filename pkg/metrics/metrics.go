package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dailydiet", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "dailydiet", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	MealsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "dailydiet", Name: "meals_created_total", Help: "Number of diet records created."},
	)
	MealsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "dailydiet", Name: "meals_deleted_total", Help: "Number of diet records deleted."},
	)
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "dailydiet", Name: "users_registered_total", Help: "Number of users registered."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(MealsCreated)
	reg.MustRegister(MealsDeleted)
	reg.MustRegister(UsersRegistered)
}
