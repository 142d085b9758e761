// Package metrics holds Prometheus instruments that are used across the
// engine.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ConfigLoadTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "restau_config_load_total",
			Help: "Cumulative number of restaurant configs successfully loaded.",
		})

	ConfigLoadErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restau_config_load_errors_total",
			Help: "Cumulative number of config load failures, by reason.",
		},
		[]string{"reason"}, // not_found | parse | validation
	)

	HostRewriteTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "restau_host_rewrite_total",
			Help: "Cumulative number of hostname-derived path rewrites.",
		})

	PageViewTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restau_page_view_total",
			Help: "Cumulative non-bot page views, by tenant slug.",
		},
		[]string{"slug"},
	)

	WhatsAppClickTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restau_whatsapp_click_total",
			Help: "Cumulative WhatsApp deep-link clicks, by tenant slug.",
		},
		[]string{"slug"},
	)
)

func init() {
	prometheus.MustRegister(
		ConfigLoadTotal,
		ConfigLoadErrorsTotal,
		HostRewriteTotal,
		PageViewTotal,
		WhatsAppClickTotal,
	)
}
