package obs

import "github.com/prometheus/client_golang/prometheus"

var (
	// Searches counts searches with a non-blank query
	Searches = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aidocs_searches_total",
		Help: "Total number of non-empty searches",
	})

	// SearchResults records the uncapped result count of each search
	SearchResults = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "aidocs_search_results",
		Help:    "Number of results returned per search",
		Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
	})

	// Toggles counts checklist toggles, labelled by the resulting done state
	Toggles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aidocs_checklist_toggles_total",
		Help: "Checklist toggles by resulting state",
	}, []string{"done"})

	// Resets counts confirmed progress resets
	Resets = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aidocs_progress_resets_total",
		Help: "Total number of progress resets",
	})

	// Fallbacks counts navigations that fell back to the landing section
	Fallbacks = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "aidocs_navigation_fallbacks_total",
		Help: "Navigations to an unknown id that fell back to the default section",
	})
)

func init() {
	prometheus.MustRegister(Searches, SearchResults, Toggles, Resets, Fallbacks)
}
