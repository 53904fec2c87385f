// Package metrics provides Prometheus instrumentation for veritrace.
package metrics

// Verification records a verification lookup outcome ("valid"/"invalid").
func Verification(result string) {
	if !enabled {
		return
	}
	verificationTotal.WithLabelValues(result).Inc()
}

// DirectoryAggregate records a directory aggregation.
func DirectoryAggregate(status string) {
	if !enabled {
		return
	}
	directoryAggregateTotal.WithLabelValues(status).Inc()
}

// DirectoryVendorSkipped records a vendor whose product fetch failed.
func DirectoryVendorSkipped() {
	if !enabled {
		return
	}
	directoryVendorSkipTotal.Inc()
}

// Registration records a registration write.
func Registration(kind, status string) {
	if !enabled {
		return
	}
	registrationTotal.WithLabelValues(kind, status).Inc()
}

// TxConfirmation records the outcome of a confirmation wait.
func TxConfirmation(status string) {
	if !enabled {
		return
	}
	txConfirmationTotal.WithLabelValues(status).Inc()
}
