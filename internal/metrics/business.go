package metrics

// IncrementEntityCreated increments the creation counter for one entity kind
func (m *Metrics) IncrementEntityCreated(entity string) {
	m.safeExecute("IncrementEntityCreated", func() {
		m.EntityCreatedTotal.WithLabelValues(entity).Inc()
	})
}

// IncrementWorkTimeTouched counts a work time save
func (m *Metrics) IncrementWorkTimeTouched() {
	m.safeExecute("IncrementWorkTimeTouched", func() {
		m.WorkTimeTouchedTotal.Inc()
	})
}

// SetEntitiesTotal sets the row count gauge of a table
func (m *Metrics) SetEntitiesTotal(table string, count int64) {
	m.safeExecute("SetEntitiesTotal", func() {
		m.EntitiesTotal.WithLabelValues(table).Set(float64(count))
	})
}
