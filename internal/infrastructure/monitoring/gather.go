package monitoring

import "github.com/prometheus/client_golang/prometheus"

// Value gathers g and returns the counter or gauge value of the series
// called name whose labels match the given name/value pairs.
func Value(g prometheus.Gatherer, name string, labels ...string) (float64, bool) {
	families, err := g.Gather()
	if err != nil {
		return 0, false
	}

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	series:
		for _, metric := range mf.GetMetric() {
			have := make(map[string]string, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				have[lp.GetName()] = lp.GetValue()
			}
			for i := 0; i+1 < len(labels); i += 2 {
				if have[labels[i]] != labels[i+1] {
					continue series
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue(), true
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue(), true
			}
		}
	}
	return 0, false
}
