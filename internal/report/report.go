package report

import (
	"cmp"
	"fmt"
	"slices"

	"pos-versions-dashboard/internal/dataset"
)

type Options struct {
	// POSShortlistSize is how many leading distinct device ids feed the
	// POS model choice. Ignored when POSModels is set.
	POSShortlistSize int
	POSModels        []string
	VersionFeatures  map[string][]string
	Banner           string
	Footer           string
}

// Build computes the view for one request. It never mutates ds.
func Build(ds *dataset.Dataset, f Filter, opts Options) View {
	sidebar := BuildSidebar(ds, f.Version, opts)
	f.Version = sidebar.Version

	view := View{
		Filter:  f,
		Sidebar: sidebar,
		Banner:  opts.Banner,
		Footer:  opts.Footer,
	}
	if f.ShowPinpadRanking {
		view.Mode = ModePinpadRanking
		view.Pinpad = pinpadRanking(ds)
		return view
	}
	view.Mode = ModeVersion
	view.Version = versionView(ds, f, sidebar.POSModels)
	view.Filter.POSModel = view.Version.POSModel
	return view
}

func BuildSidebar(ds *dataset.Dataset, version string, opts Options) Sidebar {
	s := Sidebar{
		Versions:  ds.Versions(),
		DeviceIDs: ds.DeviceIDs(),
		POSModels: posModels(ds, opts),
		Version:   version,
	}
	if s.Version == "" && len(s.Versions) > 0 {
		s.Version = s.Versions[0]
	}
	s.VersionFeatures = opts.VersionFeatures[s.Version]
	return s
}

func posModels(ds *dataset.Dataset, opts Options) []string {
	if len(opts.POSModels) > 0 {
		return slices.Clone(opts.POSModels)
	}
	n := opts.POSShortlistSize
	if n <= 0 {
		n = 3
	}
	return ds.POSShortlist(n)
}

func pinpadRanking(ds *dataset.Dataset) *PinpadView {
	ranking := rank(countBy(records(ds), func(r dataset.Record) string { return r.PinpadModel }))

	v := &PinpadView{
		Ranking: ranking,
		Metrics: make([]Metric, 0, len(ranking)),
		Chart: BarChart{
			Title:  "Ranking de Modelos de Pinpad",
			XTitle: "Modelo de Pinpad",
			YTitle: "Total",
			Bars:   make([]Bar, 0, len(ranking)),
		},
	}
	for _, c := range ranking {
		v.Metrics = append(v.Metrics, Metric{Label: "Modelo " + c.Key, Value: c.Total})
		v.Chart.Bars = append(v.Chart.Bars, Bar{Label: c.Key, Value: c.Total})
	}
	return v
}

func versionView(ds *dataset.Dataset, f Filter, models []string) *VersionView {
	v := &VersionView{
		DeviceCounts:  []Count{},
		Metrics:       []Metric{},
		POSModels:     models,
		POSModel:      selectModel(f.POSModel, models),
		RegionRanking: []Count{},
	}

	filtered := filterVersion(records(ds), f.Version, f.DeviceIDs)
	if len(filtered) > 0 {
		v.DeviceCounts = byKey(countBy(filtered, func(r dataset.Record) string { return r.DeviceID }))
	}
	if len(v.DeviceCounts) == 0 {
		v.Message = MsgNoData
	} else {
		v.Metrics, v.Total = deviceMetrics(v.DeviceCounts)
	}

	var subset []dataset.Record
	for _, r := range records(ds) {
		if v.POSModel != "" && r.DeviceID == v.POSModel {
			subset = append(subset, r)
		}
	}
	v.RegionRanking = rank(countBy(subset, func(r dataset.Record) string { return r.Region }))

	if len(v.RegionRanking) == 0 {
		v.RegionMessage = fmt.Sprintf(MsgNoRegionData, v.POSModel)
		return v
	}
	if len(v.DeviceCounts) == 0 {
		v.PieMessage = MsgNoPieData
	} else {
		v.Pie = pie(v.DeviceCounts)
	}
	v.RegionChart = &BarChart{
		Title:  "Ranking de Estados por POS - Modelo " + v.POSModel,
		XTitle: "UF (Estado)",
		YTitle: "Total de POS",
		Bars:   make([]Bar, 0, len(v.RegionRanking)),
	}
	for _, c := range v.RegionRanking {
		v.RegionChart.Bars = append(v.RegionChart.Bars, Bar{Label: c.Key, Value: c.Total})
	}
	return v
}

func selectModel(model string, models []string) string {
	if slices.Contains(models, model) {
		return model
	}
	if len(models) > 0 {
		return models[0]
	}
	return ""
}

func filterVersion(rs []dataset.Record, version string, deviceIDs []string) []dataset.Record {
	var allowed map[string]struct{}
	if len(deviceIDs) > 0 {
		allowed = make(map[string]struct{}, len(deviceIDs))
		for _, id := range deviceIDs {
			allowed[id] = struct{}{}
		}
	}
	var out []dataset.Record
	for _, r := range rs {
		if r.Version != version {
			continue
		}
		if allowed != nil {
			if _, ok := allowed[r.DeviceID]; !ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

// deviceMetrics annotates every row tied for the max, then every row tied
// for the min. A single-row table only gets the max annotation.
func deviceMetrics(counts []Count) ([]Metric, *Metric) {
	maxTotal, minTotal, sum := counts[0].Total, counts[0].Total, 0
	for _, c := range counts {
		maxTotal = max(maxTotal, c.Total)
		minTotal = min(minTotal, c.Total)
		sum += c.Total
	}

	metrics := make([]Metric, 0, len(counts))
	for _, c := range counts {
		m := Metric{Label: "POS " + c.Key, Value: c.Total}
		switch c.Total {
		case maxTotal:
			m.Delta = fmt.Sprintf("Maior valor (%d)", c.Total)
		case minTotal:
			m.Delta = fmt.Sprintf("Menor valor (%d)", c.Total)
		}
		metrics = append(metrics, m)
	}
	return metrics, &Metric{Label: "Total de POS", Value: sum}
}

func pie(counts []Count) *PieChart {
	total := 0
	for _, c := range counts {
		total += c.Total
	}
	p := &PieChart{Title: "Distribuição de POS", Slices: make([]Slice, 0, len(counts))}
	for _, c := range counts {
		p.Slices = append(p.Slices, Slice{
			Label:   c.Key,
			Value:   c.Total,
			Percent: float64(c.Total) * 100 / float64(total),
		})
	}
	return p
}

func records(ds *dataset.Dataset) []dataset.Record {
	if ds == nil {
		return nil
	}
	return ds.Records
}

// countBy skips blank keys, the way missing values drop out of a group-by.
func countBy(rs []dataset.Record, key func(dataset.Record) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range rs {
		k := key(r)
		if k == "" {
			continue
		}
		counts[k]++
	}
	return counts
}

func byKey(counts map[string]int) []Count {
	out := make([]Count, 0, len(counts))
	for k, n := range counts {
		out = append(out, Count{Key: k, Total: n})
	}
	slices.SortFunc(out, func(a, b Count) int { return cmp.Compare(a.Key, b.Key) })
	return out
}

// rank orders by total descending; ties fall back to key order.
func rank(counts map[string]int) []Count {
	out := byKey(counts)
	slices.SortStableFunc(out, func(a, b Count) int { return cmp.Compare(b.Total, a.Total) })
	return out
}
