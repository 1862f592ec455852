package report

import (
	"fmt"
	"testing"

	"pos-versions-dashboard/internal/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenario() *dataset.Dataset {
	return dataset.New("test", []dataset.Record{
		{Row: 1, Version: "4.19", DeviceID: "A", PinpadModel: "P1", Region: "SP"},
		{Row: 2, Version: "4.19", DeviceID: "A", PinpadModel: "P1", Region: "SP"},
		{Row: 3, Version: "4.19", DeviceID: "B", PinpadModel: "P2", Region: "RJ"},
	})
}

func wide() *dataset.Dataset {
	var rs []dataset.Record
	add := func(n int, version, id, pin, uf string) {
		for range n {
			rs = append(rs, dataset.Record{Row: len(rs) + 1, Version: version, DeviceID: id, PinpadModel: pin, Region: uf})
		}
	}
	add(3, "4.19", "GPOS700", "D230", "SP")
	add(1, "4.19", "GPOS700", "D230", "MG")
	add(2, "4.19", "L300", "PPC930", "RJ")
	add(4, "4.18", "L400", "D230", "BA")
	add(2, "4.18", "L400", "PPC930", "SP")
	add(1, "4.19", "S920", "", "PR")
	add(1, "4.19", "X990", "D180", "SP")
	return dataset.New("test", rs)
}

func Test_Build_VersionScenario(t *testing.T) {
	view := Build(scenario(), Filter{Version: "4.19"}, Options{})

	require.Equal(t, ModeVersion, view.Mode)
	require.Nil(t, view.Pinpad)
	v := view.Version
	require.NotNil(t, v)

	assert.Equal(t, []Count{{Key: "A", Total: 2}, {Key: "B", Total: 1}}, v.DeviceCounts)
	assert.Equal(t, []Metric{
		{Label: "POS A", Value: 2, Delta: "Maior valor (2)"},
		{Label: "POS B", Value: 1, Delta: "Menor valor (1)"},
	}, v.Metrics)
	require.NotNil(t, v.Total)
	assert.Equal(t, Metric{Label: "Total de POS", Value: 3}, *v.Total)
	assert.Empty(t, v.Message)

	assert.Equal(t, []string{"A", "B"}, v.POSModels)
	assert.Equal(t, "A", v.POSModel)
	assert.Equal(t, "A", view.Filter.POSModel)
	assert.Equal(t, []Count{{Key: "SP", Total: 2}}, v.RegionRanking)
	require.NotNil(t, v.Pie)
	assert.Equal(t, []Slice{
		{Label: "A", Value: 2, Percent: 200.0 / 3},
		{Label: "B", Value: 1, Percent: 100.0 / 3},
	}, v.Pie.Slices)
	require.NotNil(t, v.RegionChart)
	assert.Equal(t, "Ranking de Estados por POS - Modelo A", v.RegionChart.Title)
	assert.Equal(t, []Bar{{Label: "SP", Value: 2}}, v.RegionChart.Bars)
}

func Test_Build_PinpadScenario(t *testing.T) {
	view := Build(scenario(), Filter{Version: "4.19", ShowPinpadRanking: true}, Options{})

	require.Equal(t, ModePinpadRanking, view.Mode)
	require.Nil(t, view.Version)
	require.NotNil(t, view.Pinpad)
	assert.Equal(t, []Count{{Key: "P1", Total: 2}, {Key: "P2", Total: 1}}, view.Pinpad.Ranking)
	assert.Equal(t, []Metric{
		{Label: "Modelo P1", Value: 2},
		{Label: "Modelo P2", Value: 1},
	}, view.Pinpad.Metrics)
	assert.Equal(t, []Bar{{Label: "P1", Value: 2}, {Label: "P2", Value: 1}}, view.Pinpad.Chart.Bars)
}

func Test_Build_AbsentVersion(t *testing.T) {
	view := Build(scenario(), Filter{Version: "9.99"}, Options{})

	v := view.Version
	require.NotNil(t, v)
	assert.Equal(t, MsgNoData, v.Message)
	assert.Empty(t, v.Metrics)
	assert.Empty(t, v.DeviceCounts)
	assert.Nil(t, v.Total)

	// The region ranking ignores the sidebar filters.
	assert.NotEmpty(t, v.RegionRanking)
	assert.Nil(t, v.Pie)
	assert.Equal(t, MsgNoPieData, v.PieMessage)
	assert.NotNil(t, v.RegionChart)
}

func Test_Build_EmptyRegionRanking(t *testing.T) {
	ds := dataset.New("test", []dataset.Record{
		{Version: "4.19", DeviceID: "A", PinpadModel: "P1"},
		{Version: "4.19", DeviceID: "B", PinpadModel: "P1", Region: "SP"},
	})
	view := Build(ds, Filter{Version: "4.19", POSModel: "A"}, Options{})

	v := view.Version
	assert.Empty(t, v.RegionRanking)
	assert.Equal(t, fmt.Sprintf(MsgNoRegionData, "A"), v.RegionMessage)
	assert.Nil(t, v.Pie)
	assert.Nil(t, v.RegionChart)
	assert.Empty(t, v.PieMessage)
}

func Test_Build_EmptyDataset(t *testing.T) {
	for _, ds := range []*dataset.Dataset{nil, dataset.New("empty", nil)} {
		view := Build(ds, Filter{ShowPinpadRanking: true}, Options{})
		require.NotNil(t, view.Pinpad)
		assert.Empty(t, view.Pinpad.Metrics)
		assert.Empty(t, view.Pinpad.Chart.Bars)

		view = Build(ds, Filter{}, Options{})
		require.NotNil(t, view.Version)
		assert.Equal(t, MsgNoData, view.Version.Message)
		assert.Equal(t, fmt.Sprintf(MsgNoRegionData, ""), view.Version.RegionMessage)
	}
}

func Test_Build_Ties(t *testing.T) {
	ds := dataset.New("test", []dataset.Record{
		{Version: "1", DeviceID: "A"}, {Version: "1", DeviceID: "A"},
		{Version: "1", DeviceID: "B"}, {Version: "1", DeviceID: "B"},
		{Version: "1", DeviceID: "C"},
		{Version: "1", DeviceID: "D"},
		{Version: "1", DeviceID: "E"}, {Version: "1", DeviceID: "E"}, {Version: "1", DeviceID: "E"}, {Version: "1", DeviceID: "E"},
		{Version: "1", DeviceID: "F"}, {Version: "1", DeviceID: "F"}, {Version: "1", DeviceID: "F"}, {Version: "1", DeviceID: "F"},
	})
	v := Build(ds, Filter{Version: "1"}, Options{}).Version

	deltas := map[string]string{}
	for _, m := range v.Metrics {
		deltas[m.Label] = m.Delta
	}
	assert.Equal(t, map[string]string{
		"POS A": "",
		"POS B": "",
		"POS C": "Menor valor (1)",
		"POS D": "Menor valor (1)",
		"POS E": "Maior valor (4)",
		"POS F": "Maior valor (4)",
	}, deltas)
}

func Test_Build_SingleDevice(t *testing.T) {
	v := Build(scenario(), Filter{Version: "4.19", DeviceIDs: []string{"B"}}, Options{}).Version
	assert.Equal(t, []Metric{{Label: "POS B", Value: 1, Delta: "Maior valor (1)"}}, v.Metrics)
	assert.Equal(t, 1, v.Total.Value)
}

func Test_Build_Properties(t *testing.T) {
	ds := wide()

	pin := Build(ds, Filter{ShowPinpadRanking: true}, Options{}).Pinpad
	sum := 0
	for i, m := range pin.Metrics {
		sum += m.Value
		if i > 0 {
			assert.GreaterOrEqual(t, pin.Metrics[i-1].Value, m.Value)
		}
	}
	// one record has no pinpad model
	assert.Equal(t, ds.Len()-1, sum)

	cases := []struct {
		version   string
		deviceIDs []string
		expected  int
	}{
		{version: "4.19", expected: 8},
		{version: "4.19", deviceIDs: []string{"GPOS700"}, expected: 4},
		{version: "4.19", deviceIDs: []string{"GPOS700", "L400"}, expected: 4},
		{version: "4.18", deviceIDs: []string{"GPOS700"}, expected: 0},
		{version: "4.18", expected: 6},
	}
	for _, tt := range cases {
		v := Build(ds, Filter{Version: tt.version, DeviceIDs: tt.deviceIDs}, Options{}).Version
		total := 0
		for _, c := range v.DeviceCounts {
			total += c.Total
		}
		assert.Equal(t, tt.expected, total, "version %s ids %v", tt.version, tt.deviceIDs)
		if tt.expected == 0 {
			assert.Equal(t, MsgNoData, v.Message)
		} else {
			assert.Equal(t, tt.expected, v.Total.Value)
		}
		for i := 1; i < len(v.RegionRanking); i++ {
			assert.GreaterOrEqual(t, v.RegionRanking[i-1].Total, v.RegionRanking[i].Total)
		}
	}
}

func Test_Build_POSModelSelection(t *testing.T) {
	ds := wide()

	cases := []struct {
		name           string
		opts           Options
		model          string
		expectedModels []string
		expectedModel  string
		expectedRegion []Count
	}{
		{
			name:           "default shortlist",
			expectedModels: []string{"GPOS700", "L300", "L400"},
			expectedModel:  "GPOS700",
			expectedRegion: []Count{{Key: "SP", Total: 3}, {Key: "MG", Total: 1}},
		},
		{
			name:           "selected model",
			model:          "L400",
			expectedModels: []string{"GPOS700", "L300", "L400"},
			expectedModel:  "L400",
			expectedRegion: []Count{{Key: "BA", Total: 4}, {Key: "SP", Total: 2}},
		},
		{
			name:           "model outside shortlist falls back",
			model:          "X990",
			expectedModels: []string{"GPOS700", "L300", "L400"},
			expectedModel:  "GPOS700",
			expectedRegion: []Count{{Key: "SP", Total: 3}, {Key: "MG", Total: 1}},
		},
		{
			name:           "configured size",
			opts:           Options{POSShortlistSize: 5},
			model:          "X990",
			expectedModels: []string{"GPOS700", "L300", "L400", "S920", "X990"},
			expectedModel:  "X990",
			expectedRegion: []Count{{Key: "SP", Total: 1}},
		},
		{
			name:           "configured list",
			opts:           Options{POSModels: []string{"S920", "NOPE"}},
			model:          "NOPE",
			expectedModels: []string{"S920", "NOPE"},
			expectedModel:  "NOPE",
			expectedRegion: []Count{},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			v := Build(ds, Filter{Version: "4.19", POSModel: tt.model}, tt.opts).Version
			assert.Equal(t, tt.expectedModels, v.POSModels)
			assert.Equal(t, tt.expectedModel, v.POSModel)
			assert.Equal(t, tt.expectedRegion, v.RegionRanking)
		})
	}
}

func Test_BuildSidebar(t *testing.T) {
	opts := Options{
		VersionFeatures: map[string][]string{"4.19": {"AJUSTE DO QR CODE"}},
	}

	s := BuildSidebar(wide(), "", opts)
	assert.Equal(t, []string{"4.19", "4.18"}, s.Versions)
	assert.Equal(t, "4.19", s.Version)
	assert.Equal(t, []string{"AJUSTE DO QR CODE"}, s.VersionFeatures)
	assert.Equal(t, []string{"GPOS700", "L300", "L400", "S920", "X990"}, s.DeviceIDs)

	s = BuildSidebar(wide(), "4.18", opts)
	assert.Equal(t, "4.18", s.Version)
	assert.Empty(t, s.VersionFeatures)
}

func Test_Build_DoesNotMutate(t *testing.T) {
	ds := wide()
	before := append([]dataset.Record(nil), ds.Records...)
	Build(ds, Filter{Version: "4.19", DeviceIDs: []string{"L300"}}, Options{})
	Build(ds, Filter{ShowPinpadRanking: true}, Options{})
	assert.Equal(t, before, ds.Records)
}
