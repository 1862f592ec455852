package dashboard

import (
	"context"
	"errors"
	"testing"

	"pos-versions-dashboard/internal/cache"
	"pos-versions-dashboard/internal/dataset"
	"pos-versions-dashboard/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixture(version string) *dataset.Dataset {
	return dataset.New("test", []dataset.Record{
		{Row: 1, Version: version, DeviceID: "A", PinpadModel: "P1", Region: "SP"},
		{Row: 2, Version: version, DeviceID: "A", PinpadModel: "P1", Region: "SP"},
		{Row: 3, Version: version, DeviceID: "B", PinpadModel: "P2", Region: "RJ"},
	})
}

func Test_Render_Cached(t *testing.T) {
	src := dataset.NewMockSource(t)
	src.EXPECT().Load(mock.Anything).Return(fixture("4.19"), nil).Once()

	d := New(Config{Source: src, Cache: cache.New()})
	ctx := context.Background()

	first, err := d.Render(ctx, report.Filter{Version: "4.19", DeviceIDs: []string{"B", "A"}})
	require.NoError(t, err)
	second, err := d.Render(ctx, report.Filter{Version: "4.19", DeviceIDs: []string{"A", "B"}})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, second.Version.Total.Value)

	sidebar, err := d.Sidebar(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"4.19"}, sidebar.Versions)
}

func Test_Render_Uncached(t *testing.T) {
	src := dataset.NewMockSource(t)
	src.EXPECT().Load(mock.Anything).Return(fixture("4.19"), nil).Times(2)

	d := New(Config{Source: src})
	ctx := context.Background()

	for range 2 {
		view, err := d.Render(ctx, report.Filter{ShowPinpadRanking: true})
		require.NoError(t, err)
		assert.Len(t, view.Pinpad.Metrics, 2)
	}
}

func Test_Reload_Invalidates(t *testing.T) {
	src := dataset.NewMockSource(t)
	src.EXPECT().Load(mock.Anything).Return(fixture("4.19"), nil).Once()
	src.EXPECT().Load(mock.Anything).Return(fixture("4.20"), nil).Once()

	c := cache.New()
	d := New(Config{Source: src, Cache: c})
	ctx := context.Background()

	view, err := d.Render(ctx, report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "4.19", view.Filter.Version)
	assert.Equal(t, 1, c.Len())

	require.NoError(t, d.Reload(ctx))
	assert.Equal(t, 0, c.Len())

	view, err = d.Render(ctx, report.Filter{})
	require.NoError(t, err)
	assert.Equal(t, "4.20", view.Filter.Version)
}

func Test_Reload_KeepsPreviousOnFailure(t *testing.T) {
	src := dataset.NewMockSource(t)
	src.EXPECT().Load(mock.Anything).Return(fixture("4.19"), nil).Once()
	src.EXPECT().Load(mock.Anything).Return(nil, errors.New("disk gone")).Once()

	d := New(Config{Source: src, Cache: cache.New()})
	ctx := context.Background()

	require.NoError(t, d.Reload(ctx))
	assert.ErrorIs(t, d.Reload(ctx), ErrLoadDataset)

	view, err := d.Render(ctx, report.Filter{Version: "4.19"})
	require.NoError(t, err)
	assert.Equal(t, 3, view.Version.Total.Value)
}

func Test_Render_LoadError(t *testing.T) {
	cases := []struct {
		name  string
		cache cache.Cache
	}{
		{name: "cached", cache: cache.New()},
		{name: "uncached"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			src := dataset.NewMockSource(t)
			src.EXPECT().Load(mock.Anything).Return(nil, errors.New("failed"))

			d := New(Config{Source: src, Cache: tt.cache})
			_, err := d.Render(context.Background(), report.Filter{})
			assert.ErrorIs(t, err, ErrLoadDataset)
			_, err = d.Sidebar(context.Background(), "")
			assert.ErrorIs(t, err, ErrLoadDataset)
		})
	}
}
