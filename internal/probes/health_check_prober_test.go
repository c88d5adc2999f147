package probes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logwatch/internal/models"
	storemocks "logwatch/internal/stores/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProber(t *testing.T, targets []Target, store *storemocks.MockUptimeProbeStore) HealthCheckProber {
	t.Helper()
	return NewHealthCheckProber(ProberOptions{
		Interval: time.Second,
		Timeout:  2 * time.Second,
		Targets:  targets,
	}, store, zerolog.Nop())
}

func TestRunRoundRecordsUpAndDown(t *testing.T) {
	t.Parallel()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockUptimeProbeStore(ctrl)
	appended := []*models.UptimeProbe{}
	store.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, probe *models.UptimeProbe) error {
			appended = append(appended, probe)
			return nil
		}).
		Times(3)

	prober := newProber(t, []Target{
		{Name: "api", URL: healthy.URL},
		{Name: "backend", URL: broken.URL},
		{Name: "ghost", URL: "http://127.0.0.1:1/healthz"},
	}, store)

	round, err := prober.RunRound(context.Background())
	require.NoError(t, err)
	require.Len(t, round, 3)
	require.Len(t, appended, 3)

	byTarget := map[string]*models.UptimeProbe{}
	for _, probe := range appended {
		assert.NotEmpty(t, probe.ProbeID)
		assert.False(t, probe.TimestampUTC.IsZero())
		byTarget[probe.Source] = probe
	}
	assert.Equal(t, models.ProbeUp, byTarget["api"].Status)
	assert.Equal(t, models.ProbeDown, byTarget["backend"].Status)
	assert.Contains(t, byTarget["backend"].Details, "500")
	assert.Equal(t, models.ProbeDown, byTarget["ghost"].Status)
	assert.NotEmpty(t, byTarget["ghost"].Details)
}

func TestRunRoundRedirectAndClientErrorsAreUp(t *testing.T) {
	t.Parallel()

	// The target answered, so the service is reachable even when it rejects
	// the request itself.
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockUptimeProbeStore(ctrl)
	var appended *models.UptimeProbe
	store.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, probe *models.UptimeProbe) error {
			appended = probe
			return nil
		})

	prober := newProber(t, []Target{{Name: "api", URL: notFound.URL}}, store)

	_, err := prober.RunRound(context.Background())
	require.NoError(t, err)
	require.NotNil(t, appended)
	assert.Equal(t, models.ProbeUp, appended.Status)
}

func TestRunRoundContinuesPastStoreFailure(t *testing.T) {
	t.Parallel()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockUptimeProbeStore(ctrl)
	gomock.InOrder(
		store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(assert.AnError),
		store.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil),
	)

	prober := newProber(t, []Target{
		{Name: "first", URL: healthy.URL},
		{Name: "second", URL: healthy.URL},
	}, store)

	round, err := prober.RunRound(context.Background())
	require.NoError(t, err)
	require.Len(t, round, 1)
	assert.Equal(t, "second", round[0].Source)
}

func TestStartRunsImmediateRoundAndStops(t *testing.T) {
	t.Parallel()

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockUptimeProbeStore(ctrl)
	firstAppend := make(chan struct{})
	var once bool
	store.EXPECT().
		Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.UptimeProbe) error {
			if !once {
				once = true
				close(firstAppend)
			}
			return nil
		}).
		MinTimes(1)

	prober := NewHealthCheckProber(ProberOptions{
		Interval: time.Hour,
		Timeout:  time.Second,
		Targets:  []Target{{Name: "api", URL: healthy.URL}},
	}, store, zerolog.Nop())

	prober.Start(context.Background())
	select {
	case <-firstAppend:
	case <-time.After(5 * time.Second):
		t.Fatal("prober never ran its first round")
	}
	prober.Stop()
}
