package monitor

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/notify"
)

func TestPokeIsNilSafeAndNonBlocking(t *testing.T) {
	var disabled *Runner
	disabled.Poke() // analytics feature off: handlers hold a nil runner

	runner := New(nil, clockwork.NewFakeClock(), &notify.LogNotifier{Log: logrus.New()}, logrus.New(), 60, 15)
	for i := 0; i < 10; i++ {
		runner.Poke() // must coalesce, never block
	}
	require.Len(t, runner.poke, 1)
}

func TestNewAppliesDefaults(t *testing.T) {
	runner := New(nil, clockwork.NewFakeClock(), &notify.LogNotifier{Log: logrus.New()}, logrus.New(), 0, 0)
	require.Equal(t, 60*time.Second, runner.interval)
}
