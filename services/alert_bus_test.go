package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlertBusBeforeInit(t *testing.T) {
	// Both entry points must tolerate being called before InitAlertDeps:
	// EmitAlert is a no-op, ListAlerts errors.
	assert.NotPanics(t, func() { EmitAlert(1, "info", "sodium is high") })

	alerts, err := ListAlerts(1, 10)
	assert.Nil(t, alerts)
	assert.Error(t, err)
}
