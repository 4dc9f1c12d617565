package platform

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionDefaults(t *testing.T) {
	var o Options
	assert.Equal(t, "Paintbox", o.appName())
	assert.Equal(t, 5*time.Second, o.timeout())

	o = Options{AppName: "x", Timeout: time.Second}
	assert.Equal(t, "x", o.appName())
	assert.Equal(t, time.Second, o.timeout())
}
