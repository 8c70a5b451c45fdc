package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinerSpecsSetIfAbsent(t *testing.T) {
	specs := &MinerSpecs{}
	specs.SetIfAbsent("hk1", nil)
	specs.Set("hk2", []byte(`{"gpu": {}}`))
	specs.SetIfAbsent("hk2", nil)
	specs.Set("hk1", []byte(`{"cpu": {}}`))

	got, ok := specs.Get("hk2")
	assert.True(t, ok)
	assert.Equal(t, `{"gpu": {}}`, string(got))

	got, ok = specs.Get("hk1")
	assert.True(t, ok)
	assert.Equal(t, `{"cpu": {}}`, string(got))

	entries := specs.Entries()
	assert.Equal(t, "hk1", entries[0].Hotkey)
	assert.Equal(t, "hk2", entries[1].Hotkey)
	assert.Equal(t, 2, specs.Len())
}
