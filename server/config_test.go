package server

import (
	"testing"
	"time"
)

func TestNewConfigNilReturnsDefaults(t *testing.T) {
	c := NewConfig(nil)
	if c.Network != "tcp" || c.Address != ":9898" {
		t.Errorf("got %+v", c)
	}
	if c.ConnTimeout == nil || *c.ConnTimeout != 10*time.Minute {
		t.Errorf("got ConnTimeout %v, want 10m default", c.ConnTimeout)
	}
	if c.PoolSize <= 0 {
		t.Errorf("got PoolSize %d, want a positive default", c.PoolSize)
	}
}

func TestNewConfigOverridesNonZeroFields(t *testing.T) {
	c := NewConfig(&Config{Address: "127.0.0.1:1234", PoolSize: 2})
	if c.Address != "127.0.0.1:1234" || c.PoolSize != 2 {
		t.Errorf("got %+v", c)
	}
	if c.Network != "tcp" {
		t.Errorf("got Network %q, want default untouched", c.Network)
	}
}

func TestNewConfigExplicitZeroConnTimeoutDisablesDeadline(t *testing.T) {
	zero := time.Duration(0)
	c := NewConfig(&Config{ConnTimeout: &zero})
	if c.ConnTimeout == nil || *c.ConnTimeout != 0 {
		t.Errorf("got ConnTimeout %v, want an explicit zero to survive the merge", c.ConnTimeout)
	}
}
