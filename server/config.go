package server

import (
	"reflect"
	"runtime"
	"time"
)

// Config holds the knobs server.New accepts, merged against defaults the
// same way the teacher's Config does: any non-zero field in the caller's
// options overrides the default. ConnTimeout is a pointer for this
// reason -- mergeConfigs treats a field's zero value as "not set," so a
// plain time.Duration(0) could never express "explicitly disable the
// deadline" as opposed to "caller didn't mention it." A non-nil pointer,
// even one pointing at zero, is distinguishable from nil under the same
// reflection check.
type Config struct {
	Network     string
	Address     string
	PoolSize    int
	ConnTimeout *time.Duration
}

// NewConfig returns options merged onto the package defaults. A nil
// options returns the defaults unchanged.
func NewConfig(options *Config) Config {
	defaultTimeout := 10 * time.Minute
	defaultConfig := Config{
		Network:     "tcp",
		Address:     ":9898",
		PoolSize:    defaultPoolSize(),
		ConnTimeout: &defaultTimeout,
	}

	if options == nil {
		return defaultConfig
	}
	return defaultConfig.merge(*options)
}

// defaultPoolSize sizes the pool to the host's reported parallelism,
// falling back to 4 if the runtime can't report a usable value.
func defaultPoolSize() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 4
}

// merge returns a new Config with values from config merged into c.
func (c *Config) merge(config Config) Config {
	return mergeConfigs(*c, config)
}

// mergeConfigs iterates the fields of both structs via reflection; any
// non-zero field in b overwrites the corresponding field in a.
func mergeConfigs(a, b Config) Config {
	va := reflect.ValueOf(&a).Elem()
	vb := reflect.ValueOf(&b).Elem()

	for i := 0; i < va.NumField(); i++ {
		vaField := va.Field(i)
		vbField := vb.Field(i)

		if vbField.Interface() != reflect.Zero(vbField.Type()).Interface() {
			vaField.Set(vbField)
		}
	}

	return a
}
