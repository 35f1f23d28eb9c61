package injector

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func init() {
	hclog.L().SetLevel(hclog.Trace)
}

// testContainer returns a container with the shared fixtures bound.
func testContainer(t *testing.T) *Container {
	t.Helper()
	require := require.New(t)

	c := New()
	require.NoError(c.BindInstance("instance1", instance1))
	require.NoError(c.BindClass("util", Util{}))
	require.NoError(c.BindClass("router", (*Router)(nil)))
	require.NoError(c.BindClass("logger", Logger{}))
	require.NoError(c.BindClass("son", Son{}))
	require.NoError(c.BindFunction("test", testFunc, Deps("$$logger")))
	require.NoError(c.BindFunction("async", asyncFunc, Deps("$$logger")))
	require.NoError(c.BindFunction("arrow", func(logger *Logger) string {
		return "test"
	}, Deps("$$logger")))
	require.NoError(c.BindFunction("test2", testFunc2, Deps("$$logger")))
	require.NoError(c.BindFunction("async2", asyncFunc2, Deps("$$logger")))
	require.NoError(c.BindFunction("arrow2", func(logger *Logger) *Logger {
		return logger
	}, Deps("$$logger")))
	require.NoError(c.BindFunction("test3", testFunc3, Deps("$$logger", "$$notfound", "without$$")))
	require.NoError(c.BindFunction("params", paramsFunc))
	require.NoError(c.BindInstance("instanced", instance1))
	require.NoError(c.BindInstance("instanced2", instance1))
	return c
}

func mustGet(t *testing.T, c *Container, key string) interface{} {
	t.Helper()

	v, err := c.GetInstance(key)
	require.NoError(t, err)
	return v
}
