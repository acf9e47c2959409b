package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	for _, key := range []string{"queryCount", "dataSize", "queryDuration", "errorRate"} {
		def, ok := Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, MetricKey(key), def.Key)
		assert.NotEmpty(t, def.Query)
	}

	_, ok := Lookup("cpuUsage")
	assert.False(t, ok)
}

func TestDefinitions(t *testing.T) {
	defs := Definitions()
	require.Len(t, defs, 4)

	// 顺序固定
	assert.Equal(t, MetricQueryCount, defs[0].Key)
	assert.Equal(t, MetricDataSize, defs[1].Key)
	assert.Equal(t, MetricQueryDuration, defs[2].Key)
	assert.Equal(t, MetricErrorRate, defs[3].Key)
}

func TestDefinitions_QueriesAreParameterized(t *testing.T) {
	// 日期只允许以绑定参数出现，查询文本里不得有占位符之外的日期形式
	for _, def := range Definitions() {
		assert.Contains(t, def.Query, "{from:String}", string(def.Key))
		assert.Contains(t, def.Query, "{to:String}", string(def.Key))
		assert.Contains(t, def.Query, "GROUP BY date", string(def.Key))
		assert.Contains(t, def.Query, "ORDER BY date", string(def.Key))
	}
}

func TestDefinitions_MockRanges(t *testing.T) {
	testCases := []struct {
		key      MetricKey
		min, max float64
		integer  bool
	}{
		{MetricQueryCount, 500, 1500, true},
		{MetricDataSize, 100000000, 1100000000, true},
		{MetricQueryDuration, 0.1, 2.1, false},
		{MetricErrorRate, 0, 2.0, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.key), func(t *testing.T) {
			def, ok := Lookup(string(tc.key))
			require.True(t, ok)
			assert.Equal(t, tc.min, def.Mock.Min)
			assert.Equal(t, tc.max, def.Mock.Max)
			assert.Equal(t, tc.integer, def.Mock.Integer)
		})
	}
}

func TestDefinitions_ErrorRateSignature(t *testing.T) {
	// errorRate 查询同时包含 countIf 与 count()，模拟执行器依赖 countIf 先匹配
	def, ok := Lookup("errorRate")
	require.True(t, ok)
	assert.True(t, strings.Contains(def.Query, "countIf(exception"))
	assert.True(t, strings.Contains(def.Query, "count()"))
}
