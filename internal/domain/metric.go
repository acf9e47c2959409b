package domain

// MetricKey 指标标识
type MetricKey string

const (
	MetricQueryCount    MetricKey = "queryCount"    // 每日查询次数
	MetricDataSize      MetricKey = "dataSize"      // 每日读取字节数
	MetricQueryDuration MetricKey = "queryDuration" // 每日平均查询耗时（秒）
	MetricErrorRate     MetricKey = "errorRate"     // 每日错误率（百分比）
)

// DataPoint 时间序列中的单个数据点
type DataPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Series 按日期升序排列的数据点序列
type Series []DataPoint

// MockRange 模拟数据的取值范围，[Min, Max) 区间
type MockRange struct {
	Min     float64
	Max     float64
	Integer bool
}

// Definition 指标定义：参数化查询 + 模拟数据策略
type Definition struct {
	Key   MetricKey
	Query string
	Mock  MockRange
}

// definitions 固定指标注册表。新增指标只需追加表项，不改控制流。
// 日期通过 {from:String}/{to:String} 绑定参数传入，不拼接到查询文本。
var definitions = []Definition{
	{
		Key: MetricQueryCount,
		Query: `SELECT toDate(event_time) AS date, count() AS value
FROM system.query_log
WHERE type = 'QueryStart'
  AND event_time >= toDateTime(concat({from:String}, ' 00:00:00'))
  AND event_time <= toDateTime(concat({to:String}, ' 23:59:59'))
GROUP BY date
ORDER BY date`,
		Mock: MockRange{Min: 500, Max: 1500, Integer: true},
	},
	{
		Key: MetricDataSize,
		Query: `SELECT toDate(event_time) AS date, sum(read_bytes) AS value
FROM system.query_log
WHERE type = 'QueryFinish'
  AND event_time >= toDateTime(concat({from:String}, ' 00:00:00'))
  AND event_time <= toDateTime(concat({to:String}, ' 23:59:59'))
GROUP BY date
ORDER BY date`,
		Mock: MockRange{Min: 100000000, Max: 1100000000, Integer: true},
	},
	{
		Key: MetricQueryDuration,
		Query: `SELECT toDate(event_time) AS date, avg(query_duration_ms) / 1000 AS value
FROM system.query_log
WHERE type = 'QueryFinish'
  AND event_time >= toDateTime(concat({from:String}, ' 00:00:00'))
  AND event_time <= toDateTime(concat({to:String}, ' 23:59:59'))
GROUP BY date
ORDER BY date`,
		Mock: MockRange{Min: 0.1, Max: 2.1},
	},
	{
		Key: MetricErrorRate,
		Query: `SELECT toDate(event_time) AS date, countIf(exception != '') / count() * 100 AS value
FROM system.query_log
WHERE type = 'ExceptionWhileProcessing'
  AND event_time >= toDateTime(concat({from:String}, ' 00:00:00'))
  AND event_time <= toDateTime(concat({to:String}, ' 23:59:59'))
GROUP BY date
ORDER BY date`,
		Mock: MockRange{Min: 0, Max: 2.0},
	},
}

// FallbackMockRange 未识别查询的模拟数据范围
var FallbackMockRange = MockRange{Min: 0, Max: 100}

// Lookup 按标识查找指标定义
func Lookup(key string) (Definition, bool) {
	for _, def := range definitions {
		if string(def.Key) == key {
			return def, true
		}
	}
	return Definition{}, false
}

// Definitions 返回全部指标定义，顺序固定
func Definitions() []Definition {
	defs := make([]Definition, len(definitions))
	copy(defs, definitions)
	return defs
}
