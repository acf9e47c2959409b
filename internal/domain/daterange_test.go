package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDateRange(t *testing.T) {
	// 默认为截止今天的 7 天窗口
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)
	dateRange := DefaultDateRange(now)

	assert.Equal(t, "2024-06-03", dateRange.From)
	assert.Equal(t, "2024-06-10", dateRange.To)

	days, err := dateRange.Days()
	require.NoError(t, err)
	assert.Len(t, days, 8)
}

func TestDefaultDateRange_NormalizesToUTC(t *testing.T) {
	// 本地时区已跨日，UTC 日期仍是前一天
	zone := time.FixedZone("UTC+10", 10*3600)
	now := time.Date(2024, 6, 11, 5, 0, 0, 0, zone)

	dateRange := DefaultDateRange(now)
	assert.Equal(t, "2024-06-10", dateRange.To)
}

func TestDateRange_Days(t *testing.T) {
	t.Run("Inclusive", func(t *testing.T) {
		days, err := DateRange{From: "2023-03-20", To: "2023-03-22"}.Days()
		require.NoError(t, err)
		assert.Equal(t, []string{"2023-03-20", "2023-03-21", "2023-03-22"}, days)
	})

	t.Run("SingleDay", func(t *testing.T) {
		days, err := DateRange{From: "2023-03-20", To: "2023-03-20"}.Days()
		require.NoError(t, err)
		assert.Equal(t, []string{"2023-03-20"}, days)
	})

	t.Run("InvertedRangeIsEmpty", func(t *testing.T) {
		// 区间倒置不是错误，返回空序列
		days, err := DateRange{From: "2023-03-22", To: "2023-03-20"}.Days()
		require.NoError(t, err)
		assert.Empty(t, days)
	})

	t.Run("InvalidDate", func(t *testing.T) {
		_, err := DateRange{From: "not-a-date", To: "2023-03-20"}.Days()
		assert.Error(t, err)
	})
}

func TestDateRange_Params(t *testing.T) {
	params := DateRange{From: "2023-03-20", To: "2023-03-22"}.Params()

	assert.Equal(t, "2023-03-20", params["from"])
	assert.Equal(t, "2023-03-22", params["to"])
}
