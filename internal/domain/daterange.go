package domain

import "time"

// DateLayout ISO 日期格式
const DateLayout = "2006-01-02"

// defaultWindowDays 默认查询窗口天数
const defaultWindowDays = 7

// DateRange 闭区间日期范围，YYYY-MM-DD
type DateRange struct {
	From string
	To   string
}

// DefaultDateRange 默认范围：截止今天（UTC）的 7 天窗口
func DefaultDateRange(now time.Time) DateRange {
	today := now.UTC()
	return DateRange{
		From: today.AddDate(0, 0, -defaultWindowDays).Format(DateLayout),
		To:   today.Format(DateLayout),
	}
}

// Params 查询绑定参数
func (r DateRange) Params() map[string]string {
	return map[string]string{
		"from": r.From,
		"to":   r.To,
	}
}

// Days 展开范围内的每个日历日。区间倒置时返回空序列，不报错。
func (r DateRange) Days() ([]string, error) {
	from, err := time.Parse(DateLayout, r.From)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(DateLayout, r.To)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DateLayout))
	}
	return days, nil
}
