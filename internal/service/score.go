package service

import "time"

// bandThreshold 正确率百分比到雅思分档的映射，按阈值降序排列
type bandThreshold struct {
	MinPercent float64
	Band       float64
}

var bandTable = []bandThreshold{
	{90, 9.0},
	{82, 8.5},
	{75, 8.0},
	{68, 7.5},
	{60, 7.0},
	{52, 6.5},
	{45, 6.0},
	{37, 5.5},
	{30, 5.0},
	{23, 4.5},
	{16, 4.0},
	{10, 3.5},
	{5, 3.0},
}

// BandScore 按正确率换算雅思分档，低于最低阈值时返回 2.5
// 调用方必须保证 total > 0
func BandScore(correct, total int) float64 {
	percentage := float64(correct) / float64(total) * 100

	for _, t := range bandTable {
		if percentage >= t.MinPercent {
			return t.Band
		}
	}
	return 2.5
}

// NextStreak 根据最近学习日期计算新的连续学习天数
// 同一天重复学习不变，隔天学习加一，中断超过一天重置为一，
// 最近日期晚于当前时间（时钟偏差）时保持不变
func NextStreak(current int, lastStudyDate *time.Time, now time.Time) int {
	if lastStudyDate == nil {
		return 1
	}

	days := daysBetween(*lastStudyDate, now)
	switch {
	case days < 0:
		return current
	case days == 0:
		return current
	case days == 1:
		return current + 1
	default:
		return 1
	}
}

// daysBetween 自然日差值，忽略一天内的时刻
func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location())
	return int(toDay.Sub(fromDay).Hours() / 24)
}
