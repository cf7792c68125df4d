package datemath

// weekdayIndex maps a Chinese weekday character to its index, Sunday = 0.
// 周X, 星期X and 礼拜X all share this table.
var weekdayIndex = map[string]int{
	"日": 0, "天": 0,
	"一": 1, "二": 2, "三": 3,
	"四": 4, "五": 5, "六": 6,
}

// relativeDayOffset maps relative day words to a day offset from today.
var relativeDayOffset = map[string]int{
	"今天": 0,
	"明天": 1,
	"后天": 2,
}
