package consts

// 数据库相关
const (
	ID        = "_id"
	UID       = "uid"
	Done      = "done"
	Due       = "due"
	Date      = "date"
	Name      = "name"
	Memo      = "memo"
	CreatedAt = "createdAt"
	DoneAt    = "doneAt"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 默认值
const (
	AppId = 17

	// DefaultSubject 计时结束时科目为空使用的占位科目名（与既有存量数据保持一致）
	DefaultSubject = "未設定"

	// DefaultUsername 首次登录的默认用户名
	DefaultUsername = "未设置用户名"
)

// 出席状态
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
)

// Weekdays 时间割的固定曜日列（周一至周五，保持既有文档的键名）
var Weekdays = []string{"月曜", "火曜", "水曜", "木曜", "金曜"}

// DefaultHours 默认的节次时间标签，界面上可改，持久化在 schedule 字段的键集合里
var DefaultHours = []string{"9:00", "10:00", "11:00", "13:00", "14:00"}

// ChartWeekdays 周学习图表的固定曜日顺序（周一到周日）
var ChartWeekdays = []string{"月", "火", "水", "木", "金", "土", "日"}

// 课题紧急程度，由截止日与当前时刻的整日差派生，不落库
const (
	UrgencyCritical = "critical" // 已过期
	UrgencyHigh     = "high"     // 一天以内
	UrgencyMedium   = "medium"   // 三天以内
	UrgencyNormal   = "normal"
)

// 紧急程度对应的提示背景色，沿用旧版界面的配色
var UrgencyColors = map[string]string{
	UrgencyCritical: "#ffcccc",
	UrgencyHigh:     "#ffe0b2",
	UrgencyMedium:   "#fff9c4",
	UrgencyNormal:   "#ffffff",
}
