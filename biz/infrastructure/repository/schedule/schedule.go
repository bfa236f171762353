package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tally 一个科目的出席/欠席累计
type Tally struct {
	Present int64 `bson:"present" json:"present"`
	Absent  int64 `bson:"absent" json:"absent"`
}

// WeeklySchedule 每个用户唯一的时间割聚合文档，_id 即用户id。
// schedule 与 attendance 是两棵独立演化的子树，
// 任何一方的写入都只合并自己的字段，绝不覆盖整个文档。
type WeeklySchedule struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// Schedule 曜日 -> 时间标签 -> 科目名（空串表示未选）
	Schedule map[string]map[string]string `bson:"schedule" json:"schedule"`
	// Attendance 科目名 -> 出欠累计。键是自由文本的科目名而不是授业id，
	// 改名或删除授业会留下旧名下的历史数据，这是沿用的既有约定
	Attendance map[string]*Tally `bson:"attendance" json:"attendance"`
	UpdateTime time.Time         `bson:"update_time" json:"updateTime"`
}
