package attachment

import (
	"context"
	"database/sql"
	"kadai-note/biz/infrastructure/config"
	"kadai-note/biz/infrastructure/util/log"

	_ "modernc.org/sqlite"
)

// 图片附件放在本机的 SQLite 文件里而不是远端文档库，
// 键是授业id，值是一组有序的二进制块。
// 附件的生命周期与授业记录彼此独立，删除授业不会级联删除附件。

type SQLiteMapper struct {
	db *sql.DB
}

func NewSQLiteMapper(config *config.Config) *SQLiteMapper {
	db, err := sql.Open("sqlite", config.SQLite.Path)
	if err != nil {
		panic(err)
	}
	m := &SQLiteMapper{db: db}
	if err := m.migrate(); err != nil {
		panic(err)
	}
	log.Info("NewAttachmentSQLiteMapper path: %s", config.SQLite.Path)
	return m
}

// NewSQLiteMapperWithDSN 测试用入口
func NewSQLiteMapperWithDSN(dsn string) (*SQLiteMapper, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	m := &SQLiteMapper{db: db}
	if err := m.migrate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *SQLiteMapper) migrate() error {
	_, err := m.db.Exec(`CREATE TABLE IF NOT EXISTS attachments (
		class_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		data BLOB NOT NULL,
		PRIMARY KEY (class_id, position)
	)`)
	return err
}

// Append 把若干块追加到该授业附件列表的末尾。
// 读取当前最大序号和插入在同一个事务里完成
func (m *SQLiteMapper) Append(ctx context.Context, classID string, blobs [][]byte) error {
	if len(blobs) == 0 {
		return nil
	}
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var next int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM attachments WHERE class_id = ?`, classID).Scan(&next)
	if err != nil {
		return err
	}
	for i, blob := range blobs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO attachments (class_id, position, data) VALUES (?, ?, ?)`,
			classID, next+i, blob)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// List 按保存顺序返回该授业的全部附件
func (m *SQLiteMapper) List(ctx context.Context, classID string) ([][]byte, error) {
	rows, err := m.db.QueryContext(ctx,
		`SELECT data FROM attachments WHERE class_id = ? ORDER BY position`, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blobs [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		blobs = append(blobs, data)
	}
	return blobs, rows.Err()
}

// Get 取指定序号的一块，越界返回 sql.ErrNoRows
func (m *SQLiteMapper) Get(ctx context.Context, classID string, index int) ([]byte, error) {
	var data []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT data FROM attachments WHERE class_id = ? AND position = ?`, classID, index).Scan(&data)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// DeleteAt 删除指定序号的一块并把后续块前移一位，保持相对顺序。
// 序号越界时什么都不做
func (m *SQLiteMapper) DeleteAt(ctx context.Context, classID string, index int) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`DELETE FROM attachments WHERE class_id = ? AND position = ?`, classID, index)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return tx.Commit()
	}
	// 先取负再翻正，避免前移时主键瞬时撞车
	_, err = tx.ExecContext(ctx,
		`UPDATE attachments SET position = -(position - 1) WHERE class_id = ? AND position > ?`,
		classID, index)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE attachments SET position = -position WHERE class_id = ? AND position < 0`,
		classID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

// DeleteAll 删除该授业的全部附件，供删除授业时级联调用
func (m *SQLiteMapper) DeleteAll(ctx context.Context, classID string) error {
	_, err := m.db.ExecContext(ctx,
		`DELETE FROM attachments WHERE class_id = ?`, classID)
	return err
}

func (m *SQLiteMapper) Close() error {
	return m.db.Close()
}
