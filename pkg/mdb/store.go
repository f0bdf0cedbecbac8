package mdb

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrCorruptDatabase 文件末尾出现不足一条记录的残块
var ErrCorruptDatabase = errors.New("corrupt database: truncated record")

// Store 一次会话内按文件顺序冻结的记录集合。
// 加载完成后只读，不提供任何修改接口。
type Store struct {
	records []Record
}

// Load 读取数据库文件并构建 Store。
// 按 250 字节定宽块顺序读取，任何失败都返回 nil Store，
// 绝不让半加载的 Store 流出。打开失败保留底层错误
// （errors.Is 可识别 fs.ErrNotExist / fs.ErrPermission）。
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database file: %w", err)
	}
	defer f.Close()

	reader := bufio.NewReader(f)
	block := make([]byte, RecordSize)

	var records []Record
	for {
		n, err := io.ReadFull(reader, block)
		if err == io.EOF {
			break
		}
		if err == io.ErrUnexpectedEOF {
			// 尾部残块：文件大小不是 RecordSize 的整数倍
			return nil, fmt.Errorf("%w: %s has %d trailing bytes", ErrCorruptDatabase, path, n)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read database file %s: %w", path, err)
		}
		records = append(records, DecodeRecord(block))
	}

	return &Store{records: records}, nil
}

// Len 返回记录总数
func (s *Store) Len() int {
	return len(s.records)
}

// Record 返回第 i 条记录（0 起始，与文件顺序一致）
func (s *Store) Record(i int) Record {
	return s.records[i]
}
